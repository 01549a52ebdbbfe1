package aigateway

import "github.com/dukerupert/tradeline/internal/domain"

// Action selects what the gateway asks the model to do.
type Action int

const (
	ActionUnknown Action = iota
	ActionAnalyzeJob
	ActionParseVoiceItems
	ActionExtractCustomer
	ActionExtractSchedule
	ActionFormatAddress
	ActionReverseGeocode
	ActionTranscribeAudio
	ActionParseReceipt
)

var actionNames = map[Action]string{
	ActionAnalyzeJob:      "analyzeJob",
	ActionParseVoiceItems: "parseVoiceItems",
	ActionExtractCustomer: "extractCustomer",
	ActionExtractSchedule: "extractSchedule",
	ActionFormatAddress:   "formatAddress",
	ActionReverseGeocode:  "reverseGeocode",
	ActionTranscribeAudio: "transcribeAudio",
	ActionParseReceipt:    "parseReceipt",
}

var ErrUnknownAction = domain.Errorf(domain.EINVALID, "aigateway.ParseAction", "Unknown action")

// ParseAction maps the wire name of an action onto its Action.
func ParseAction(name string) (Action, error) {
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return ActionUnknown, ErrUnknownAction
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
