// Package aigateway exposes the structured-extraction features backed by a
// generative model: job analysis, voice line items, customer and schedule
// extraction, address handling, transcription and receipt parsing.
package aigateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/dukerupert/tradeline/internal/storage"
	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// Input limits.
const (
	MaxTextLength   = 5000
	MaxBase64Length = 7_864_320 // 7.5 MiB of base64 text
	MaxRequestBytes = 15 << 20
)

const defaultTimeout = 60 * time.Second

// Request is the body of POST /api/ai.
type Request struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type Gateway struct {
	model    Model
	storage  storage.Storage
	validate *validator.Validate
	timeout  time.Duration
	logger   *slog.Logger

	// Replaceable in tests.
	backoff func() retry.Backoff
	now     func() time.Time
	newID   func() uuid.UUID
}

// New builds a Gateway. A nil store disables receipt archiving; timeout
// bounds each model attempt.
func New(model Model, store storage.Storage, timeout time.Duration, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gateway{
		model:    model,
		storage:  store,
		validate: newValidator(),
		timeout:  timeout,
		logger:   logger,
		backoff:  defaultBackoff,
		now:      time.Now,
		newID:    uuid.New,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Handle runs one action for userID and returns its JSON-ready result.
func (g *Gateway) Handle(ctx context.Context, userID uuid.UUID, req Request) (any, error) {
	action, err := ParseAction(req.Action)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := g.dispatch(ctx, userID, action, req.Data)

	outcome := "success"
	if err != nil {
		outcome = domain.ErrorCode(err)
		g.logger.Warn("ai request failed", "action", action.String(), "error", err)
	}
	telemetry.Business.RecordAIRequest(action.String(), outcome, time.Since(start))
	return result, err
}

func (g *Gateway) dispatch(ctx context.Context, userID uuid.UUID, action Action, data json.RawMessage) (any, error) {
	switch action {
	case ActionAnalyzeJob:
		return run(ctx, g, action, data, analyzeJobPrompt, sanitizeJobAnalysis)
	case ActionParseVoiceItems:
		return run(ctx, g, action, data, voiceItemsPrompt, sanitizeVoiceItems)
	case ActionExtractCustomer:
		return run(ctx, g, action, data, customerPrompt, sanitizeCustomer)
	case ActionExtractSchedule:
		return run(ctx, g, action, data, g.schedulePrompt, sanitizeSchedule)
	case ActionFormatAddress:
		return run(ctx, g, action, data, addressPrompt, sanitizeAddress)
	case ActionReverseGeocode:
		return run(ctx, g, action, data, reverseGeocodePrompt, sanitizeAddress)
	case ActionTranscribeAudio:
		return run(ctx, g, action, data, transcriptionPrompt, sanitizeTranscription)
	case ActionParseReceipt:
		return g.parseReceipt(ctx, userID, data)
	default:
		return nil, ErrUnknownAction
	}
}

// run is the pipeline shared by every action: decode and validate the
// request, prompt the model, then decode and sanitise its answer.
func run[Req, Resp any](ctx context.Context, g *Gateway, action Action, data json.RawMessage,
	build func(*Req) (Prompt, error), sanitize func(*Resp)) (*Resp, error) {
	op := "aigateway." + action.String()

	req := new(Req)
	if err := g.decode(op, data, req); err != nil {
		return nil, err
	}

	prompt, err := build(req)
	if err != nil {
		return nil, err
	}

	raw, err := g.generate(ctx, action, prompt)
	if err != nil {
		return nil, domain.Upstream(err, op, "AI service request failed", "")
	}

	resp := new(Resp)
	if err := json.Unmarshal([]byte(raw), resp); err != nil {
		return nil, domain.Upstream(err, op, "AI service returned malformed output", "")
	}
	sanitize(resp)
	return resp, nil
}

func (g *Gateway) decode(op string, data json.RawMessage, dst any) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return domain.Invalid(op, "data is required")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return domain.Invalid(op, "data is malformed")
	}
	if err := g.validate.Struct(dst); err != nil {
		return domain.Invalid(op, validationMessage(err))
	}
	return nil
}

// validationMessage describes the first failed rule in client terms.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request data"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "lte":
		return field + " is out of range"
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// decodeMedia decodes a base64 payload, accepting an optional data URL
// prefix.
func decodeMedia(op, field, payload, mimeType string) (Media, error) {
	if strings.HasPrefix(payload, "data:") {
		if _, rest, ok := strings.Cut(payload, ";base64,"); ok {
			payload = rest
		}
	}
	if len(payload) > MaxBase64Length {
		return Media{}, domain.Invalid(op, field+" exceeds the 7.5MB limit")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Media{}, domain.Invalid(op, field+" is not valid base64")
	}
	return Media{MIMEType: mimeType, Data: data}, nil
}
