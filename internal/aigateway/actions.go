package aigateway

import (
	"fmt"
	"time"

	"google.golang.org/genai"
)

const systemPrompt = "You assist UK tradespeople (plumbers, electricians, builders) with paperwork. " +
	"Prices are in GBP excluding VAT unless stated. Answer only with JSON matching the schema. " +
	"Leave a field empty rather than guessing."

// analyzeJob

type AnalyzeJobRequest struct {
	Description string       `json:"description" validate:"required,max=5000"`
	Images      []ImageInput `json:"images" validate:"max=4,dive"`
}

type ImageInput struct {
	Data     string `json:"data" validate:"required,max=7864320"`
	MIMEType string `json:"mimeType" validate:"required,oneof=image/jpeg image/png image/webp image/heic"`
}

type Material struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
}

type JobAnalysis struct {
	Summary           string     `json:"summary"`
	Trade             string     `json:"trade"`
	Materials         []Material `json:"materials"`
	LabourHours       float64    `json:"labourHours"`
	LabourDescription string     `json:"labourDescription"`
	Notes             []string   `json:"notes"`
}

var jobAnalysisSchema = object(map[string]*genai.Schema{
	"summary": stringField("One sentence summary of the work"),
	"trade":   stringField("Trade best suited to the job"),
	"materials": arrayOf(object(map[string]*genai.Schema{
		"description": stringField("Material or part"),
		"quantity":    numberField("Quantity needed"),
		"unit":        stringField("Unit, e.g. m, each, box"),
		"unitPrice":   numberField("Typical UK trade price per unit in GBP"),
	}, "description", "quantity", "unitPrice")),
	"labourHours":       numberField("Estimated labour hours"),
	"labourDescription": stringField("What the labour covers"),
	"notes":             arrayOf(stringField("Risk, access issue or assumption")),
}, "summary", "materials", "labourHours")

func analyzeJobPrompt(req *AnalyzeJobRequest) (Prompt, error) {
	p := Prompt{
		System: systemPrompt,
		Text: "Analyse this job and estimate the materials and labour needed to quote it.\n\n" +
			"Job description:\n" + req.Description,
		Schema: jobAnalysisSchema,
	}
	for i, img := range req.Images {
		media, err := decodeMedia("aigateway.analyzeJob", fmt.Sprintf("images[%d]", i), img.Data, img.MIMEType)
		if err != nil {
			return Prompt{}, err
		}
		p.Media = append(p.Media, media)
	}
	return p, nil
}

func sanitizeJobAnalysis(a *JobAnalysis) {
	a.Summary = clean(a.Summary)
	for i := range a.Materials {
		sanitizeMaterial(&a.Materials[i])
	}
	a.LabourHours = RoundHours(a.LabourHours)
}

func sanitizeMaterial(m *Material) {
	m.Description = clean(m.Description)
	m.Quantity = RoundMoney(m.Quantity)
	m.UnitPrice = RoundMoney(m.UnitPrice)
}

// parseVoiceItems

type VoiceItemsRequest struct {
	Transcript string `json:"transcript" validate:"required,max=5000"`
}

type VoiceItem struct {
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Hours       float64 `json:"hours,omitempty"`
}

type VoiceItems struct {
	Items []VoiceItem `json:"items"`
}

var voiceItemsSchema = object(map[string]*genai.Schema{
	"items": arrayOf(object(map[string]*genai.Schema{
		"description": stringField("Line item description"),
		"type":        enumField("Whether the line is a material or labour", "material", "labour"),
		"quantity":    numberField("Quantity"),
		"unitPrice":   numberField("Price per unit in GBP"),
		"hours":       numberField("Hours, for labour lines only"),
	}, "description", "type", "quantity", "unitPrice")),
}, "items")

func voiceItemsPrompt(req *VoiceItemsRequest) (Prompt, error) {
	return Prompt{
		System: systemPrompt,
		Text: "Turn this dictated note into quote line items. Spoken numbers such as " +
			"\"two fifty\" mean 2.50 when talking about prices.\n\nTranscript:\n" + req.Transcript,
		Schema: voiceItemsSchema,
	}, nil
}

func sanitizeVoiceItems(v *VoiceItems) {
	for i := range v.Items {
		item := &v.Items[i]
		item.Description = clean(item.Description)
		item.Quantity = RoundMoney(item.Quantity)
		item.UnitPrice = RoundMoney(item.UnitPrice)
		if item.Type == "labour" {
			item.Hours = RoundHours(item.Hours)
		} else {
			item.Type = "material"
			item.Hours = 0
		}
	}
}

// extractCustomer

type TextRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
}

type CustomerDetails struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
}

var customerSchema = object(map[string]*genai.Schema{
	"name":     stringField("Customer full name"),
	"email":    stringField("Email address"),
	"phone":    stringField("Phone number"),
	"address":  stringField("Street address without postcode"),
	"postcode": stringField("UK postcode"),
}, "name")

func customerPrompt(req *TextRequest) (Prompt, error) {
	return Prompt{
		System: systemPrompt,
		Text:   "Extract the customer's contact details from this message.\n\n" + req.Text,
		Schema: customerSchema,
	}, nil
}

func sanitizeCustomer(c *CustomerDetails) {
	c.Name = clean(c.Name)
	c.Email = clean(c.Email)
	c.Phone = clean(c.Phone)
	c.Address = clean(c.Address)
	c.Postcode = cleanPostcode(c.Postcode)
}

// extractSchedule

type ScheduleRequest struct {
	Text  string `json:"text" validate:"required,max=5000"`
	Today string `json:"today" validate:"omitempty,datetime=2006-01-02"`
}

type ScheduleDetails struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Location     string `json:"location"`
	CustomerName string `json:"customerName"`
	Notes        string `json:"notes"`
}

var scheduleSchema = object(map[string]*genai.Schema{
	"title":        stringField("Short title for the appointment"),
	"date":         stringField("Date as YYYY-MM-DD"),
	"startTime":    stringField("Start time as HH:MM, 24 hour"),
	"endTime":      stringField("End time as HH:MM, 24 hour"),
	"location":     stringField("Where the work happens"),
	"customerName": stringField("Customer name if mentioned"),
	"notes":        stringField("Anything else worth remembering"),
}, "title", "date")

func (g *Gateway) schedulePrompt(req *ScheduleRequest) (Prompt, error) {
	today := req.Today
	if today == "" {
		today = g.now().Format(time.DateOnly)
	}
	return Prompt{
		System: systemPrompt,
		Text: fmt.Sprintf("Today is %s. Extract the appointment or reminder described below. "+
			"Resolve relative dates such as \"next Tuesday\" against today.\n\n%s", today, req.Text),
		Schema: scheduleSchema,
	}, nil
}

func sanitizeSchedule(s *ScheduleDetails) {
	s.Title = clean(s.Title)
	if _, err := time.Parse(time.DateOnly, s.Date); err != nil {
		s.Date = ""
	}
	if _, err := time.Parse("15:04", s.StartTime); err != nil {
		s.StartTime = ""
	}
	if _, err := time.Parse("15:04", s.EndTime); err != nil {
		s.EndTime = ""
	}
	s.Location = clean(s.Location)
	s.CustomerName = clean(s.CustomerName)
}

// formatAddress and reverseGeocode

type AddressRequest struct {
	Address string `json:"address" validate:"required,max=5000"`
}

type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type Address struct {
	Line1     string `json:"line1"`
	Line2     string `json:"line2"`
	Town      string `json:"town"`
	County    string `json:"county"`
	Postcode  string `json:"postcode"`
	Formatted string `json:"formatted"`
}

var addressSchema = object(map[string]*genai.Schema{
	"line1":     stringField("First line of the address"),
	"line2":     stringField("Second line, if any"),
	"town":      stringField("Post town"),
	"county":    stringField("County"),
	"postcode":  stringField("UK postcode"),
	"formatted": stringField("Full address on one line, comma separated"),
}, "line1", "town", "postcode")

func addressPrompt(req *AddressRequest) (Prompt, error) {
	return Prompt{
		System: systemPrompt,
		Text:   "Format this UK address in Royal Mail style, correcting obvious typos.\n\n" + req.Address,
		Schema: addressSchema,
	}, nil
}

func reverseGeocodePrompt(req *CoordinatesRequest) (Prompt, error) {
	return Prompt{
		System: systemPrompt,
		Text: fmt.Sprintf("Give the most likely UK postal address for latitude %.6f, longitude %.6f.",
			req.Latitude, req.Longitude),
		Schema: addressSchema,
	}, nil
}

func sanitizeAddress(a *Address) {
	a.Line1 = clean(a.Line1)
	a.Line2 = clean(a.Line2)
	a.Town = clean(a.Town)
	a.County = clean(a.County)
	a.Postcode = cleanPostcode(a.Postcode)
	a.Formatted = clean(a.Formatted)
}

// transcribeAudio

type AudioRequest struct {
	Audio    string `json:"audio" validate:"required,max=7864320"`
	MIMEType string `json:"mimeType" validate:"required,oneof=audio/webm audio/mp4 audio/mpeg audio/wav audio/ogg audio/aac audio/x-m4a"`
}

type Transcription struct {
	Text string `json:"text"`
}

var transcriptionSchema = object(map[string]*genai.Schema{
	"text": stringField("Verbatim transcript"),
}, "text")

func transcriptionPrompt(req *AudioRequest) (Prompt, error) {
	media, err := decodeMedia("aigateway.transcribeAudio", "audio", req.Audio, req.MIMEType)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{
		System: systemPrompt,
		Text:   "Transcribe this voice note. British English spelling.",
		Media:  []Media{media},
		Schema: transcriptionSchema,
	}, nil
}

func sanitizeTranscription(t *Transcription) {
	t.Text = clean(t.Text)
}
