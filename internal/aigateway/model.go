package aigateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Media is an inline image or audio attachment.
type Media struct {
	MIMEType string
	Data     []byte
}

// Prompt is one structured-output request. The model must answer with JSON
// matching Schema.
type Prompt struct {
	System string
	Text   string
	Media  []Media
	Schema *genai.Schema
}

// Model issues a single structured-output request and returns the raw JSON
// text of the answer.
type Model interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// GeminiModel calls a Gemini model through the genai SDK.
type GeminiModel struct {
	client *genai.Client
	model  string
}

func NewGeminiModel(ctx context.Context, apiKey, model string) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiModel{client: client, model: model}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, p Prompt) (string, error) {
	parts := make([]*genai.Part, 0, len(p.Media)+1)
	for _, media := range p.Media {
		parts = append(parts, genai.NewPartFromBytes(media.Data, media.MIMEType))
	}
	if p.Text != "" {
		parts = append(parts, genai.NewPartFromText(p.Text))
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
		ResponseSchema:   p.Schema,
	}
	if p.System != "" {
		config.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		config,
	)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("model returned an empty response")
	}
	return text, nil
}

// ErrModelNotConfigured is returned by Unconfigured models.
var ErrModelNotConfigured = errors.New("aigateway: GEMINI_API_KEY is not set")

// Unconfigured returns a Model that fails every request. The server uses it
// when no API key is configured so the other endpoints keep working.
func Unconfigured() Model { return unconfiguredModel{} }

type unconfiguredModel struct{}

func (unconfiguredModel) Generate(context.Context, Prompt) (string, error) {
	return "", ErrModelNotConfigured
}
