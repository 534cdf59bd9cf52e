package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider answers questions through Google's Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Name() string {
	return fmt.Sprintf("gemini:%s", p.model)
}

func (p *GeminiProvider) Ask(ctx context.Context, farmType, question string) (*Advice, error) {
	prompt := fmt.Sprintf(
		"You are an experienced livestock extension officer advising a small Indian farmer who keeps %s. "+
			"Answer in plain language, at most 5 short sentences, with practical low-cost steps.\n\nQuestion: %s",
		describeFarmType(farmType), question,
	)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("Gemini generate failed: %w", err)
	}

	answer := strings.TrimSpace(result.Text())
	if answer == "" {
		return nil, fmt.Errorf("Gemini returned an empty answer")
	}

	return &Advice{Answer: answer, Source: "live"}, nil
}

func (p *GeminiProvider) TriageImage(ctx context.Context, farmType string, image []byte, mimeType, symptoms string) (*Triage, error) {
	prompt := fmt.Sprintf(
		"You are a veterinary triage assistant looking at a photo from a farm that keeps %s. "+
			"Check for common diseases such as Newcastle Disease, Avian Influenza, Coccidiosis and Swine Fever. "+
			"Reply with JSON only, matching this shape: "+
			`{"disease_detected": bool, "confidence": number between 0 and 100, `+
			`"candidate_diseases": [string], "observation": string, `+
			`"urgency": "low"|"medium"|"high"|"critical", "should_contact_vet": bool}`,
		describeFarmType(farmType),
	)
	if symptoms != "" {
		prompt += fmt.Sprintf("\n\nSymptoms described by the farmer: %s", symptoms)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("Gemini triage failed: %w", err)
	}

	var triage Triage
	if err := json.Unmarshal([]byte(result.Text()), &triage); err != nil {
		return nil, fmt.Errorf("failed to parse triage response: %w", err)
	}
	return &triage, nil
}

func describeFarmType(farmType string) string {
	switch farmType {
	case "pigs":
		return "pigs"
	case "both":
		return "chickens and pigs"
	default:
		return "chickens"
	}
}
