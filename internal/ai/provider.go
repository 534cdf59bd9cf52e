package ai

import "context"

// Advice is a farming answer from one of the providers.
type Advice struct {
	Answer string `json:"answer"`
	Source string `json:"source"` // "live" or "fallback"
}

// Triage is a structured disease assessment of a bird/animal photo.
// Confidence is a 0-100 score.
type Triage struct {
	DiseaseDetected   bool     `json:"disease_detected"`
	Confidence        float64  `json:"confidence"`
	CandidateDiseases []string `json:"candidate_diseases"`
	Observation       string   `json:"observation"`
	Urgency           string   `json:"urgency"` // low, medium, high, critical
	ShouldContactVet  bool     `json:"should_contact_vet"`
}

// Provider answers farming questions, optionally with an image attached.
// Implementations must respect ctx cancellation. symptoms is the farmer's
// own description of what they see and may be empty.
type Provider interface {
	Name() string
	Ask(ctx context.Context, farmType, question string) (*Advice, error)
	TriageImage(ctx context.Context, farmType string, image []byte, mimeType, symptoms string) (*Triage, error)
}
