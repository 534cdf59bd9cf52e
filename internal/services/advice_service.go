package services

import (
	"context"
	"time"

	"github.com/thoughtcode-25/DIGI-FARM/internal/ai"
	"github.com/thoughtcode-25/DIGI-FARM/internal/security"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
)

// AdviceService fans a question across an ordered provider chain. The first
// provider to answer wins; the canned provider at the end of the chain means
// the farmer always gets something back.
type AdviceService struct {
	providers []ai.Provider
	timeout   time.Duration
}

func NewAdviceService(providers []ai.Provider, timeout time.Duration) *AdviceService {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &AdviceService{providers: providers, timeout: timeout}
}

// Ask routes a farming question through the provider chain.
func (s *AdviceService) Ask(ctx context.Context, farmType, question string) (*ai.Advice, error) {
	question = security.SanitizeUserText(question)
	if question == "" {
		return nil, errors.New(errors.ErrCodeValidation, "question must not be empty")
	}

	for _, provider := range s.providers {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		advice, err := provider.Ask(callCtx, farmType, question)
		cancel()
		if err != nil {
			logger.Warn("advice provider failed, trying next", "provider", provider.Name(), "error", err)
			continue
		}
		return advice, nil
	}
	return nil, errors.New(errors.ErrCodeProviderUnavailable, "no advice provider is available")
}

// TriageImage assesses an animal photo, with an optional symptoms note from
// the farmer. Any provider failure degrades to the safe recommendation
// rather than an error.
func (s *AdviceService) TriageImage(ctx context.Context, farmType string, image []byte, mimeType, symptoms string) (*ai.Triage, error) {
	if len(image) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "image must not be empty")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	symptoms = security.SanitizeUserText(symptoms)

	for _, provider := range s.providers {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		triage, err := provider.TriageImage(callCtx, farmType, image, mimeType, symptoms)
		cancel()
		if err != nil {
			logger.Warn("triage provider failed, trying next", "provider", provider.Name(), "error", err)
			continue
		}
		return triage, nil
	}

	return &ai.Triage{
		DiseaseDetected:  false,
		Confidence:       0,
		Observation:      "Image analysis failed. Please have the animal checked in person.",
		Urgency:          "medium",
		ShouldContactVet: true,
	}, nil
}
