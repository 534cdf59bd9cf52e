package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/thoughtcode-25/DIGI-FARM/internal/ai"
	apperrors "github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type fakeProvider struct {
	name         string
	fail         bool
	answer       string
	triage       *ai.Triage
	lastSymptoms string
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Ask(ctx context.Context, _, _ string) (*ai.Advice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.fail {
		return nil, errors.New("upstream down")
	}
	return &ai.Advice{Answer: p.answer, Source: "live"}, nil
}

func (p *fakeProvider) TriageImage(ctx context.Context, _ string, _ []byte, _, symptoms string) (*ai.Triage, error) {
	if p.fail {
		return nil, errors.New("upstream down")
	}
	p.lastSymptoms = symptoms
	if p.triage != nil {
		return p.triage, nil
	}
	return &ai.Triage{Observation: "looks healthy", Urgency: "low", Confidence: 90}, nil
}

func TestAskFirstProviderWins(t *testing.T) {
	svc := NewAdviceService([]ai.Provider{
		&fakeProvider{name: "primary", answer: "primary answer"},
		&fakeProvider{name: "secondary", answer: "secondary answer"},
	}, time.Second)

	advice, err := svc.Ask(context.Background(), "chickens", "why are my hens not laying?")
	if err != nil {
		t.Fatal(err)
	}
	if advice.Answer != "primary answer" {
		t.Errorf("Answer = %q, want the first provider's", advice.Answer)
	}
}

func TestAskFallsThroughFailures(t *testing.T) {
	svc := NewAdviceService([]ai.Provider{
		&fakeProvider{name: "dead", fail: true},
		ai.NewCannedProvider(),
	}, time.Second)

	advice, err := svc.Ask(context.Background(), "chickens", "egg production is dropping")
	if err != nil {
		t.Fatal(err)
	}
	if advice.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", advice.Source)
	}
	if advice.Answer == "" {
		t.Error("fallback answer is empty")
	}
}

func TestAskCannedAlwaysAnswers(t *testing.T) {
	svc := NewAdviceService([]ai.Provider{ai.NewCannedProvider()}, time.Second)

	// an off-table question still gets the default answer
	advice, err := svc.Ask(context.Background(), "pigs", "what color should I paint the pen?")
	if err != nil {
		t.Fatal(err)
	}
	if advice.Source != "fallback" || advice.Answer == "" {
		t.Errorf("advice = %+v, want a non-empty fallback answer", advice)
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	svc := NewAdviceService([]ai.Provider{ai.NewCannedProvider()}, time.Second)

	_, err := svc.Ask(context.Background(), "chickens", "   ")
	if apperrors.CodeOf(err) != apperrors.ErrCodeValidation {
		t.Errorf("code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeValidation)
	}
}

func TestAskAllProvidersDown(t *testing.T) {
	svc := NewAdviceService([]ai.Provider{
		&fakeProvider{name: "a", fail: true},
		&fakeProvider{name: "b", fail: true},
	}, time.Second)

	_, err := svc.Ask(context.Background(), "chickens", "help")
	if apperrors.CodeOf(err) != apperrors.ErrCodeProviderUnavailable {
		t.Errorf("code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeProviderUnavailable)
	}
}

func TestTriageImageSafeDefault(t *testing.T) {
	svc := NewAdviceService([]ai.Provider{
		&fakeProvider{name: "dead", fail: true},
	}, time.Second)

	triage, err := svc.TriageImage(context.Background(), "chickens", []byte{0xff, 0xd8}, "image/jpeg", "")
	if err != nil {
		t.Fatal(err)
	}
	if !triage.ShouldContactVet {
		t.Error("safe default must recommend a vet")
	}
	if triage.DiseaseDetected {
		t.Error("safe default must not claim a detection")
	}
	if triage.Urgency != "medium" || triage.Confidence != 0 {
		t.Errorf("safe default = %+v", triage)
	}
}

func TestTriageImagePassesSymptoms(t *testing.T) {
	provider := &fakeProvider{name: "primary"}
	svc := NewAdviceService([]ai.Provider{provider}, time.Second)

	_, err := svc.TriageImage(context.Background(), "chickens", []byte{0xff, 0xd8}, "image/jpeg", "greenish droppings since Monday")
	if err != nil {
		t.Fatal(err)
	}
	if provider.lastSymptoms != "greenish droppings since Monday" {
		t.Errorf("symptoms = %q, did not reach the provider", provider.lastSymptoms)
	}
}

func TestTriageImageFullResult(t *testing.T) {
	provider := &fakeProvider{
		name: "primary",
		triage: &ai.Triage{
			DiseaseDetected:   true,
			Confidence:        85,
			CandidateDiseases: []string{"Newcastle Disease", "Avian Influenza"},
			Observation:       "swollen eyes and twisted neck",
			Urgency:           "critical",
			ShouldContactVet:  true,
		},
	}
	svc := NewAdviceService([]ai.Provider{provider}, time.Second)

	triage, err := svc.TriageImage(context.Background(), "chickens", []byte{0xff, 0xd8}, "image/jpeg", "")
	if err != nil {
		t.Fatal(err)
	}
	if !triage.DiseaseDetected || triage.Urgency != "critical" {
		t.Errorf("triage = %+v, want the provider's critical detection", triage)
	}
	if triage.Confidence != 85 {
		t.Errorf("Confidence = %v, want 85", triage.Confidence)
	}
	if len(triage.CandidateDiseases) != 2 {
		t.Errorf("CandidateDiseases = %v, want both candidates", triage.CandidateDiseases)
	}
}

func TestTriageImageEmpty(t *testing.T) {
	svc := NewAdviceService([]ai.Provider{ai.NewCannedProvider()}, time.Second)

	_, err := svc.TriageImage(context.Background(), "chickens", nil, "", "")
	if apperrors.CodeOf(err) != apperrors.ErrCodeValidation {
		t.Errorf("code = %s, want %s", apperrors.CodeOf(err), apperrors.ErrCodeValidation)
	}
}
