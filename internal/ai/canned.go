package ai

import (
	"context"
	"strings"
)

// CannedProvider is the always-available fallback. It matches the question
// against a small keyword table and never fails.
type CannedProvider struct{}

func NewCannedProvider() *CannedProvider {
	return &CannedProvider{}
}

func (p *CannedProvider) Name() string {
	return "canned"
}

type cannedRule struct {
	keywords []string
	answer   string
}

var cannedChicken = []cannedRule{
	{
		keywords: []string{"egg", "laying", "production"},
		answer:   "Low egg production is usually feed or light related. Give 16-18% protein layer feed, keep clean water available all day, and make sure hens get 14-16 hours of light. Check for mites under the wings at night.",
	},
	{
		keywords: []string{"disease", "sick", "dying", "death"},
		answer:   "Separate sick birds immediately and keep the shed dry. Sudden deaths with greenish droppings can be Newcastle disease, so vaccinate the rest of the flock and call your local vet today.",
	},
	{
		keywords: []string{"feed", "diet", "nutrition"},
		answer:   "Feed layers 110-120g per bird per day of balanced layer mash. Add crushed shell or limestone for calcium. Never feed moldy grain, it causes liver damage and drops in laying.",
	},
	{
		keywords: []string{"vaccin"},
		answer:   "A basic schedule: Marek's at day 1, Ranikhet (F1) at day 7, Gumboro at day 14, Ranikhet booster at week 8, and fowl pox at week 6. Keep vaccines cold until use.",
	},
	{
		keywords: []string{"heat", "summer", "temperature"},
		answer:   "In hot weather give cool water in shaded spots, add electrolytes, feed in early morning and late evening, and improve shed ventilation. Wet gunny bags on the shed walls help bring the temperature down.",
	},
}

var cannedPig = []cannedRule{
	{
		keywords: []string{"feed", "diet", "weight", "growth"},
		answer:   "Growing pigs need 16-18% protein feed. Mix grain with kitchen waste only after boiling it well. Clean water should always be available, a grower drinks up to 10 litres a day.",
	},
	{
		keywords: []string{"disease", "sick", "fever", "swine"},
		answer:   "Isolate any pig off its feed with high fever. Swine fever spreads fast, so vaccinate all stock yearly and keep visitors out of the pen. Call the vet before treating on your own.",
	},
	{
		keywords: []string{"breed", "pregnan", "farrow"},
		answer:   "A sow farrows about 114 days after service. Give her a clean, dry, draft-free pen a week before, with soft bedding. Make sure every piglet gets colostrum in the first 6 hours.",
	},
}

var cannedGeneral = []cannedRule{
	{
		keywords: []string{"biosecurity", "clean", "hygiene"},
		answer:   "Keep a footbath with disinfectant at the entrance, allow no outside visitors into the shed, and quarantine new animals for 2 weeks. Clean feeders and waterers daily.",
	},
	{
		keywords: []string{"loan", "scheme", "subsidy", "government"},
		answer:   "Check the schemes section for programs you may qualify for. Your district animal husbandry office can help with applications, and most schemes need only your land record and bank passbook.",
	},
}

const cannedDefault = "Keep the shed clean and dry, provide fresh water and balanced feed, and watch your animals daily for early signs of illness. For anything urgent, contact your local veterinary officer."

func (p *CannedProvider) Ask(_ context.Context, farmType, question string) (*Advice, error) {
	lowered := strings.ToLower(question)

	var tables [][]cannedRule
	switch farmType {
	case "pigs":
		tables = [][]cannedRule{cannedPig, cannedGeneral}
	case "both":
		tables = [][]cannedRule{cannedChicken, cannedPig, cannedGeneral}
	default:
		tables = [][]cannedRule{cannedChicken, cannedGeneral}
	}

	for _, table := range tables {
		for _, rule := range table {
			for _, kw := range rule.keywords {
				if strings.Contains(lowered, kw) {
					return &Advice{Answer: rule.answer, Source: "fallback"}, nil
				}
			}
		}
	}
	return &Advice{Answer: cannedDefault, Source: "fallback"}, nil
}

// TriageImage cannot inspect the photo, so it returns the safe default:
// recommend a vet visit at medium urgency with zero confidence.
func (p *CannedProvider) TriageImage(_ context.Context, _ string, _ []byte, _, _ string) (*Triage, error) {
	return &Triage{
		DiseaseDetected:  false,
		Confidence:       0,
		Observation:      "Automatic image analysis is unavailable right now. Please have the animal checked in person.",
		Urgency:          "medium",
		ShouldContactVet: true,
	}, nil
}
