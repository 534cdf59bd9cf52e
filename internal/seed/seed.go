// Package seed holds the startup catalogs shared by both storage backends:
// competitor farms for the leaderboard, the disease/scheme reference tables,
// sector statistics, the daily task catalog and a week of demo records.
package seed

import (
	"fmt"
	"time"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
)

// TaskSpec describes one entry of the daily biosecurity checklist.
type TaskSpec struct {
	TaskID string
	Label  string
	Points int
}

// DailyTaskCatalog is the fixed checklist seeded onto every new task board.
func DailyTaskCatalog() []TaskSpec {
	return []TaskSpec{
		{TaskID: "clean_water", Label: "Clean and refill water systems", Points: 10},
		{TaskID: "inspect_birds", Label: "Inspect birds for disease symptoms", Points: 15},
		{TaskID: "disinfect_entry", Label: "Disinfect footbaths at entry points", Points: 10},
		{TaskID: "check_feed", Label: "Check feed quality and quantities", Points: 10},
		{TaskID: "record_mortality", Label: "Record mortality and cull counts", Points: 15},
		{TaskID: "ventilation_check", Label: "Verify ventilation and shed temperature", Points: 10},
		{TaskID: "egg_hygiene", Label: "Collect eggs with clean, dry hands", Points: 10},
		{TaskID: "visitor_log", Label: "Update the farm visitor log", Points: 10},
	}
}

// Farms returns the seeded leaderboard table. The adminID farm is the one
// owned row; the rest are competitor farms.
func Farms(adminID string) []models.Farm {
	return []models.Farm{
		{FarmID: "farm-yashoda", DisplayName: "Yashoda Poultry Farm", Village: "Gondal", District: "Rajkot", State: "Gujarat", Capacity: 1500, Cleanliness: 88, Biosecurity: 85, Efficiency: 90, OwnerID: adminID},
		{FarmID: "farm-shree", DisplayName: "Shree Krishna Farms", Village: "Gondal", District: "Rajkot", State: "Gujarat", Capacity: 2200, Cleanliness: 82, Biosecurity: 88, Efficiency: 84},
		{FarmID: "farm-patel", DisplayName: "Patel Layer House", Village: "Jetpur", District: "Rajkot", State: "Gujarat", Capacity: 900, Cleanliness: 91, Biosecurity: 79, Efficiency: 86},
		{FarmID: "farm-saurashtra", DisplayName: "Saurashtra Eggs", Village: "Dhoraji", District: "Rajkot", State: "Gujarat", Capacity: 3100, Cleanliness: 75, Biosecurity: 92, Efficiency: 81},
		{FarmID: "farm-anand", DisplayName: "Anand Broilers", Village: "Karamsad", District: "Anand", State: "Gujarat", Capacity: 1800, Cleanliness: 86, Biosecurity: 83, Efficiency: 88},
		{FarmID: "farm-amul", DisplayName: "Amrutva Farms", Village: "Vallabh Vidyanagar", District: "Anand", State: "Gujarat", Capacity: 2600, Cleanliness: 89, Biosecurity: 90, Efficiency: 87},
		{FarmID: "farm-nashik", DisplayName: "Nashik Poultry Co", Village: "Sinnar", District: "Nashik", State: "Maharashtra", Capacity: 4200, Cleanliness: 84, Biosecurity: 86, Efficiency: 92},
		{FarmID: "farm-pune", DisplayName: "Deccan Layer Farms", Village: "Shirur", District: "Pune", State: "Maharashtra", Capacity: 5000, Cleanliness: 80, Biosecurity: 81, Efficiency: 85},
		{FarmID: "farm-namakkal", DisplayName: "Namakkal Egg City", Village: "Mohanur", District: "Namakkal", State: "Tamil Nadu", Capacity: 8000, Cleanliness: 87, Biosecurity: 89, Efficiency: 94},
		{FarmID: "farm-erode", DisplayName: "Kaveri Poultry", Village: "Bhavani", District: "Erode", State: "Tamil Nadu", Capacity: 2900, Cleanliness: 78, Biosecurity: 76, Efficiency: 80},
	}
}

// Diseases returns the static disease reference table.
func Diseases() []models.Disease {
	return []models.Disease{
		{
			Name:       "Newcastle Disease",
			FarmTypes:  "chickens",
			Symptoms:   "Greenish diarrhea, twisted neck, paralysis, drop in egg production, gasping",
			Treatment:  "No specific treatment; cull affected birds and vaccinate healthy stock (LaSota strain)",
			Prevention: "Routine vaccination, strict biosecurity, quarantine new birds for 21 days",
		},
		{
			Name:       "Avian Influenza",
			FarmTypes:  "chickens",
			Symptoms:   "Sudden death, swollen head, blue comb and wattles, respiratory distress",
			Treatment:  "No treatment; notify authorities immediately and cull per protocol",
			Prevention: "Restrict farm access, disinfect equipment, keep wild birds away from sheds",
		},
		{
			Name:       "Infectious Bronchitis",
			FarmTypes:  "chickens",
			Symptoms:   "Coughing, sneezing, nasal discharge, soft-shelled or misshapen eggs",
			Treatment:  "Supportive care, warmth, antibiotics for secondary infections",
			Prevention: "Vaccination at day-old and boosters, good ventilation",
		},
		{
			Name:       "Coccidiosis",
			FarmTypes:  "chickens",
			Symptoms:   "Bloody droppings, ruffled feathers, pale combs, reduced weight gain",
			Treatment:  "Anticoccidial drugs (amprolium) in water, improve litter management",
			Prevention: "Dry litter, clean waterers, coccidiostat in starter feed",
		},
		{
			Name:       "Fowl Pox",
			FarmTypes:  "chickens",
			Symptoms:   "Wart-like nodules on comb and wattles, scabs, reduced egg production",
			Treatment:  "No specific treatment; apply antiseptic to lesions, support nutrition",
			Prevention: "Wing-web vaccination, mosquito control around sheds",
		},
		{
			Name:       "Classical Swine Fever",
			FarmTypes:  "pigs",
			Symptoms:   "High fever, huddling, purple skin discoloration, weakness of hind legs",
			Treatment:  "No treatment; report to veterinary authorities and isolate the herd",
			Prevention: "Vaccination, avoid swill feeding, control farm entry",
		},
		{
			Name:       "Foot and Mouth Disease",
			FarmTypes:  "pigs,both",
			Symptoms:   "Blisters on snout and feet, lameness, fever, excessive salivation",
			Treatment:  "Supportive care; report outbreak, disinfect premises",
			Prevention: "Biannual vaccination, restrict animal movement during outbreaks",
		},
	}
}

// Schemes returns the government scheme reference table.
func Schemes() []models.Scheme {
	return []models.Scheme{
		{
			Name:        "National Livestock Mission",
			FarmTypes:   "chickens,pigs,both",
			Description: "Central scheme for entrepreneurship development and breed improvement in poultry and piggery",
			Eligibility: "Individual farmers, SHGs, FPOs and section 8 companies",
			Benefit:     "50% capital subsidy up to Rs 25 lakh for poultry, Rs 30 lakh for piggery",
		},
		{
			Name:        "Poultry Venture Capital Fund",
			FarmTypes:   "chickens",
			Description: "NABARD-refinanced subsidy scheme for poultry units, feed plants and cold chain",
			Eligibility: "Farmers, individual entrepreneurs, NGOs, cooperatives",
			Benefit:     "25% back-ended capital subsidy (33% for SC/ST beneficiaries)",
		},
		{
			Name:        "Kisan Credit Card - Animal Husbandry",
			FarmTypes:   "chickens,pigs,both",
			Description: "Working capital credit for animal husbandry at concessional interest",
			Eligibility: "Farmers engaged in poultry or pig rearing with basic KYC",
			Benefit:     "Credit up to Rs 2 lakh at subsidised interest with prompt-repayment incentive",
		},
		{
			Name:        "National Animal Disease Control Programme",
			FarmTypes:   "pigs,both",
			Description: "Vaccination programme against FMD and brucellosis",
			Eligibility: "All livestock farmers; vaccination delivered free of cost",
			Benefit:     "Free vaccination and ear-tagging for eligible animals",
		},
	}
}

// Statistics returns the seeded sector statistics rows.
func Statistics() []models.FarmStatistics {
	return []models.FarmStatistics{
		{
			FarmType:           models.FarmTypePigs,
			TotalPopulation:    45000000,
			RegisteredFarms:    5800,
			AnnualProductionMT: 2.5,
			FarmersBenefitted:  1200000,
			GrowthRatePercent:  8.5,
		},
		{
			FarmType:           models.FarmTypeChickens,
			TotalPopulation:    851600000,
			RegisteredFarms:    42500,
			AnnualProductionMT: 12.8,
			FarmersBenefitted:  3500000,
			GrowthRatePercent:  12.3,
		},
	}
}

// SampleDailyRecords returns a week of demonstration production data ending
// today, matching the original application's bootstrap dataset.
func SampleDailyRecords(farmerID string, today time.Time) []models.DailyRecord {
	sample := []models.DailyRecord{
		{BirdCount: 150, EggsCollected: 120, FeedKg: 25.5, OtherExpenses: 150.0},
		{BirdCount: 148, EggsCollected: 115, FeedKg: 24.8, OtherExpenses: 140.0},
		{BirdCount: 152, EggsCollected: 125, FeedKg: 26.2, OtherExpenses: 160.0},
		{BirdCount: 151, EggsCollected: 118, FeedKg: 25.0, OtherExpenses: 145.0},
		{BirdCount: 149, EggsCollected: 122, FeedKg: 24.5, OtherExpenses: 155.0},
		{BirdCount: 153, EggsCollected: 128, FeedKg: 26.8, OtherExpenses: 170.0},
		{BirdCount: 150, EggsCollected: 130, FeedKg: 25.2, OtherExpenses: 165.0},
	}

	for i := range sample {
		sample[i].FarmerID = farmerID
		sample[i].RecordDate = today.AddDate(0, 0, -(len(sample) - 1 - i)).Format(models.DateLayout)
	}
	return sample
}

// Apply seeds every read-mostly table and the demo dataset. All seed paths
// are idempotent, so restarting against a durable backend changes nothing.
func Apply(stores *store.Stores, adminID string, today time.Time, withDemoData bool) error {
	if err := stores.Farms.SeedFarms(Farms(adminID)); err != nil {
		return fmt.Errorf("seeding farms: %w", err)
	}
	if err := stores.Reference.SeedReference(Diseases(), Schemes(), Statistics()); err != nil {
		return fmt.Errorf("seeding reference tables: %w", err)
	}

	if withDemoData {
		for _, rec := range SampleDailyRecords(adminID, today) {
			r := rec
			if err := stores.Records.UpsertDailyRecord(&r); err != nil {
				return fmt.Errorf("seeding sample records: %w", err)
			}
		}
	}

	logger.Info("Seed data applied", "farms", len(Farms(adminID)), "diseases", len(Diseases()), "demo_data", withDemoData)
	return nil
}
