package services

import (
	"testing"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

func seedLeaderboard(t *testing.T) (*LeaderboardService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	farms := []models.Farm{
		{FarmID: "mine", DisplayName: "My Farm", Village: "Gondal", District: "Rajkot", State: "Gujarat", Capacity: 1000, Cleanliness: 80, Biosecurity: 80, Efficiency: 80, OwnerID: "f1"},
		{FarmID: "neighbor", DisplayName: "Neighbor", Village: "Gondal", District: "Rajkot", State: "Gujarat", Capacity: 2000, Cleanliness: 90, Biosecurity: 90, Efficiency: 90},
		{FarmID: "district", DisplayName: "Same District", Village: "Jetpur", District: "Rajkot", State: "Gujarat", Capacity: 500, Cleanliness: 70, Biosecurity: 70, Efficiency: 70},
		{FarmID: "state", DisplayName: "Same State", Village: "Karamsad", District: "Anand", State: "Gujarat", Capacity: 3000, Cleanliness: 85, Biosecurity: 85, Efficiency: 85},
		{FarmID: "national", DisplayName: "Other State", Village: "Mohanur", District: "Namakkal", State: "Tamil Nadu", Capacity: 8000, Cleanliness: 95, Biosecurity: 95, Efficiency: 95},
	}
	if err := mem.SeedFarms(farms); err != nil {
		t.Fatal(err)
	}
	return NewLeaderboardService(mem), mem
}

func TestLeaderboardTierNesting(t *testing.T) {
	svc, _ := seedLeaderboard(t)

	wantSizes := map[string]int{
		models.TierVillage:  2,
		models.TierDistrict: 3,
		models.TierState:    4,
		models.TierNational: 5,
	}

	for tier, want := range wantSizes {
		entries, err := svc.Leaderboard("f1", tier)
		if err != nil {
			t.Fatalf("Leaderboard(%s): %v", tier, err)
		}
		if len(entries) != want {
			t.Errorf("tier %s has %d entries, want %d", tier, len(entries), want)
		}
		for i, e := range entries {
			if e.Rank != i+1 {
				t.Errorf("tier %s entry %d has rank %d", tier, i, e.Rank)
			}
		}
	}
}

func TestLeaderboardOrderAndCallerFlag(t *testing.T) {
	svc, _ := seedLeaderboard(t)

	entries, err := svc.Leaderboard("f1", models.TierVillage)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].FarmID != "neighbor" || entries[1].FarmID != "mine" {
		t.Errorf("village order = %s, %s; want neighbor, mine", entries[0].FarmID, entries[1].FarmID)
	}
	if entries[0].IsCaller || !entries[1].IsCaller {
		t.Error("IsCaller flag on the wrong entry")
	}
}

func TestLeaderboardStableTies(t *testing.T) {
	mem := store.NewMemoryStore()
	// identical scores, seeded in a fixed order
	farms := []models.Farm{
		{FarmID: "first", Village: "V", District: "D", State: "S", Capacity: 1000, Cleanliness: 80, Biosecurity: 80, Efficiency: 80},
		{FarmID: "second", Village: "V", District: "D", State: "S", Capacity: 1000, Cleanliness: 80, Biosecurity: 80, Efficiency: 80},
		{FarmID: "third", Village: "V", District: "D", State: "S", Capacity: 1000, Cleanliness: 80, Biosecurity: 80, Efficiency: 80},
	}
	if err := mem.SeedFarms(farms); err != nil {
		t.Fatal(err)
	}
	svc := NewLeaderboardService(mem)

	entries, err := svc.Leaderboard("nobody", models.TierNational)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].FarmID != want {
			t.Errorf("entries[%d] = %s, want %s (ties must keep seed order)", i, entries[i].FarmID, want)
		}
	}
}

func TestLeaderboardWithoutOwnedFarm(t *testing.T) {
	svc, _ := seedLeaderboard(t)

	// national works for everyone
	national, err := svc.Leaderboard("stranger", models.TierNational)
	if err != nil {
		t.Fatal(err)
	}
	if len(national) != 5 {
		t.Errorf("national entries = %d, want 5", len(national))
	}

	// regional tiers have no anchor without a farm
	village, err := svc.Leaderboard("stranger", models.TierVillage)
	if err != nil {
		t.Fatal(err)
	}
	if len(village) != 0 {
		t.Errorf("village entries = %d, want 0 for caller without a farm", len(village))
	}
}

func TestLeaderboardUnknownTier(t *testing.T) {
	svc, _ := seedLeaderboard(t)

	_, err := svc.Leaderboard("f1", "galaxy")
	if errors.CodeOf(err) != errors.ErrCodeValidation {
		t.Errorf("code = %s, want %s", errors.CodeOf(err), errors.ErrCodeValidation)
	}
}

func TestRanksAcrossTiers(t *testing.T) {
	svc, _ := seedLeaderboard(t)

	ranks, err := svc.RanksAcrossTiers("f1")
	if err != nil {
		t.Fatal(err)
	}
	if len(ranks) != 4 {
		t.Fatalf("len(ranks) = %d, want 4", len(ranks))
	}

	byTier := map[string]models.TierRank{}
	for _, r := range ranks {
		byTier[r.Tier] = r
	}

	if r := byTier[models.TierVillage]; r.Rank != 2 || r.TotalParticipants != 2 {
		t.Errorf("village rank = %d/%d, want 2/2", r.Rank, r.TotalParticipants)
	}
	if r := byTier[models.TierNational]; r.TotalParticipants != 5 {
		t.Errorf("national participants = %d, want 5", r.TotalParticipants)
	}
}

func TestRanksAcrossTiersNoFarm(t *testing.T) {
	svc, _ := seedLeaderboard(t)

	ranks, err := svc.RanksAcrossTiers("stranger")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range ranks {
		if r.Rank != 0 || r.TotalParticipants != 0 {
			t.Errorf("tier %s = %d/%d, want neutral zeros", r.Tier, r.Rank, r.TotalParticipants)
		}
	}
}
