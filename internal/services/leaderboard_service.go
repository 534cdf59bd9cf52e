package services

import (
	"fmt"
	"sort"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

// LeaderboardService ranks farms within geographic tiers. Ranks are computed
// at view time from the stored farms; nothing is persisted per query.
type LeaderboardService struct {
	farms store.FarmStore
}

func NewLeaderboardService(farms store.FarmStore) *LeaderboardService {
	return &LeaderboardService{farms: farms}
}

func validTier(tier string) bool {
	switch tier {
	case models.TierVillage, models.TierDistrict, models.TierState, models.TierNational:
		return true
	}
	return false
}

// tierMatch reports whether a farm belongs to the caller's tier region.
// Region comparison is exact and case-sensitive.
func tierMatch(tier string, farm, caller *models.Farm) bool {
	switch tier {
	case models.TierNational:
		return true
	case models.TierState:
		return farm.State == caller.State
	case models.TierDistrict:
		return farm.District == caller.District
	case models.TierVillage:
		return farm.Village == caller.Village
	}
	return false
}

// rankFarms sorts by total score descending. Ties keep seed order, so the
// sort must be stable.
func rankFarms(farms []models.Farm) []models.Farm {
	ranked := make([]models.Farm, len(farms))
	copy(ranked, farms)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore() > ranked[j].TotalScore()
	})
	return ranked
}

// Leaderboard returns the ranked farms in one tier from the caller's point
// of view. Non-national tiers require the caller to own a farm, since the
// region filter is anchored on it; a caller without a farm gets an empty
// board for those tiers.
func (s *LeaderboardService) Leaderboard(farmerID, tier string) ([]models.LeaderboardEntry, error) {
	if !validTier(tier) {
		return nil, errors.New(errors.ErrCodeValidation, fmt.Sprintf("unknown leaderboard tier %q", tier))
	}

	all, err := s.farms.ListFarms()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list farms")
	}

	caller, err := s.farms.GetFarmByOwner(farmerID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load caller farm")
	}
	if caller == nil && tier != models.TierNational {
		return []models.LeaderboardEntry{}, nil
	}

	var pool []models.Farm
	for _, farm := range all {
		if tier == models.TierNational || tierMatch(tier, &farm, caller) {
			pool = append(pool, farm)
		}
	}

	ranked := rankFarms(pool)
	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	for i, farm := range ranked {
		entries = append(entries, models.LeaderboardEntry{
			Rank:        i + 1,
			FarmID:      farm.FarmID,
			DisplayName: farm.DisplayName,
			Village:     farm.Village,
			District:    farm.District,
			State:       farm.State,
			Capacity:    farm.Capacity,
			TotalScore:  farm.TotalScore(),
			IsCaller:    caller != nil && farm.FarmID == caller.FarmID,
		})
	}
	return entries, nil
}

// RanksAcrossTiers reports where the caller's farm sits in every tier at
// once. A caller without a farm gets neutral zero ranks.
func (s *LeaderboardService) RanksAcrossTiers(farmerID string) ([]models.TierRank, error) {
	tiers := []string{models.TierVillage, models.TierDistrict, models.TierState, models.TierNational}

	caller, err := s.farms.GetFarmByOwner(farmerID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load caller farm")
	}
	if caller == nil {
		ranks := make([]models.TierRank, 0, len(tiers))
		for _, tier := range tiers {
			ranks = append(ranks, models.TierRank{Tier: tier})
		}
		return ranks, nil
	}

	all, err := s.farms.ListFarms()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list farms")
	}

	ranks := make([]models.TierRank, 0, len(tiers))
	for _, tier := range tiers {
		var pool []models.Farm
		for _, farm := range all {
			if tierMatch(tier, &farm, caller) {
				pool = append(pool, farm)
			}
		}
		ranked := rankFarms(pool)
		rank := 0
		for i, farm := range ranked {
			if farm.FarmID == caller.FarmID {
				rank = i + 1
				break
			}
		}
		ranks = append(ranks, models.TierRank{
			Tier:              tier,
			Rank:              rank,
			TotalParticipants: len(ranked),
		})
	}
	return ranks, nil
}
