package services

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

// RecordService owns daily production records and the dashboard/report views
// derived from them. "Today" always comes from the injected clock.
type RecordService struct {
	records       store.RecordStore
	clock         clockwork.Clock
	eggPrice      float64
	feedCostPerKg float64
}

func NewRecordService(records store.RecordStore, clock clockwork.Clock, eggPrice, feedCostPerKg float64) *RecordService {
	return &RecordService{
		records:       records,
		clock:         clock,
		eggPrice:      eggPrice,
		feedCostPerKg: feedCostPerKg,
	}
}

// UpsertDailyRecord adds or replaces the record for a date.
func (s *RecordService) UpsertDailyRecord(farmerID, date string, birdCount, eggs int, feedKg, otherExpenses float64) (*models.DailyRecord, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, errors.New(errors.ErrCodeValidation, "date must be in YYYY-MM-DD format")
	}
	if birdCount < 0 || eggs < 0 || feedKg < 0 || otherExpenses < 0 {
		return nil, errors.New(errors.ErrCodeValidation, "record fields must be non-negative")
	}

	rec := &models.DailyRecord{
		FarmerID:      farmerID,
		RecordDate:    date,
		BirdCount:     birdCount,
		EggsCollected: eggs,
		FeedKg:        feedKg,
		OtherExpenses: otherExpenses,
	}
	if err := s.records.UpsertDailyRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DashboardSnapshot returns today's record, falling back to yesterday's and
// then to all zeros. Profit/loss uses the configured market prices:
// eggs x egg_price - (other_expenses + feed_kg x feed_cost_per_kg).
func (s *RecordService) DashboardSnapshot(farmerID string) (*models.DashboardSnapshot, error) {
	now := s.clock.Now()
	today := now.Format(models.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)

	rec, err := s.records.GetDailyRecord(farmerID, today)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec, err = s.records.GetDailyRecord(farmerID, yesterday)
		if err != nil {
			return nil, err
		}
	}
	if rec == nil {
		return &models.DashboardSnapshot{}, nil
	}

	revenue := float64(rec.EggsCollected) * s.eggPrice
	feedCost := rec.FeedKg * s.feedCostPerKg
	return &models.DashboardSnapshot{
		BirdCount:     rec.BirdCount,
		EggsToday:     rec.EggsCollected,
		FeedToday:     rec.FeedKg,
		OtherExpenses: rec.OtherExpenses,
		ProfitLoss:    revenue - (rec.OtherExpenses + feedCost),
	}, nil
}

// TimeSeries returns exactly `days` points covering the trailing days ending
// today, in ascending date order, zero-filled where no record exists.
func (s *RecordService) TimeSeries(farmerID string, days int) ([]models.SeriesPoint, error) {
	if days <= 0 {
		days = 7
	}

	end := s.clock.Now()
	points := make([]models.SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		date := day.Format(models.DateLayout)

		point := models.SeriesPoint{
			DateLabel: day.Format("01/02"),
			Date:      date,
		}
		rec, err := s.records.GetDailyRecord(farmerID, date)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			point.Eggs = rec.EggsCollected
			point.FeedKg = rec.FeedKg
		}
		points = append(points, point)
	}
	return points, nil
}
