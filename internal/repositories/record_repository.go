package repositories

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// UpsertDailyRecord replaces any existing record for the same (farmer, date).
func (r *RecordRepository) UpsertDailyRecord(rec *models.DailyRecord) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "farmer_id"}, {Name: "record_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"bird_count", "eggs_collected", "feed_kg", "other_expenses", "updated_at",
		}),
	}).Create(rec)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to upsert daily record")
	}
	return nil
}

func (r *RecordRepository) GetDailyRecord(farmerID, date string) (*models.DailyRecord, error) {
	var rec models.DailyRecord
	result := r.db.Where("farmer_id = ? AND record_date = ?", farmerID, date).First(&rec)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get daily record")
	}

	return &rec, nil
}
