package repositories

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) GetProgress(farmerID string) (*models.FarmerProgress, error) {
	var p models.FarmerProgress
	result := r.db.Where("farmer_id = ?", farmerID).First(&p)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get progress")
	}

	return &p, nil
}

func (r *ProgressRepository) SaveProgress(p *models.FarmerProgress) error {
	var existing models.FarmerProgress
	result := r.db.Where("farmer_id = ?", p.FarmerID).First(&existing)

	if result.Error == gorm.ErrRecordNotFound {
		if err := r.db.Create(p).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create progress")
		}
		return nil
	}
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to load progress")
	}

	p.ID = existing.ID
	if err := r.db.Save(p).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to save progress")
	}
	return nil
}
