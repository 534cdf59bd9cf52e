package repositories

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"gorm.io/gorm"
)

type FarmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) *FarmRepository {
	return &FarmRepository{db: db}
}

func (r *FarmRepository) ListFarms() ([]models.Farm, error) {
	var farms []models.Farm
	result := r.db.Order("position ASC").Find(&farms)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list farms")
	}
	return farms, nil
}

func (r *FarmRepository) GetFarmByOwner(ownerID string) (*models.Farm, error) {
	if ownerID == "" {
		return nil, nil
	}

	var farm models.Farm
	result := r.db.Where("owner_id = ?", ownerID).First(&farm)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get farm by owner")
	}

	return &farm, nil
}

func (r *FarmRepository) CountFarms() (int64, error) {
	var count int64
	result := r.db.Model(&models.Farm{}).Count(&count)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to count farms")
	}
	return count, nil
}

func (r *FarmRepository) SeedFarms(farms []models.Farm) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Farm{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to count farms")
		}
		if count > 0 {
			return nil
		}
		for i := range farms {
			farms[i].Position = i
		}
		if err := tx.Create(&farms).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to seed farms")
		}
		return nil
	})
}
