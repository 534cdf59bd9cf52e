package repositories

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"gorm.io/gorm"
)

type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ListDiseases() ([]models.Disease, error) {
	var diseases []models.Disease
	result := r.db.Order("id ASC").Find(&diseases)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list diseases")
	}
	return diseases, nil
}

func (r *ReferenceRepository) ListSchemes() ([]models.Scheme, error) {
	var schemes []models.Scheme
	result := r.db.Order("id ASC").Find(&schemes)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list schemes")
	}
	return schemes, nil
}

func (r *ReferenceRepository) ListStatistics() ([]models.FarmStatistics, error) {
	var stats []models.FarmStatistics
	result := r.db.Order("id ASC").Find(&stats)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list statistics")
	}
	return stats, nil
}

func (r *ReferenceRepository) SeedReference(diseases []models.Disease, schemes []models.Scheme, stats []models.FarmStatistics) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Disease{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to count diseases")
		}
		if count == 0 && len(diseases) > 0 {
			if err := tx.Create(&diseases).Error; err != nil {
				return errors.Wrap(err, errors.ErrCodeInternalError, "failed to seed diseases")
			}
		}

		if err := tx.Model(&models.Scheme{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to count schemes")
		}
		if count == 0 && len(schemes) > 0 {
			if err := tx.Create(&schemes).Error; err != nil {
				return errors.Wrap(err, errors.ErrCodeInternalError, "failed to seed schemes")
			}
		}

		if err := tx.Model(&models.FarmStatistics{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to count statistics")
		}
		if count == 0 && len(stats) > 0 {
			if err := tx.Create(&stats).Error; err != nil {
				return errors.Wrap(err, errors.ErrCodeInternalError, "failed to seed statistics")
			}
		}

		return nil
	})
}
