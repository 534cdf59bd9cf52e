package repositories

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FarmerRepository struct {
	db *gorm.DB
}

func NewFarmerRepository(db *gorm.DB) *FarmerRepository {
	return &FarmerRepository{db: db}
}

func (r *FarmerRepository) GetFarmerByUsername(username string) (*models.Farmer, error) {
	var farmer models.Farmer
	result := r.db.Where("username = ?", username).First(&farmer)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get farmer")
	}

	return &farmer, nil
}

func (r *FarmerRepository) SaveFarmer(f *models.Farmer) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "farm_type"}),
	}).Create(f)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to save farmer")
	}
	return nil
}

// NewStores wires all gorm repositories into the store bundle.
func NewStores(db *gorm.DB) *store.Stores {
	return &store.Stores{
		Records:   NewRecordRepository(db),
		Ledger:    NewLedgerRepository(db),
		Tasks:     NewTaskRepository(db),
		Progress:  NewProgressRepository(db),
		Farms:     NewFarmRepository(db),
		Reference: NewReferenceRepository(db),
		Chat:      NewChatRepository(db),
		Farmers:   NewFarmerRepository(db),
	}
}
