package repositories

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"gorm.io/gorm"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) AddEntry(e *models.LedgerEntry) error {
	result := r.db.Create(e)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to add ledger entry")
	}
	return nil
}

func (r *LedgerRepository) GetEntry(farmerID, entryID string) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	result := r.db.Where("farmer_id = ? AND entry_id = ?", farmerID, entryID).First(&entry)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get ledger entry")
	}

	return &entry, nil
}

// UpdateEntry replaces the mutable fields of an existing entry in one update.
func (r *LedgerRepository) UpdateEntry(e *models.LedgerEntry) error {
	result := r.db.Model(&models.LedgerEntry{}).
		Where("farmer_id = ? AND entry_id = ?", e.FarmerID, e.EntryID).
		Updates(map[string]interface{}{
			"entry_date":  e.EntryDate,
			"kind":        e.Kind,
			"amount":      e.Amount,
			"description": e.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update ledger entry")
	}
	return nil
}

func (r *LedgerRepository) DeleteEntry(farmerID, entryID string) (bool, error) {
	result := r.db.Where("farmer_id = ? AND entry_id = ?", farmerID, entryID).Delete(&models.LedgerEntry{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to delete ledger entry")
	}
	return result.RowsAffected > 0, nil
}

func (r *LedgerRepository) ListEntries(farmerID string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	result := r.db.Where("farmer_id = ?", farmerID).
		Order("entry_date DESC, id ASC").
		Find(&entries)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list ledger entries")
	}
	return entries, nil
}
