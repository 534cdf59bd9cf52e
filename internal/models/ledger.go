package models

import (
	"time"

	"gorm.io/gorm"
)

// LedgerEntry is a single revenue or expense record.
type LedgerEntry struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	EntryID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_ledger_farmer_entry" json:"entry_id"`
	FarmerID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_ledger_farmer_entry;index" json:"farmer_id"`
	EntryDate   string    `gorm:"type:varchar(10);not null;index" json:"entry_date"`
	Kind        string    `gorm:"type:varchar(10);not null" json:"kind"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

// Entry kind constants
const (
	EntryKindRevenue = "revenue"
	EntryKindExpense = "expense"
)

// BeforeSave hook for validation
func (e *LedgerEntry) BeforeSave(tx *gorm.DB) error {
	if e.Kind != EntryKindRevenue && e.Kind != EntryKindExpense {
		return gorm.ErrInvalidData
	}
	if e.Amount < 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// FinancialSummary aggregates a farmer's ledger.
type FinancialSummary struct {
	TotalRevenue  float64       `json:"total_revenue"`
	TotalExpenses float64       `json:"total_expenses"`
	ProfitLoss    float64       `json:"profit_loss"`
	Recent        []LedgerEntry `json:"recent"`  // most recent 10, date descending
	Entries       []LedgerEntry `json:"entries"` // full list, date descending
}
