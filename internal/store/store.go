// Package store defines the persistence interfaces behind which all farmer
// state lives. Two implementations exist: the in-memory reference store in
// this package and the gorm-backed repositories in internal/repositories.
// Services depend only on these interfaces.
package store

import (
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
)

// RecordStore persists daily production records keyed by (farmer, date).
type RecordStore interface {
	// UpsertDailyRecord replaces any existing record for the same date.
	UpsertDailyRecord(rec *models.DailyRecord) error
	// GetDailyRecord returns nil, nil when no record exists for the date.
	GetDailyRecord(farmerID, date string) (*models.DailyRecord, error)
}

// LedgerStore persists revenue/expense entries.
type LedgerStore interface {
	AddEntry(e *models.LedgerEntry) error
	// GetEntry returns nil, nil when the entry does not exist for the farmer.
	GetEntry(farmerID, entryID string) (*models.LedgerEntry, error)
	// UpdateEntry replaces the mutable fields of an existing entry.
	UpdateEntry(e *models.LedgerEntry) error
	// DeleteEntry reports whether an entry was actually removed.
	DeleteEntry(farmerID, entryID string) (bool, error)
	// ListEntries returns all live entries ordered by date descending.
	ListEntries(farmerID string) ([]models.LedgerEntry, error)
}

// TaskStore persists daily task boards and their completion sets.
type TaskStore interface {
	// GetBoard returns the board rows in position order; an empty result
	// means the board was never seeded for that date.
	GetBoard(farmerID, date string) ([]models.TaskItem, error)
	// PutBoard seeds a board. Seeding an already-seeded date is a no-op.
	PutBoard(farmerID, date string, items []models.TaskItem) error
	CompletedTaskIDs(farmerID, date string) (map[string]bool, error)
	// MarkCompleted is idempotent: re-marking an already-completed task
	// must not fail or duplicate.
	MarkCompleted(c *models.TaskCompletion) error
}

// ProgressStore persists the per-farmer gamification aggregate.
type ProgressStore interface {
	// GetProgress returns nil, nil when the farmer has no progress row yet.
	GetProgress(farmerID string) (*models.FarmerProgress, error)
	SaveProgress(p *models.FarmerProgress) error
}

// FarmStore holds the read-mostly leaderboard farm table.
type FarmStore interface {
	// ListFarms returns all farms in seed (insertion) order.
	ListFarms() ([]models.Farm, error)
	// GetFarmByOwner returns nil, nil when the farmer owns no farm.
	GetFarmByOwner(ownerID string) (*models.Farm, error)
	CountFarms() (int64, error)
	SeedFarms(farms []models.Farm) error
}

// ReferenceStore holds the static disease/scheme/statistics tables.
type ReferenceStore interface {
	ListDiseases() ([]models.Disease, error)
	ListSchemes() ([]models.Scheme, error)
	ListStatistics() ([]models.FarmStatistics, error)
	SeedReference(diseases []models.Disease, schemes []models.Scheme, stats []models.FarmStatistics) error
}

// ChatStore persists the append-only supplier chat log.
type ChatStore interface {
	AppendMessage(m *models.ChatMessage) error
	// ListMessages returns messages in append order.
	ListMessages(farmerID string) ([]models.ChatMessage, error)
}

// FarmerStore persists login accounts.
type FarmerStore interface {
	// GetFarmerByUsername returns nil, nil when no such account exists.
	GetFarmerByUsername(username string) (*models.Farmer, error)
	SaveFarmer(f *models.Farmer) error
}

// Stores bundles every interface for wiring.
type Stores struct {
	Records   RecordStore
	Ledger    LedgerStore
	Tasks     TaskStore
	Progress  ProgressStore
	Farms     FarmStore
	Reference ReferenceStore
	Chat      ChatStore
	Farmers   FarmerStore
}
