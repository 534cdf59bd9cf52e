package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/security"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

// FinanceService manages the manual revenue/expense ledger that sits
// alongside the daily records.
type FinanceService struct {
	ledger store.LedgerStore
	locks  *UserLocks
}

func NewFinanceService(ledger store.LedgerStore, locks *UserLocks) *FinanceService {
	return &FinanceService{ledger: ledger, locks: locks}
}

func (s *FinanceService) validateEntry(date, kind string, amount float64) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return errors.Wrap(err, errors.ErrCodeValidation, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}
	if kind != models.EntryKindRevenue && kind != models.EntryKindExpense {
		return errors.New(errors.ErrCodeValidation, fmt.Sprintf("invalid entry kind %q", kind))
	}
	if amount < 0 {
		return errors.New(errors.ErrCodeValidation, "amount must not be negative")
	}
	return nil
}

// AddEntry records a new ledger entry and returns it with its generated ID.
func (s *FinanceService) AddEntry(farmerID, date, kind string, amount float64, description string) (*models.LedgerEntry, error) {
	if err := s.validateEntry(date, kind, amount); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(farmerID)
	defer unlock()

	entry := &models.LedgerEntry{
		EntryID:     uuid.NewString(),
		FarmerID:    farmerID,
		EntryDate:   date,
		Kind:        kind,
		Amount:      amount,
		Description: security.SanitizeUserText(description),
	}
	if err := s.ledger.AddEntry(entry); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to save ledger entry")
	}
	return entry, nil
}

// UpdateEntry edits an existing entry in place. Unknown IDs are a NOT_FOUND.
func (s *FinanceService) UpdateEntry(farmerID, entryID, date, kind string, amount float64, description string) (*models.LedgerEntry, error) {
	if err := s.validateEntry(date, kind, amount); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(farmerID)
	defer unlock()

	existing, err := s.ledger.GetEntry(farmerID, entryID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to load ledger entry")
	}
	if existing == nil {
		return nil, errors.New(errors.ErrCodeNotFound, fmt.Sprintf("ledger entry %s not found", entryID))
	}

	existing.EntryDate = date
	existing.Kind = kind
	existing.Amount = amount
	existing.Description = security.SanitizeUserText(description)
	if err := s.ledger.UpdateEntry(existing); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to update ledger entry")
	}
	return existing, nil
}

// DeleteEntry removes an entry permanently. Deleted entries no longer count
// toward any totals.
func (s *FinanceService) DeleteEntry(farmerID, entryID string) error {
	unlock := s.locks.Lock(farmerID)
	defer unlock()

	deleted, err := s.ledger.DeleteEntry(farmerID, entryID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to delete ledger entry")
	}
	if !deleted {
		return errors.New(errors.ErrCodeNotFound, fmt.Sprintf("ledger entry %s not found", entryID))
	}
	return nil
}

// Summary returns running totals plus the most recent entries, newest first.
func (s *FinanceService) Summary(farmerID string) (*models.FinancialSummary, error) {
	entries, err := s.ledger.ListEntries(farmerID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list ledger entries")
	}

	summary := &models.FinancialSummary{Entries: entries}
	for _, e := range entries {
		switch e.Kind {
		case models.EntryKindRevenue:
			summary.TotalRevenue += e.Amount
		case models.EntryKindExpense:
			summary.TotalExpenses += e.Amount
		}
	}
	summary.ProfitLoss = summary.TotalRevenue - summary.TotalExpenses

	recent := entries
	if len(recent) > 10 {
		recent = recent[:10]
	}
	summary.Recent = recent
	return summary, nil
}
