package services

import (
	"testing"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

func newFinanceFixture() *FinanceService {
	return NewFinanceService(store.NewMemoryStore(), NewUserLocks())
}

func TestFinanceAddAndSummary(t *testing.T) {
	svc := newFinanceFixture()

	if _, err := svc.AddEntry("f1", "2025-06-10", models.EntryKindRevenue, 1200, "egg sales"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddEntry("f1", "2025-06-11", models.EntryKindExpense, 450, "feed purchase"); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.Summary("f1")
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalRevenue != 1200 {
		t.Errorf("TotalRevenue = %.2f, want 1200", summary.TotalRevenue)
	}
	if summary.TotalExpenses != 450 {
		t.Errorf("TotalExpenses = %.2f, want 450", summary.TotalExpenses)
	}
	if summary.ProfitLoss != 750 {
		t.Errorf("ProfitLoss = %.2f, want 750", summary.ProfitLoss)
	}
	if len(summary.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(summary.Entries))
	}
	// newest first
	if summary.Entries[0].EntryDate != "2025-06-11" {
		t.Errorf("Entries[0].EntryDate = %s, want 2025-06-11", summary.Entries[0].EntryDate)
	}
}

func TestFinanceUpdateEntry(t *testing.T) {
	svc := newFinanceFixture()

	entry, err := svc.AddEntry("f1", "2025-06-10", models.EntryKindExpense, 100, "vaccines")
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateEntry("f1", entry.EntryID, "2025-06-10", models.EntryKindExpense, 175, "vaccines and syringes")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Amount != 175 {
		t.Errorf("Amount = %.2f, want 175", updated.Amount)
	}

	summary, err := svc.Summary("f1")
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalExpenses != 175 {
		t.Errorf("TotalExpenses = %.2f, want 175 after edit", summary.TotalExpenses)
	}
}

func TestFinanceUpdateMissingEntry(t *testing.T) {
	svc := newFinanceFixture()

	_, err := svc.UpdateEntry("f1", "no-such-id", "2025-06-10", models.EntryKindExpense, 50, "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("code = %s, want %s", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestFinanceDeleteExcludesFromTotals(t *testing.T) {
	svc := newFinanceFixture()

	keep, err := svc.AddEntry("f1", "2025-06-10", models.EntryKindRevenue, 500, "")
	if err != nil {
		t.Fatal(err)
	}
	drop, err := svc.AddEntry("f1", "2025-06-11", models.EntryKindRevenue, 300, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteEntry("f1", drop.EntryID); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.Summary("f1")
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalRevenue != 500 {
		t.Errorf("TotalRevenue = %.2f, want 500 after delete", summary.TotalRevenue)
	}
	if len(summary.Entries) != 1 || summary.Entries[0].EntryID != keep.EntryID {
		t.Errorf("deleted entry still listed: %+v", summary.Entries)
	}

	// double delete
	err = svc.DeleteEntry("f1", drop.EntryID)
	if errors.CodeOf(err) != errors.ErrCodeNotFound {
		t.Errorf("second delete code = %s, want %s", errors.CodeOf(err), errors.ErrCodeNotFound)
	}
}

func TestFinanceValidation(t *testing.T) {
	svc := newFinanceFixture()

	tests := []struct {
		name   string
		date   string
		kind   string
		amount float64
	}{
		{"Bad date", "June 10", models.EntryKindRevenue, 10},
		{"Bad kind", "2025-06-10", "income", 10},
		{"Negative amount", "2025-06-10", models.EntryKindExpense, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddEntry("f1", tt.date, tt.kind, tt.amount, "")
			if errors.CodeOf(err) != errors.ErrCodeValidation {
				t.Errorf("code = %s, want %s", errors.CodeOf(err), errors.ErrCodeValidation)
			}
		})
	}
}

func TestFinanceZeroAmountAllowed(t *testing.T) {
	svc := newFinanceFixture()

	entry, err := svc.AddEntry("f1", "2025-06-10", models.EntryKindExpense, 0, "free feed sample")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Amount != 0 {
		t.Errorf("Amount = %.2f, want 0", entry.Amount)
	}

	summary, err := svc.Summary("f1")
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalExpenses != 0 || len(summary.Entries) != 1 {
		t.Errorf("summary = %+v, want the zero entry recorded without affecting totals", summary)
	}
}

func TestFinanceSummaryRecentCap(t *testing.T) {
	svc := newFinanceFixture()

	for i := 0; i < 12; i++ {
		date := "2025-06-01"
		if _, err := svc.AddEntry("f1", date, models.EntryKindExpense, float64(i+1), ""); err != nil {
			t.Fatal(err)
		}
	}

	summary, err := svc.Summary("f1")
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Recent) != 10 {
		t.Errorf("len(Recent) = %d, want 10", len(summary.Recent))
	}
	if len(summary.Entries) != 12 {
		t.Errorf("len(Entries) = %d, want 12", len(summary.Entries))
	}
}
