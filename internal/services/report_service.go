package services

import (
	"bytes"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/xuri/excelize/v2"

	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/internal/store"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
)

// ReportService exports a farmer's records and ledger as an Excel workbook.
type ReportService struct {
	records       *RecordService
	ledger        store.LedgerStore
	clock         clockwork.Clock
	eggPrice      float64
	feedCostPerKg float64
}

func NewReportService(records *RecordService, ledger store.LedgerStore, clock clockwork.Clock, eggPrice, feedCostPerKg float64) *ReportService {
	return &ReportService{
		records:       records,
		ledger:        ledger,
		clock:         clock,
		eggPrice:      eggPrice,
		feedCostPerKg: feedCostPerKg,
	}
}

// ExportWorkbook builds an .xlsx with a daily records sheet and a ledger
// sheet and returns its bytes.
func (s *ReportService) ExportWorkbook(farmerID string, days int) ([]byte, string, error) {
	if days <= 0 {
		days = 30
	}
	if days > 365 {
		days = 365
	}

	series, err := s.records.TimeSeries(farmerID, days)
	if err != nil {
		return nil, "", err
	}
	entries, err := s.ledger.ListEntries(farmerID)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternalError, "failed to list ledger entries")
	}

	f := excelize.NewFile()
	defer f.Close()

	const recordsSheet = "Daily Records"
	f.SetSheetName("Sheet1", recordsSheet)

	headers := []string{"Date", "Eggs Collected", "Feed (kg)", "Egg Revenue", "Feed Cost"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(recordsSheet, cell, h)
	}
	for row, point := range series {
		f.SetCellValue(recordsSheet, fmt.Sprintf("A%d", row+2), point.Date)
		f.SetCellValue(recordsSheet, fmt.Sprintf("B%d", row+2), point.Eggs)
		f.SetCellValue(recordsSheet, fmt.Sprintf("C%d", row+2), point.FeedKg)
		f.SetCellValue(recordsSheet, fmt.Sprintf("D%d", row+2), float64(point.Eggs)*s.eggPrice)
		f.SetCellValue(recordsSheet, fmt.Sprintf("E%d", row+2), point.FeedKg*s.feedCostPerKg)
	}

	const ledgerSheet = "Ledger"
	if _, err := f.NewSheet(ledgerSheet); err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternalError, "failed to build workbook")
	}
	ledgerHeaders := []string{"Date", "Type", "Amount", "Description"}
	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ledgerSheet, cell, h)
	}
	var revenue, expenses float64
	for row, e := range entries {
		f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", row+2), e.EntryDate)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", row+2), e.Kind)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", row+2), e.Amount)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", row+2), e.Description)
		if e.Kind == models.EntryKindRevenue {
			revenue += e.Amount
		} else {
			expenses += e.Amount
		}
	}
	totalsRow := len(entries) + 3
	f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", totalsRow), "Totals")
	f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", totalsRow), "revenue / expenses / net")
	f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", totalsRow), revenue)
	f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", totalsRow), revenue-expenses)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternalError, "failed to write workbook")
	}

	filename := fmt.Sprintf("farm-report-%s.xlsx", s.clock.Now().Format(models.DateLayout))
	return buf.Bytes(), filename, nil
}
