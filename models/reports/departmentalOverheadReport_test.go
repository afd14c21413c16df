package reports

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
)

func TestGetDepartmentalOverheadReport(t *testing.T) {
	entryDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	ledger := &fakeLedger{
		lines: []LedgerLine{
			{EntryDate: entryDate, Debit: dec("300"), Credit: dec("0"), AccountName: "Electricity", AccountType: models.AccountTypeExpense, CostCenterName: strPtr("Assembly")},
			{EntryDate: entryDate, Debit: dec("200"), Credit: dec("50"), AccountName: "Electricity", AccountType: models.AccountTypeExpense, CostCenterName: strPtr("Assembly")},
			{EntryDate: entryDate, Debit: dec("100"), Credit: dec("0"), AccountName: "Maintenance", AccountType: models.AccountTypeExpense, CostCenterName: strPtr("Assembly")},
			{EntryDate: entryDate, Debit: dec("80"), Credit: dec("0"), AccountName: "Electricity", AccountType: models.AccountTypeExpense, CostCenterName: strPtr("Packaging")},
			// Revenue line in a cost center; excluded.
			{EntryDate: entryDate, Debit: dec("0"), Credit: dec("500"), AccountName: "Sales", AccountType: models.AccountTypeRevenue, CostCenterName: strPtr("Assembly")},
			// Expense without a cost center; excluded.
			{EntryDate: entryDate, Debit: dec("70"), Credit: dec("0"), AccountName: "Rent", AccountType: models.AccountTypeExpense},
			// Expense with an unresolvable account; excluded.
			{EntryDate: entryDate, Debit: dec("60"), Credit: dec("0"), AccountName: "", AccountType: models.AccountTypeExpense, CostCenterName: strPtr("Assembly")},
		},
	}

	report, err := GetDepartmentalOverheadReport(context.Background(), ledger, DepartmentalOverheadFilter{Year: 2025})
	if err != nil {
		t.Fatalf("GetDepartmentalOverheadReport returned error: %v", err)
	}

	if report.Year != 2025 {
		t.Fatalf("year = %d, want 2025", report.Year)
	}
	wantFrom := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !ledger.gotFrom.Equal(wantFrom) {
		t.Fatalf("from = %v, want %v", ledger.gotFrom, wantFrom)
	}
	if ledger.gotTo.Year() != 2025 || ledger.gotTo.Month() != time.December || ledger.gotTo.Day() != 31 {
		t.Fatalf("to = %v, want end of 2025", ledger.gotTo)
	}

	if len(report.CostCenters) != 2 {
		t.Fatalf("cost centers = %d, want 2", len(report.CostCenters))
	}
	assembly := report.CostCenters[0]
	if assembly.Name != "Assembly" {
		t.Fatalf("first cost center = %s, want Assembly (first seen)", assembly.Name)
	}
	if !assembly.Total.Equal(dec("550")) {
		t.Fatalf("assembly total = %s, want 550", assembly.Total)
	}
	if len(assembly.Accounts) != 2 {
		t.Fatalf("assembly accounts = %d, want 2", len(assembly.Accounts))
	}
	if assembly.Accounts[0].Name != "Electricity" || !assembly.Accounts[0].Amount.Equal(dec("450")) {
		t.Fatalf("assembly electricity = %s %s, want Electricity 450", assembly.Accounts[0].Name, assembly.Accounts[0].Amount)
	}

	packaging := report.CostCenters[1]
	if packaging.Name != "Packaging" || !packaging.Total.Equal(dec("80")) {
		t.Fatalf("second cost center = %s %s, want Packaging 80", packaging.Name, packaging.Total)
	}

	if !report.Summary.TotalOverheads.Equal(dec("630")) {
		t.Fatalf("total overheads = %s, want 630", report.Summary.TotalOverheads)
	}
	if report.Summary.CostCenterCount != 2 {
		t.Fatalf("cost center count = %d, want 2", report.Summary.CostCenterCount)
	}
}

func TestGetDepartmentalOverheadReportDefaultYear(t *testing.T) {
	ledger := &fakeLedger{}
	report, err := GetDepartmentalOverheadReport(context.Background(), ledger, DepartmentalOverheadFilter{})
	if err != nil {
		t.Fatalf("GetDepartmentalOverheadReport returned error: %v", err)
	}

	currentYear := time.Now().UTC().Year()
	if report.Year != currentYear {
		t.Fatalf("year = %d, want current year %d", report.Year, currentYear)
	}
	if report.CostCenters == nil {
		t.Fatalf("cost centers must be an empty slice, not nil")
	}
	if !report.Summary.TotalOverheads.IsZero() {
		t.Fatalf("total overheads = %s, want 0", report.Summary.TotalOverheads)
	}
}
