package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
	"github.com/shopspring/decimal"
)

type CostCenterOverhead struct {
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
	Accounts []AccountItem   `json:"accounts"`
}

type DepartmentalOverheadSummary struct {
	TotalOverheads  decimal.Decimal `json:"total_overheads"`
	CostCenterCount int             `json:"cost_center_count"`
}

type DepartmentalOverheadResponse struct {
	ReportType  string    `json:"report_type"`
	GeneratedAt time.Time `json:"generated_at"`
	Year        int       `json:"year"`

	CostCenters []CostCenterOverhead `json:"details"`

	Summary DepartmentalOverheadSummary `json:"summary"`
}

// GetDepartmentalOverheadReport groups the year's posted expense lines by
// cost center, then by account, summing debit − credit. Lines without a
// resolvable cost center or account are excluded rather than failing the
// report.
func GetDepartmentalOverheadReport(ctx context.Context, ledger LedgerStore, filter DepartmentalOverheadFilter) (*DepartmentalOverheadResponse, error) {
	year, from, to := filter.CalendarYear()
	lines, err := ledger.PostedLines(ctx, from, to)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*CostCenterOverhead)
	accountIndex := make(map[string]map[string]int)
	var groupOrder []string

	for _, line := range lines {
		if line.AccountType != models.AccountTypeExpense {
			continue
		}
		if line.CostCenterName == nil || *line.CostCenterName == "" || line.AccountName == "" {
			continue
		}

		center := *line.CostCenterName
		amount := line.Debit.Sub(line.Credit)

		group, ok := grouped[center]
		if !ok {
			group = &CostCenterOverhead{
				Name:     center,
				Total:    decimal.Zero,
				Accounts: []AccountItem{},
			}
			grouped[center] = group
			accountIndex[center] = make(map[string]int)
			groupOrder = append(groupOrder, center)
		}

		if i, ok := accountIndex[center][line.AccountName]; ok {
			group.Accounts[i].Amount = group.Accounts[i].Amount.Add(amount)
		} else {
			accountIndex[center][line.AccountName] = len(group.Accounts)
			group.Accounts = append(group.Accounts, AccountItem{Name: line.AccountName, Amount: amount})
		}
		group.Total = group.Total.Add(amount)
	}

	costCenters := make([]CostCenterOverhead, 0, len(groupOrder))
	totalOverheads := decimal.Zero
	for _, name := range groupOrder {
		costCenters = append(costCenters, *grouped[name])
		totalOverheads = totalOverheads.Add(grouped[name].Total)
	}

	return &DepartmentalOverheadResponse{
		ReportType:  ReportTypeDepartmentalOverheads,
		GeneratedAt: time.Now().UTC(),
		Year:        year,
		CostCenters: costCenters,
		Summary: DepartmentalOverheadSummary{
			TotalOverheads:  totalOverheads,
			CostCenterCount: len(costCenters),
		},
	}, nil
}
