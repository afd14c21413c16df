package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/config"
	"bitbucket.org/mmdatafocus/factory_backend/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ProfitAndLossSummary struct {
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	TotalCOGS              decimal.Decimal `json:"total_cogs"`
	GrossProfit            decimal.Decimal `json:"gross_profit"`
	TotalOperatingExpenses decimal.Decimal `json:"total_operating_expenses"`
	OperatingIncome        decimal.Decimal `json:"operating_income"`
	TotalOtherIncome       decimal.Decimal `json:"total_other_income"`
	TotalOtherExpenses     decimal.Decimal `json:"total_other_expenses"`
	NetIncome              decimal.Decimal `json:"net_income"`
}

type ProfitAndLossResponse struct {
	ReportType  string          `json:"report_type"`
	GeneratedAt time.Time       `json:"generated_at"`
	Filters     DateRangeFilter `json:"filters"`

	Revenue           []AccountItem `json:"revenue"`
	CostOfGoodsSold   []AccountItem `json:"cost_of_goods_sold"`
	OperatingExpenses []AccountItem `json:"operating_expenses"`
	OtherIncome       []AccountItem `json:"other_income"`
	OtherExpenses     []AccountItem `json:"other_expenses"`

	Summary ProfitAndLossSummary `json:"summary"`
}

// GetProfitAndLossReport classifies the posted journal lines of the period
// into the five P&L buckets and rolls them up. Revenue-style buckets carry
// credit − debit, expense-style buckets debit − credit. An empty period
// yields a valid all-zero report.
func GetProfitAndLossReport(ctx context.Context, ledger LedgerStore, filter DateRangeFilter) (*ProfitAndLossResponse, error) {
	from, to := filter.Range()
	lines, err := ledger.PostedLines(ctx, from, to)
	if err != nil {
		return nil, err
	}

	revenue := []AccountItem{}
	cogs := []AccountItem{}
	operatingExpenses := []AccountItem{}
	otherIncome := []AccountItem{}
	otherExpenses := []AccountItem{}
	dropped := 0

	for _, line := range lines {
		// Account join failed upstream; skip the row instead of failing the
		// whole report on one bad reference.
		if line.AccountName == "" {
			dropped++
			continue
		}

		amount := line.Credit.Sub(line.Debit)
		expenseAmount := line.Debit.Sub(line.Credit)

		if line.AccountType == models.AccountTypeRevenue {
			revenue = append(revenue, AccountItem{Name: line.AccountName, Amount: amount})
			continue
		}
		if line.AccountCategory == nil {
			dropped++
			continue
		}
		switch *line.AccountCategory {
		case models.AccountCategoryCostOfGoodsSold:
			cogs = append(cogs, AccountItem{Name: line.AccountName, Amount: expenseAmount})
		case models.AccountCategoryOperatingExpense:
			operatingExpenses = append(operatingExpenses, AccountItem{Name: line.AccountName, Amount: expenseAmount})
		case models.AccountCategoryOtherIncome:
			// Behaves like revenue, so it keeps the credit − debit sign.
			otherIncome = append(otherIncome, AccountItem{Name: line.AccountName, Amount: amount})
		case models.AccountCategoryOtherExpense:
			otherExpenses = append(otherExpenses, AccountItem{Name: line.AccountName, Amount: expenseAmount})
		default:
			dropped++
		}
	}

	if dropped > 0 {
		config.GetLogger().WithFields(logrus.Fields{
			"module":  "reports",
			"dropped": dropped,
		}).Debug("profit and loss: lines without a reportable type or category were skipped")
	}

	revenue = consolidateItems(revenue)
	cogs = consolidateItems(cogs)
	operatingExpenses = consolidateItems(operatingExpenses)
	// Other income/expense stay line-by-line; only the three main buckets
	// are consolidated by account name.

	summary := ProfitAndLossSummary{
		TotalRevenue:           sumItems(revenue),
		TotalCOGS:              sumItems(cogs),
		TotalOperatingExpenses: sumItems(operatingExpenses),
		TotalOtherIncome:       sumItems(otherIncome),
		TotalOtherExpenses:     sumItems(otherExpenses),
	}
	summary.GrossProfit = summary.TotalRevenue.Sub(summary.TotalCOGS)
	summary.OperatingIncome = summary.GrossProfit.Sub(summary.TotalOperatingExpenses)
	summary.NetIncome = summary.OperatingIncome.Add(summary.TotalOtherIncome).Sub(summary.TotalOtherExpenses)

	return &ProfitAndLossResponse{
		ReportType:        ReportTypeProfitAndLoss,
		GeneratedAt:       time.Now().UTC(),
		Filters:           filter,
		Revenue:           revenue,
		CostOfGoodsSold:   cogs,
		OperatingExpenses: operatingExpenses,
		OtherIncome:       otherIncome,
		OtherExpenses:     otherExpenses,
		Summary:           summary,
	}, nil
}
