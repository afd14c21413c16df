package reports

import (
	"github.com/shopspring/decimal"
)

const (
	ReportTypeProfitAndLoss         = "PROFIT_AND_LOSS"
	ReportTypeDepartmentalOverheads = "DEPARTMENTAL_OVERHEADS"
	ReportTypeInventoryValuation    = "INVENTORY_VALUATION"
	ReportTypeStockMovement         = "STOCK_MOVEMENT"
	ReportTypePurchaseOrderStatus   = "PURCHASE_ORDER_STATUS"
	ReportTypeWorkOrderPerformance  = "WORK_ORDER_PERFORMANCE"
	ReportTypeDashboard             = "DASHBOARD"
)

// UnknownBucket collects rows whose category/status is null in the breakdown
// maps.
const UnknownBucket = "UNKNOWN"

// AccountItem is one named amount inside a report bucket.
type AccountItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BucketStat is the {count, value} pair used by breakdown maps.
type BucketStat struct {
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

var oneHundred = decimal.NewFromInt(100)

// percentOf is part/whole expressed as a percentage. A zero denominator is
// defined as zero so callers never see a division panic or an undefined
// ratio.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(oneHundred)
}

// consolidateItems merges rows that share a name by summing their amounts,
// preserving first-seen order. Consolidating an already-consolidated slice
// returns it unchanged.
func consolidateItems(items []AccountItem) []AccountItem {
	if len(items) == 0 {
		return items
	}
	index := make(map[string]int, len(items))
	out := make([]AccountItem, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.Name]; ok {
			out[i].Amount = out[i].Amount.Add(item.Amount)
			continue
		}
		index[item.Name] = len(out)
		out = append(out, item)
	}
	return out
}

func sumItems(items []AccountItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
