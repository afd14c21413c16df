package reports

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
	"github.com/shopspring/decimal"
)

type StockMovementItem struct {
	TxnType      models.InventoryTxnType `json:"txn_type"`
	MovementType models.MovementType     `json:"movement_type"`
	Quantity     decimal.Decimal         `json:"quantity"`
	UnitCost     decimal.Decimal         `json:"unit_cost"`
	TotalValue   decimal.Decimal         `json:"total_value"`
	Location     string                  `json:"location"`
	Reference    string                  `json:"reference"`
	OccurredAt   time.Time               `json:"occurred_at"`
}

type TxnTypeStat struct {
	Count    int             `json:"count"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

type StockMovementSummary struct {
	TotalInQuantity  decimal.Decimal        `json:"total_in_quantity"`
	TotalOutQuantity decimal.Decimal        `json:"total_out_quantity"`
	NetMovement      decimal.Decimal        `json:"net_movement"`
	TotalInValue     decimal.Decimal        `json:"total_in_value"`
	TotalOutValue    decimal.Decimal        `json:"total_out_value"`
	TxnTypeBreakdown map[string]TxnTypeStat `json:"txn_type_breakdown"`
}

type StockMovementResponse struct {
	ReportType  string              `json:"report_type"`
	GeneratedAt time.Time           `json:"generated_at"`
	Filters     StockMovementFilter `json:"filters"`

	Details []StockMovementItem `json:"details"`

	Summary StockMovementSummary `json:"summary"`
}

// GetStockMovementReport classifies the period's signed inventory
// transactions into IN and OUT and totals them. The transaction log is an
// optional source: when it has not been provisioned the report degrades to
// an empty, successful response.
func GetStockMovementReport(ctx context.Context, inventory InventoryStore, filter StockMovementFilter) (*StockMovementResponse, error) {
	txns, err := inventory.Transactions(ctx, filter)
	if err != nil {
		if !errors.Is(err, ErrSourceUnavailable) {
			return nil, err
		}
		txns = nil
	}

	details := make([]StockMovementItem, 0, len(txns))
	summary := StockMovementSummary{
		TotalInQuantity:  decimal.Zero,
		TotalOutQuantity: decimal.Zero,
		NetMovement:      decimal.Zero,
		TotalInValue:     decimal.Zero,
		TotalOutValue:    decimal.Zero,
		TxnTypeBreakdown: map[string]TxnTypeStat{},
	}

	for _, txn := range txns {
		movement := models.MovementTypeOut
		if txn.Quantity.Sign() > 0 {
			movement = models.MovementTypeIn
		}
		quantity := txn.Quantity.Abs()
		totalValue := quantity.Mul(txn.UnitCost)

		details = append(details, StockMovementItem{
			TxnType:      txn.TxnType,
			MovementType: movement,
			Quantity:     quantity,
			UnitCost:     txn.UnitCost,
			TotalValue:   totalValue,
			Location:     txn.Location,
			Reference:    txn.Reference,
			OccurredAt:   txn.OccurredAt,
		})

		if movement == models.MovementTypeIn {
			summary.TotalInQuantity = summary.TotalInQuantity.Add(quantity)
			summary.TotalInValue = summary.TotalInValue.Add(totalValue)
		} else {
			summary.TotalOutQuantity = summary.TotalOutQuantity.Add(quantity)
			summary.TotalOutValue = summary.TotalOutValue.Add(totalValue)
		}

		stat := summary.TxnTypeBreakdown[string(txn.TxnType)]
		stat.Count++
		stat.Quantity = stat.Quantity.Add(quantity)
		stat.Value = stat.Value.Add(totalValue)
		summary.TxnTypeBreakdown[string(txn.TxnType)] = stat
	}
	summary.NetMovement = summary.TotalInQuantity.Sub(summary.TotalOutQuantity)

	return &StockMovementResponse{
		ReportType:  ReportTypeStockMovement,
		GeneratedAt: time.Now().UTC(),
		Filters:     filter,
		Details:     details,
		Summary:     summary,
	}, nil
}
