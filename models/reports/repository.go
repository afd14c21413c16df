package reports

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
	"github.com/shopspring/decimal"
)

// ErrSourceUnavailable signals that an optional underlying table has not been
// provisioned in this deployment. Report paths that declare a source optional
// degrade to an empty contribution when they see it; everything else treats
// it as a regular error.
var ErrSourceUnavailable = errors.New("report source unavailable")

// LedgerLine is one posted journal line joined with its account and cost
// center. A row whose account could not be resolved carries an empty
// AccountName and is excluded by the aggregators rather than failing the
// report.
type LedgerLine struct {
	EntryDate       time.Time               `json:"entry_date"`
	Debit           decimal.Decimal         `json:"debit"`
	Credit          decimal.Decimal         `json:"credit"`
	AccountName     string                  `json:"account_name"`
	AccountType     models.AccountType      `json:"account_type"`
	AccountCategory *models.AccountCategory `json:"account_category"`
	CostCenterName  *string                 `json:"cost_center_name"`
}

type LedgerStore interface {
	// PostedLines returns the lines of POSTED entries whose entry date falls
	// within [from, to].
	PostedLines(ctx context.Context, from, to time.Time) ([]LedgerLine, error)
}

// InventoryItemRow is one snapshot record resolved against its product or
// material for display.
type InventoryItemRow struct {
	ItemId    int             `json:"item_id"`
	ItemType  string          `json:"item_type"`
	Name      string          `json:"name"`
	Code      string          `json:"code"`
	UnitName  string          `json:"unit_name"`
	Category  *string         `json:"category"`
	Status    *string         `json:"status"`
	Location  string          `json:"location"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type InventoryTotals struct {
	TotalItems    int64           `json:"total_items"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

type InventoryStore interface {
	Records(ctx context.Context, filter InventoryValuationFilter) ([]InventoryItemRow, error)
	// Transactions reads the optional movement log; returns
	// ErrSourceUnavailable when the table does not exist.
	Transactions(ctx context.Context, filter StockMovementFilter) ([]models.InventoryTransaction, error)
	Totals(ctx context.Context) (InventoryTotals, error)
}

type PurchasingStore interface {
	// Orders returns purchase orders in range with items, goods receipts,
	// invoices and three-way matches attached.
	Orders(ctx context.Context, filter PurchaseOrderStatusFilter) ([]models.PurchaseOrder, error)
	StatusCounts(ctx context.Context) (map[string]int64, error)
}

type WorkOrderStore interface {
	Orders(ctx context.Context, filter WorkOrderPerformanceFilter) ([]models.WorkOrder, error)
	StatusCounts(ctx context.Context) (map[string]int64, error)
}

type AuditStore interface {
	// Recent returns up to limit entries, most recent first.
	Recent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

// Stores bundles the read interfaces a combined report needs. Tests inject
// fakes; production wires the gorm-backed implementation from NewGormStore.
type Stores struct {
	Ledger     LedgerStore
	Inventory  InventoryStore
	Purchasing PurchasingStore
	WorkOrders WorkOrderStore
	Audit      AuditStore
}
