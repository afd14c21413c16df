package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
	"github.com/shopspring/decimal"
)

// Fake stores for exercising the aggregators without a database.

type fakeLedger struct {
	lines []LedgerLine
	err   error

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeLedger) PostedLines(ctx context.Context, from, to time.Time) ([]LedgerLine, error) {
	f.gotFrom = from
	f.gotTo = to
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

type fakeInventory struct {
	records   []InventoryItemRow
	txns      []models.InventoryTransaction
	totals    InventoryTotals
	recordErr error
	txnErr    error
	totalsErr error
}

func (f *fakeInventory) Records(ctx context.Context, filter InventoryValuationFilter) ([]InventoryItemRow, error) {
	if f.recordErr != nil {
		return nil, f.recordErr
	}
	return f.records, nil
}

func (f *fakeInventory) Transactions(ctx context.Context, filter StockMovementFilter) ([]models.InventoryTransaction, error) {
	if f.txnErr != nil {
		return nil, f.txnErr
	}
	return f.txns, nil
}

func (f *fakeInventory) Totals(ctx context.Context) (InventoryTotals, error) {
	if f.totalsErr != nil {
		return InventoryTotals{}, f.totalsErr
	}
	return f.totals, nil
}

type fakePurchasing struct {
	orders    []models.PurchaseOrder
	counts    map[string]int64
	ordersErr error
	countsErr error
}

func (f *fakePurchasing) Orders(ctx context.Context, filter PurchaseOrderStatusFilter) ([]models.PurchaseOrder, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakePurchasing) StatusCounts(ctx context.Context) (map[string]int64, error) {
	if f.countsErr != nil {
		return nil, f.countsErr
	}
	return f.counts, nil
}

type fakeWorkOrders struct {
	orders    []models.WorkOrder
	counts    map[string]int64
	ordersErr error
	countsErr error
}

func (f *fakeWorkOrders) Orders(ctx context.Context, filter WorkOrderPerformanceFilter) ([]models.WorkOrder, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakeWorkOrders) StatusCounts(ctx context.Context) (map[string]int64, error) {
	if f.countsErr != nil {
		return nil, f.countsErr
	}
	return f.counts, nil
}

type fakeAudit struct {
	entries []models.AuditLog
	err     error
}

func (f *fakeAudit) Recent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func strPtr(value string) *string {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func timePtr(value time.Time) *time.Time {
	return &value
}

func categoryPtr(value models.AccountCategory) *models.AccountCategory {
	return &value
}

func priorityPtr(value models.WorkOrderPriority) *models.WorkOrderPriority {
	return &value
}
