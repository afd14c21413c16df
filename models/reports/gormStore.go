package reports

import (
	"context"
	"time"

	"bitbucket.org/mmdatafocus/factory_backend/models"
	_ "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// GormStore implements every report store against the shared MySQL schema.
// It takes the DB handle through a getter because the server starts
// listening before the connection is established; the readiness middleware
// guarantees report handlers only run once the getter returns a live handle.
//
// All predicates are parameterized gorm clauses built from validated filter
// structs, and optional tables are capability-checked with HasTable before
// being queried.
type GormStore struct {
	db func() *gorm.DB
}

func NewGormStore(db func() *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	return s.db().WithContext(ctx)
}

func (s *GormStore) PostedLines(ctx context.Context, from, to time.Time) ([]LedgerLine, error) {
	var lines []LedgerLine
	err := s.conn(ctx).
		Table("journal_lines").
		Select(`journal_entries.entry_date AS entry_date,
			journal_lines.debit AS debit,
			journal_lines.credit AS credit,
			COALESCE(accounts.name, '') AS account_name,
			COALESCE(accounts.type, '') AS account_type,
			accounts.category AS account_category,
			cost_centers.name AS cost_center_name`).
		Joins("JOIN journal_entries ON journal_entries.id = journal_lines.journal_entry_id").
		Joins("LEFT JOIN accounts ON accounts.id = journal_lines.account_id").
		Joins("LEFT JOIN cost_centers ON cost_centers.id = journal_lines.cost_center_id").
		Where("journal_entries.status = ?", models.JournalStatusPosted).
		Where("journal_entries.entry_date >= ? AND journal_entries.entry_date <= ?", from, to).
		Order("journal_entries.entry_date, journal_lines.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *GormStore) Records(ctx context.Context, filter InventoryValuationFilter) ([]InventoryItemRow, error) {
	q := s.conn(ctx).
		Table("inventory_records").
		Select(`inventory_records.id AS item_id,
			CASE WHEN inventory_records.product_id IS NOT NULL THEN 'PRODUCT' ELSE 'MATERIAL' END AS item_type,
			COALESCE(products.name, materials.name, '') AS name,
			COALESCE(products.sku, materials.code, '') AS code,
			COALESCE(unit_of_measures.name, '') AS unit_name,
			inventory_records.category AS category,
			inventory_records.status AS status,
			COALESCE(inventory_records.location, '') AS location,
			inventory_records.quantity AS quantity,
			COALESCE(inventory_records.unit_cost, 0) AS unit_cost,
			inventory_records.updated_at AS updated_at`).
		Joins("LEFT JOIN products ON products.id = inventory_records.product_id").
		Joins("LEFT JOIN materials ON materials.id = inventory_records.material_id").
		Joins("LEFT JOIN unit_of_measures ON unit_of_measures.id = COALESCE(products.unit_id, materials.unit_id)")

	if asOf := filter.AsOf(); asOf != nil {
		q = q.Where("inventory_records.updated_at <= ?", *asOf)
	}
	if filter.LocationId != nil {
		q = q.Where("inventory_records.location_id = ?", *filter.LocationId)
	}
	if filter.Category != "" {
		q = q.Where("inventory_records.category = ?", filter.Category)
	}

	var rows []InventoryItemRow
	if err := q.Order("name").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) Transactions(ctx context.Context, filter StockMovementFilter) ([]models.InventoryTransaction, error) {
	conn := s.conn(ctx)
	if !conn.Migrator().HasTable(&models.InventoryTransaction{}) {
		return nil, ErrSourceUnavailable
	}

	from, to := filter.Range()
	q := conn.Model(&models.InventoryTransaction{}).
		Where("occurred_at >= ? AND occurred_at <= ?", from, to)
	if txnTypes := filter.TxnTypes(); len(txnTypes) > 0 {
		q = q.Where("txn_type IN ?", txnTypes)
	}

	var txns []models.InventoryTransaction
	if err := q.Order("occurred_at").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *GormStore) Totals(ctx context.Context) (InventoryTotals, error) {
	conn := s.conn(ctx)
	if !conn.Migrator().HasTable(&models.InventoryRecord{}) {
		return InventoryTotals{}, ErrSourceUnavailable
	}

	var totals InventoryTotals
	err := conn.Model(&models.InventoryRecord{}).
		Select("COUNT(*) AS total_items, COALESCE(SUM(quantity), 0) AS total_quantity").
		Scan(&totals).Error
	if err != nil {
		return InventoryTotals{}, err
	}
	return totals, nil
}

func (s *GormStore) Orders(ctx context.Context, filter PurchaseOrderStatusFilter) ([]models.PurchaseOrder, error) {
	from, to := filter.Range()
	q := s.conn(ctx).Model(&models.PurchaseOrder{}).
		Preload("Supplier").
		Preload("Items").
		Preload("GoodsReceipts.Items").
		Preload("Invoices").
		Preload("ThreeWayMatches").
		Where("order_date >= ? AND order_date <= ?", from, to)
	if filter.SupplierId != nil {
		q = q.Where("supplier_id = ?", *filter.SupplierId)
	}
	if filter.Status != "" {
		q = q.Where("current_status = ?", filter.Status)
	}

	var orders []models.PurchaseOrder
	if err := q.Order("order_date, id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) StatusCounts(ctx context.Context) (map[string]int64, error) {
	return statusCounts(s.conn(ctx), &models.PurchaseOrder{})
}

type workOrderGormStore struct {
	*GormStore
}

// WorkOrders exposes the work-order store on the same handle; the method set
// overlaps with the purchasing store (Orders, StatusCounts) so it lives on a
// separate view type.
func (s *GormStore) WorkOrders() WorkOrderStore {
	return workOrderGormStore{s}
}

func (s workOrderGormStore) Orders(ctx context.Context, filter WorkOrderPerformanceFilter) ([]models.WorkOrder, error) {
	from, to := filter.Range()
	q := s.conn(ctx).Model(&models.WorkOrder{}).
		Preload("Items").
		Preload("Steps").
		Preload("MaterialReservations").
		Preload("MaterialConsumptions").
		Where("work_orders.created_at >= ? AND work_orders.created_at <= ?", from, to)
	if filter.ProductId != nil {
		q = q.Where("product_id = ?", *filter.ProductId)
	}
	if filter.Status != "" {
		q = q.Where("current_status = ?", filter.Status)
	}

	var orders []models.WorkOrder
	if err := q.Order("work_orders.created_at, id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s workOrderGormStore) StatusCounts(ctx context.Context) (map[string]int64, error) {
	return statusCounts(s.conn(ctx), &models.WorkOrder{})
}

func (s *GormStore) Recent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	conn := s.conn(ctx)
	if !conn.Migrator().HasTable(&models.AuditLog{}) {
		return nil, ErrSourceUnavailable
	}

	var entries []models.AuditLog
	err := conn.Model(&models.AuditLog{}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Stores bundles the gorm store under each interface, including the
// work-order view.
func (s *GormStore) Stores() Stores {
	return Stores{
		Ledger:     s,
		Inventory:  s,
		Purchasing: s,
		WorkOrders: s.WorkOrders(),
		Audit:      s,
	}
}

type statusCountRow struct {
	Status string
	Count  int64
}

func statusCounts(conn *gorm.DB, model any) (map[string]int64, error) {
	if !conn.Migrator().HasTable(model) {
		return nil, ErrSourceUnavailable
	}

	var rows []statusCountRow
	err := conn.Model(model).
		Select("current_status AS status, COUNT(*) AS count").
		Group("current_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
