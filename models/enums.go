package models

type JournalStatus string

const (
	JournalStatusPosted JournalStatus = "POSTED"
	JournalStatusDraft  JournalStatus = "DRAFT"
)

type AccountType string

const (
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
)

// AccountCategory refines expense/income accounts for reporting. It is null
// on accounts where the distinction does not apply (assets, liabilities,
// equity and plain revenue).
type AccountCategory string

const (
	AccountCategoryCostOfGoodsSold  AccountCategory = "COST_OF_GOODS_SOLD"
	AccountCategoryOperatingExpense AccountCategory = "OPERATING_EXPENSE"
	AccountCategoryOtherIncome      AccountCategory = "OTHER_INCOME"
	AccountCategoryOtherExpense     AccountCategory = "OTHER_EXPENSE"
)

type InventoryTxnType string

const (
	InventoryTxnTypeStockIn              InventoryTxnType = "STOCK_IN"
	InventoryTxnTypeStockOut             InventoryTxnType = "STOCK_OUT"
	InventoryTxnTypeWastage              InventoryTxnType = "WASTAGE"
	InventoryTxnTypeIssue                InventoryTxnType = "ISSUE"
	InventoryTxnTypeFinishedGoodsReceive InventoryTxnType = "FINISHED_GOODS_RECEIVE"
	InventoryTxnTypeReentry              InventoryTxnType = "REENTRY"
)

type MovementType string

const (
	MovementTypeIn  MovementType = "IN"
	MovementTypeOut MovementType = "OUT"
)

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft             PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusApproved          PurchaseOrderStatus = "APPROVED"
	PurchaseOrderStatusSent              PurchaseOrderStatus = "SENT"
	PurchaseOrderStatusPartiallyReceived PurchaseOrderStatus = "PARTIALLY_RECEIVED"
	PurchaseOrderStatusReceived          PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusClosed            PurchaseOrderStatus = "CLOSED"
	PurchaseOrderStatusCancelled         PurchaseOrderStatus = "CANCELLED"
)

type WorkOrderStatus string

const (
	WorkOrderStatusPlanned    WorkOrderStatus = "PLANNED"
	WorkOrderStatusReleased   WorkOrderStatus = "RELEASED"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderStatusCancelled  WorkOrderStatus = "CANCELLED"
)

type WorkOrderStepStatus string

const (
	WorkOrderStepStatusPending    WorkOrderStepStatus = "PENDING"
	WorkOrderStepStatusInProgress WorkOrderStepStatus = "IN_PROGRESS"
	WorkOrderStepStatusCompleted  WorkOrderStepStatus = "COMPLETED"
	WorkOrderStepStatusSkipped    WorkOrderStepStatus = "SKIPPED"
)

type WorkOrderPriority string

const (
	WorkOrderPriorityLow    WorkOrderPriority = "LOW"
	WorkOrderPriorityNormal WorkOrderPriority = "NORMAL"
	WorkOrderPriorityHigh   WorkOrderPriority = "HIGH"
	WorkOrderPriorityUrgent WorkOrderPriority = "URGENT"
)
