package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID       int    `gorm:"primary_key" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name" binding:"required"`
	Code     string `gorm:"size:100;index" json:"code"`
	IsActive *bool  `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type PurchaseOrder struct {
	ID                   int                 `gorm:"primary_key" json:"id"`
	OrderNumber          string              `gorm:"size:255;not null" json:"order_number" binding:"required"`
	SupplierId           int                 `gorm:"index;not null" json:"supplier_id" binding:"required"`
	OrderDate            time.Time           `gorm:"not null;index" json:"order_date" binding:"required"`
	ExpectedDeliveryDate *time.Time          `gorm:"default:null" json:"expected_delivery_date"`
	CurrentStatus        PurchaseOrderStatus `gorm:"type:enum('DRAFT','APPROVED','SENT','PARTIALLY_RECEIVED','RECEIVED','CLOSED','CANCELLED');not null;index" json:"current_status"`
	Notes                string              `gorm:"type:text;default:null" json:"notes"`

	Supplier        *Supplier           `json:"supplier,omitempty"`
	Items           []PurchaseOrderItem `json:"items"`
	GoodsReceipts   []GoodsReceipt      `json:"goods_receipts"`
	Invoices        []PurchaseInvoice   `json:"invoices"`
	ThreeWayMatches []ThreeWayMatch     `json:"three_way_matches"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type PurchaseOrderItem struct {
	ID              int             `gorm:"primary_key" json:"id"`
	PurchaseOrderId int             `gorm:"index;not null" json:"purchase_order_id"`
	MaterialId      *int            `gorm:"index;default:null" json:"material_id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
}

type GoodsReceipt struct {
	ID              int       `gorm:"primary_key" json:"id"`
	PurchaseOrderId int       `gorm:"index;not null" json:"purchase_order_id"`
	ReceiptNumber   string    `gorm:"size:255;not null" json:"receipt_number"`
	ReceiptDate     time.Time `gorm:"not null" json:"receipt_date"`

	Items []GoodsReceiptItem `json:"items"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type GoodsReceiptItem struct {
	ID             int             `gorm:"primary_key" json:"id"`
	GoodsReceiptId int             `gorm:"index;not null" json:"goods_receipt_id"`
	MaterialId     *int            `gorm:"index;default:null" json:"material_id"`
	ReceivedQty    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"received_qty"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
}

type PurchaseInvoice struct {
	ID              int             `gorm:"primary_key" json:"id"`
	PurchaseOrderId int             `gorm:"index;not null" json:"purchase_order_id"`
	InvoiceNumber   string          `gorm:"size:255;not null" json:"invoice_number"`
	InvoiceDate     time.Time       `gorm:"not null" json:"invoice_date"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ThreeWayMatch records that a PO, one of its goods receipts and one of its
// invoices were reconciled. Reporting only cares about presence.
type ThreeWayMatch struct {
	ID                int       `gorm:"primary_key" json:"id"`
	PurchaseOrderId   int       `gorm:"index;not null" json:"purchase_order_id"`
	GoodsReceiptId    *int      `gorm:"index;default:null" json:"goods_receipt_id"`
	PurchaseInvoiceId *int      `gorm:"index;default:null" json:"purchase_invoice_id"`
	MatchedAt         time.Time `gorm:"not null" json:"matched_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
