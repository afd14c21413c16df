package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UnitOfMeasure struct {
	ID           int    `gorm:"primary_key" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name" binding:"required"`
	Abbreviation string `gorm:"size:20" json:"abbreviation"`
}

type Product struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Name         string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Sku          string          `gorm:"size:100;index" json:"sku"`
	Category     *string         `gorm:"size:100;default:null" json:"category"`
	UnitId       int             `gorm:"default:null" json:"unit_id"`
	StandardCost decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"standard_cost"`

	Unit *UnitOfMeasure `gorm:"foreignKey:UnitId" json:"unit,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Material struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Name         string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Code         string          `gorm:"size:100;index" json:"code"`
	Category     *string         `gorm:"size:100;default:null" json:"category"`
	UnitId       int             `gorm:"default:null" json:"unit_id"`
	StandardCost decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"standard_cost"`

	Unit *UnitOfMeasure `gorm:"foreignKey:UnitId" json:"unit,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// InventoryRecord is the current snapshot of one stocked item at one
// location. It references a product or a material, never both.
type InventoryRecord struct {
	ID         int             `gorm:"primary_key" json:"id"`
	ProductId  *int            `gorm:"index;default:null" json:"product_id"`
	MaterialId *int            `gorm:"index;default:null" json:"material_id"`
	Quantity   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_cost"`
	Category   *string         `gorm:"size:100;default:null;index" json:"category"`
	Status     *string         `gorm:"size:50;default:null;index" json:"status"`
	LocationId *int            `gorm:"index;default:null" json:"location_id"`
	Location   string          `gorm:"size:255;default:null" json:"location"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime;index" json:"updated_at"`

	Product  *Product  `json:"product,omitempty"`
	Material *Material `json:"material,omitempty"`
}

// InventoryTransaction is one signed stock movement. The table is provisioned
// lazily in some deployments; readers must treat it as optional.
type InventoryTransaction struct {
	ID         int              `gorm:"primary_key" json:"id"`
	TxnType    InventoryTxnType `gorm:"type:enum('STOCK_IN','STOCK_OUT','WASTAGE','ISSUE','FINISHED_GOODS_RECEIVE','REENTRY');not null;index" json:"txn_type"`
	ProductId  *int             `gorm:"index;default:null" json:"product_id"`
	MaterialId *int             `gorm:"index;default:null" json:"material_id"`
	Quantity   decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UnitCost   decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"unit_cost"`
	LocationId *int             `gorm:"index;default:null" json:"location_id"`
	Location   string           `gorm:"size:255;default:null" json:"location"`
	Reference  string           `gorm:"size:255;default:null" json:"reference"`
	OccurredAt time.Time        `gorm:"not null;index" json:"occurred_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
