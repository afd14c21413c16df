package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkOrder struct {
	ID             int                `gorm:"primary_key" json:"id"`
	OrderNumber    string             `gorm:"size:255;not null" json:"order_number" binding:"required"`
	ProductId      *int               `gorm:"index;default:null" json:"product_id"`
	CurrentStatus  WorkOrderStatus    `gorm:"type:enum('PLANNED','RELEASED','IN_PROGRESS','COMPLETED','CANCELLED');not null;index" json:"current_status"`
	Priority       *WorkOrderPriority `gorm:"type:enum('LOW','NORMAL','HIGH','URGENT');default:null" json:"priority"`
	ScheduledStart *time.Time         `gorm:"default:null;index" json:"scheduled_start"`
	ScheduledEnd   *time.Time         `gorm:"default:null" json:"scheduled_end"`

	Items                []WorkOrderItem       `json:"items"`
	Steps                []WorkOrderStep       `json:"steps"`
	MaterialReservations []MaterialReservation `json:"material_reservations"`
	MaterialConsumptions []MaterialConsumption `json:"material_consumptions"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type WorkOrderItem struct {
	ID          int             `gorm:"primary_key" json:"id"`
	WorkOrderId int             `gorm:"index;not null" json:"work_order_id"`
	ProductId   *int            `gorm:"index;default:null" json:"product_id"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
}

type WorkOrderStep struct {
	ID          int                 `gorm:"primary_key" json:"id"`
	WorkOrderId int                 `gorm:"index;not null" json:"work_order_id"`
	Sequence    int                 `gorm:"default:0" json:"sequence"`
	Name        string              `gorm:"size:255;not null" json:"name"`
	Status      WorkOrderStepStatus `gorm:"type:enum('PENDING','IN_PROGRESS','COMPLETED','SKIPPED');not null" json:"status"`
}

type MaterialReservation struct {
	ID          int             `gorm:"primary_key" json:"id"`
	WorkOrderId int             `gorm:"index;not null" json:"work_order_id"`
	MaterialId  int             `gorm:"index;not null" json:"material_id"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type MaterialConsumption struct {
	ID          int             `gorm:"primary_key" json:"id"`
	WorkOrderId int             `gorm:"index;not null" json:"work_order_id"`
	MaterialId  int             `gorm:"index;not null" json:"material_id"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
