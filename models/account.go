package models

import (
	"time"
)

type Account struct {
	ID       int              `gorm:"primary_key" json:"id"`
	Name     string           `gorm:"size:255;not null" json:"name" binding:"required"`
	Code     string           `gorm:"size:50;index" json:"code"`
	Type     AccountType      `gorm:"type:enum('REVENUE','EXPENSE','ASSET','LIABILITY','EQUITY');not null;index" json:"type" binding:"required"`
	Category *AccountCategory `gorm:"type:enum('COST_OF_GOODS_SOLD','OPERATING_EXPENSE','OTHER_INCOME','OTHER_EXPENSE');default:null" json:"category"`
	IsActive *bool            `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CostCenter is the organizational unit expense lines are attributed to for
// departmental overhead reporting.
type CostCenter struct {
	ID             int    `gorm:"primary_key" json:"id"`
	Name           string `gorm:"size:255;not null" json:"name" binding:"required"`
	DepartmentCode string `gorm:"size:50;index" json:"department_code"`
	IsActive       *bool  `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
