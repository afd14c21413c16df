package models

import "time"

// AuditLog mirrors the audit trail written by the transactional subsystems.
// Like the inventory transaction log it may not be provisioned yet in a
// given deployment.
type AuditLog struct {
	ID         int    `gorm:"primary_key" json:"id"`
	EntityType string `gorm:"size:100;not null;index" json:"entity_type"`
	EntityId   int    `gorm:"index;default:null" json:"entity_id"`
	Action     string `gorm:"size:50;not null" json:"action"`
	UserName   string `gorm:"size:255;default:null" json:"user_name"`
	Details    string `gorm:"type:text;default:null" json:"details"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
