package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a double-entry bookkeeping record. Only POSTED entries are
// reportable; the posting workflow guarantees Σdebit == Σcredit across the
// lines of a POSTED entry.
type JournalEntry struct {
	ID              int           `gorm:"primary_key" json:"id"`
	EntryNumber     string        `gorm:"size:255;not null" json:"entry_number"`
	EntryDate       time.Time     `gorm:"not null;index" json:"entry_date" binding:"required"`
	Status          JournalStatus `gorm:"type:enum('POSTED','DRAFT');not null;index" json:"status"`
	Description     string        `gorm:"type:text;default:null" json:"description"`
	ReferenceNumber string        `gorm:"size:255;default:null" json:"reference_number"`

	Lines []JournalLine `json:"lines"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// JournalLine carries a debit or credit magnitude against one account and
// optionally one cost center. Debit and credit are non-negative; a
// well-formed line has at most one of them meaningfully nonzero.
type JournalLine struct {
	ID             int             `gorm:"primary_key" json:"id"`
	JournalEntryId int             `gorm:"index;not null" json:"journal_entry_id" binding:"required"`
	AccountId      int             `gorm:"index;not null" json:"account_id" binding:"required"`
	CostCenterId   *int            `gorm:"index;default:null" json:"cost_center_id"`
	Debit          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"debit"`
	Credit         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit"`
	Description    string          `gorm:"size:255;default:null" json:"description"`

	Account    *Account    `json:"account,omitempty"`
	CostCenter *CostCenter `json:"cost_center,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
