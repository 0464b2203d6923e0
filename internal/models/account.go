package models

import "github.com/shopspring/decimal"

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeCash AccountType = "cash"
	AccountTypeCard AccountType = "card"
	AccountTypeBank AccountType = "bank_account"
)

// Account represents a holder of funds. The account row never carries a
// current balance: balances are derived on read as initial_balance plus
// the signed sum of all transactions touching the account.
type Account struct {
	Base
	Name           string          `gorm:"not null" json:"name"`
	Type           AccountType     `gorm:"not null" json:"type"`
	Currency       string          `gorm:"not null;default:'RUB'" json:"currency"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"initial_balance"`
	StudioID       *uint           `json:"studio_id,omitempty"`
	IsArchived     bool            `gorm:"not null;default:false" json:"is_archived"`

	// Relationships
	Studio       *Studio       `gorm:"foreignKey:StudioID" json:"studio,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
