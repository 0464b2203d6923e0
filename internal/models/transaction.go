package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents a single financial operation. Amount is always
// stored positive; the directional sign is derived from Type at
// balance-computation time.
//
// Field rules by type:
//   - income/expense: CategoryID required, ToAccountID must be nil
//   - transfer: ToAccountID required (different from AccountID),
//     CategoryID and ContractorID must be nil
type Transaction struct {
	Base
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Description string          `json:"description"`

	AccountID    uint  `gorm:"not null;index" json:"account_id"`
	ToAccountID  *uint `gorm:"index" json:"to_account_id,omitempty"`
	CategoryID   *uint `json:"category_id,omitempty"`
	StudioID     *uint `json:"studio_id,omitempty"`
	ContractorID *uint `json:"contractor_id,omitempty"`
	ProjectID    *uint `json:"project_id,omitempty"`
	CreatedByID  *uint `json:"created_by_id,omitempty"`

	// Relationships
	Account    Account     `gorm:"foreignKey:AccountID" json:"account"`
	ToAccount  *Account    `gorm:"foreignKey:ToAccountID" json:"to_account,omitempty"`
	Category   *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Studio     *Studio     `gorm:"foreignKey:StudioID" json:"studio,omitempty"`
	Contractor *Contractor `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
	Project    *Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

// EffectOn returns the signed balance delta this transaction contributes
// to the given account. Income adds, expense subtracts, a transfer
// subtracts from the source account and adds to the destination.
func (t *Transaction) EffectOn(accountID uint) decimal.Decimal {
	switch {
	case t.Type == TransactionTypeIncome && t.AccountID == accountID:
		return t.Amount
	case t.Type == TransactionTypeExpense && t.AccountID == accountID:
		return t.Amount.Neg()
	case t.Type == TransactionTypeTransfer && t.AccountID == accountID:
		return t.Amount.Neg()
	case t.Type == TransactionTypeTransfer && t.ToAccountID != nil && *t.ToAccountID == accountID:
		return t.Amount
	}
	return decimal.Zero
}
