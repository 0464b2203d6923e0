package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
)

// derivedBalanceExpr computes an account's current balance from its
// transaction history. Income adds, expense subtracts, a transfer
// subtracts on the source side and adds on the destination side. Because
// the balance is recomputed on every read, no mutation can ever leave it
// stale.
const derivedBalanceExpr = `(accounts.initial_balance + COALESCE((
	SELECT SUM(CASE
		WHEN t.account_id = accounts.id AND t.type = 'income' THEN t.amount
		WHEN t.account_id = accounts.id AND t.type = 'expense' THEN -t.amount
		WHEN t.account_id = accounts.id AND t.type = 'transfer' THEN -t.amount
		WHEN t.to_account_id = accounts.id AND t.type = 'transfer' THEN t.amount
		ELSE 0 END)
	FROM transactions t
	WHERE t.account_id = accounts.id OR t.to_account_id = accounts.id
), 0))`

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// GetAccounts retrieves all non-archived accounts with their derived balances.
func (s *accountService) GetAccounts() ([]AccountWithBalance, error) {
	var accounts []AccountWithBalance
	if err := s.db.Table("accounts").
		Select("accounts.*, " + derivedBalanceExpr + " AS balance").
		Where("accounts.is_archived = ?", false).
		Order("accounts.name").
		Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by ID, archived or not.
func (s *accountService) GetAccountByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// GetAccountBalance derives the current balance of a single account.
func (s *accountService) GetAccountBalance(id uint) (decimal.Decimal, error) {
	var row struct {
		Balance decimal.Decimal
	}
	result := s.db.Table("accounts").
		Select(derivedBalanceExpr+" AS balance").
		Where("accounts.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, apperrors.ErrAccountNotFound
	}
	return row.Balance, nil
}

// CreateAccount creates a new account. The initial balance is fixed at
// creation; from here on the balance only moves through transactions.
func (s *accountService) CreateAccount(name string, accountType models.AccountType, currency string, initialBalance decimal.Decimal, studioID *uint) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	if currency == "" {
		currency = "RUB" // Default currency
	}

	if studioID != nil {
		var count int64
		if err := s.db.Model(&models.Studio{}).Where("id = ?", *studioID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return nil, apperrors.ErrStudioNotFound
		}
	}

	account := &models.Account{
		Name:           name,
		Type:           accountType,
		Currency:       currency,
		InitialBalance: initialBalance,
		StudioID:       studioID,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// ArchiveAccount hides an account from listings while keeping its full
// transaction history. Accounts are never hard-deleted: removing the
// rows would silently rewrite other accounts' transfer history.
func (s *accountService) ArchiveAccount(id uint) error {
	account, err := s.GetAccountByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Model(account).Update("is_archived", true).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
