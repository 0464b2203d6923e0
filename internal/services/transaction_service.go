package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
)

// maxTransactionResults caps unfiltered transaction listings.
const maxTransactionResults = 1000

// transactionService implements the transaction mutation protocol.
// Under the derived-balance strategy a mutation only ever writes the
// transaction row itself: account balances fall out of the read path,
// so there is no bookkeeping to reverse or reapply and no way for a
// half-applied mutation to leave balances inconsistent.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// validate checks a full transaction field set against the invariants:
// positive amount, known type, category presence matching the type,
// destination account only on transfers, and existing referenced rows.
// All violations are detected before anything is written.
func (s *transactionService) validate(input *TransactionInput) error {
	if !input.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	switch input.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		if input.CategoryID == nil {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id is required for income and expense transactions")
		}
		if input.ToAccountID != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "to_account_id is only allowed for transfers")
		}
	case models.TransactionTypeTransfer:
		if input.ToAccountID == nil {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "to_account_id is required for transfers")
		}
		if *input.ToAccountID == input.AccountID {
			return apperrors.ErrSameAccountTransfer
		}
		if input.CategoryID != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id is not allowed for transfers")
		}
		if input.ContractorID != nil {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "contractor_id is not allowed for transfers")
		}
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income, expense, or transfer")
	}

	if err := s.checkAccountExists(input.AccountID); err != nil {
		return err
	}
	if input.ToAccountID != nil {
		if err := s.checkAccountExists(*input.ToAccountID); err != nil {
			return err
		}
	}

	if input.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if string(category.Type) != string(input.Type) {
			return apperrors.ErrCategoryTypeMismatch
		}
	}

	if input.StudioID != nil {
		if err := s.checkExists(&models.Studio{}, *input.StudioID, apperrors.ErrStudioNotFound); err != nil {
			return err
		}
	}
	if input.ContractorID != nil {
		if err := s.checkExists(&models.Contractor{}, *input.ContractorID, apperrors.ErrContractorNotFound); err != nil {
			return err
		}
	}
	if input.ProjectID != nil {
		if err := s.checkExists(&models.Project{}, *input.ProjectID, apperrors.ErrProjectNotFound); err != nil {
			return err
		}
	}

	return nil
}

func (s *transactionService) checkAccountExists(id uint) error {
	var count int64
	if err := s.db.Model(&models.Account{}).Where("id = ? AND is_archived = ?", id, false).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

func (s *transactionService) checkExists(model interface{}, id uint, notFound *apperrors.AppError) error {
	var count int64
	if err := s.db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return notFound
	}
	return nil
}

// CreateTransaction validates the input and persists a new transaction
// row in a single atomic unit. A transfer debits the source account and
// credits the destination with the same row, so both sides move together
// or not at all.
func (s *transactionService) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Date:         input.Date,
		Amount:       input.Amount,
		Type:         input.Type,
		Description:  input.Description,
		AccountID:    input.AccountID,
		ToAccountID:  input.ToAccountID,
		CategoryID:   input.CategoryID,
		StudioID:     input.StudioID,
		ContractorID: input.ContractorID,
		ProjectID:    input.ProjectID,
		CreatedByID:  input.CreatedByID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// UpdateTransaction replaces an existing transaction's field set after
// re-validating it wholesale. An update may change amount, type, and
// both account references at once (an expense becoming a transfer); the
// old row's balance effect disappears and the new one takes hold the
// moment the replacement commits, because balances are derived from the
// stored rows.
func (s *transactionService) UpdateTransaction(id uint, input TransactionInput) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(&input); err != nil {
		return nil, err
	}

	transaction.Date = input.Date
	transaction.Amount = input.Amount
	transaction.Type = input.Type
	transaction.Description = input.Description
	transaction.AccountID = input.AccountID
	transaction.ToAccountID = input.ToAccountID
	transaction.CategoryID = input.CategoryID
	transaction.StudioID = input.StudioID
	transaction.ContractorID = input.ContractorID
	transaction.ProjectID = input.ProjectID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Save writes the full row, so cleared foreign keys (e.g. a
		// transfer's category) go back to NULL.
		if err := tx.Omit(clause.Associations).Save(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// DeleteTransaction removes a transaction row. Its balance effect on
// every account it touched vanishes with the row.
func (s *transactionService) DeleteTransaction(id uint) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// GetTransactions retrieves transactions with their referenced
// dimensions preloaded, newest first, ties broken by insertion order.
func (s *transactionService) GetTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	limit := filter.Limit
	if limit <= 0 || limit > maxTransactionResults {
		limit = maxTransactionResults
	}

	q := s.db.Model(&models.Transaction{})
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	if filter.StudioID != nil {
		q = q.Where("studio_id = ?", *filter.StudioID)
	}

	var transactions []models.Transaction
	if err := q.
		Preload("Account").
		Preload("ToAccount").
		Preload("Category").
		Preload("Studio").
		Preload("Contractor").
		Preload("Project").
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
