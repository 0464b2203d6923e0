package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"studioledger/internal/models"
	"studioledger/internal/testutil"
)

func amt(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func TestCreateTransaction(t *testing.T) {
	t.Run("income_increases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccountWithBalance(t, db, amt(1000))
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		tx, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(500),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}

		balance, err := acctSvc.GetAccountBalance(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(1500), balance, "balance after income")
	})

	t.Run("expense_decreases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccountWithBalance(t, db, amt(1000))
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(200),
			Type:       models.TransactionTypeExpense,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertNoError(t, err)

		balance, err := acctSvc.GetAccountBalance(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(800), balance, "balance after expense")
	})

	t.Run("transfer_moves_amount_between_accounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db)
		source := testutil.CreateTestAccountWithBalance(t, db, amt(1000))
		dest := testutil.CreateTestAccountWithBalance(t, db, amt(0))

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:        time.Now(),
			Amount:      amt(300),
			Type:        models.TransactionTypeTransfer,
			AccountID:   source.ID,
			ToAccountID: &dest.ID,
		})
		testutil.AssertNoError(t, err)

		sourceBalance, err := acctSvc.GetAccountBalance(source.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(700), sourceBalance, "source balance after transfer")

		destBalance, err := acctSvc.GetAccountBalance(dest.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(300), destBalance, "destination balance after transfer")
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(0),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(-100),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("income_requires_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:      time.Now(),
			Amount:    amt(100),
			Type:      models.TransactionTypeIncome,
			AccountID: account.ID,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("expense_rejects_destination_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		other := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:        time.Now(),
			Amount:      amt(100),
			Type:        models.TransactionTypeExpense,
			AccountID:   account.ID,
			ToAccountID: &other.ID,
			CategoryID:  &category.ID,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("transfer_to_same_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:        time.Now(),
			Amount:      amt(100),
			Type:        models.TransactionTypeTransfer,
			AccountID:   account.ID,
			ToAccountID: &account.ID,
		})
		testutil.AssertAppError(t, err, "SAME_ACCOUNT_TRANSFER")
	})

	t.Run("transfer_rejects_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		source := testutil.CreateTestAccount(t, db)
		dest := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:        time.Now(),
			Amount:      amt(100),
			Type:        models.TransactionTypeTransfer,
			AccountID:   source.ID,
			ToAccountID: &dest.ID,
			CategoryID:  &category.ID,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("transfer_rejects_contractor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		source := testutil.CreateTestAccount(t, db)
		dest := testutil.CreateTestAccount(t, db)
		contractor := testutil.CreateTestContractor(t, db)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:         time.Now(),
			Amount:       amt(100),
			Type:         models.TransactionTypeTransfer,
			AccountID:    source.ID,
			ToAccountID:  &dest.ID,
			ContractorID: &contractor.ID,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("category_type_mismatch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertAppError(t, err, "CATEGORY_TYPE_MISMATCH")
	})

	t.Run("unknown_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeIncome,
			AccountID:  9999,
			CategoryID: &category.ID,
		})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("archived_account_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		testutil.AssertNoError(t, acctSvc.ArchiveAccount(account.ID))

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("unknown_studio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)
		missing := uint(9999)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
			StudioID:   &missing,
		})
		testutil.AssertAppError(t, err, "STUDIO_NOT_FOUND")
	})

	t.Run("invalid_state_writes_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:      time.Now(),
			Amount:    amt(100),
			Type:      models.TransactionTypeIncome,
			AccountID: account.ID,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
		if count != 0 {
			t.Errorf("expected no transactions after rejected create, got %d", count)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("amount_change_shifts_balance_by_difference", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccountWithBalance(t, db, amt(1000))
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		tx, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeExpense,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertNoError(t, err)

		balance, err := acctSvc.GetAccountBalance(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(900), balance, "balance before update")

		_, err = txSvc.UpdateTransaction(tx.ID, TransactionInput{
			Date:       tx.Date,
			Amount:     amt(150),
			Type:       models.TransactionTypeExpense,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertNoError(t, err)

		balance, err = acctSvc.GetAccountBalance(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(850), balance, "balance after update")
	})

	t.Run("expense_becomes_transfer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db)
		source := testutil.CreateTestAccountWithBalance(t, db, amt(1000))
		dest := testutil.CreateTestAccountWithBalance(t, db, amt(0))
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		tx, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeExpense,
			AccountID:  source.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertNoError(t, err)

		updated, err := txSvc.UpdateTransaction(tx.ID, TransactionInput{
			Date:        tx.Date,
			Amount:      amt(100),
			Type:        models.TransactionTypeTransfer,
			AccountID:   source.ID,
			ToAccountID: &dest.ID,
		})
		testutil.AssertNoError(t, err)

		if updated.CategoryID != nil {
			t.Error("expected category to be cleared on transfer")
		}

		reloaded, err := txSvc.GetTransactionByID(tx.ID)
		testutil.AssertNoError(t, err)
		if reloaded.CategoryID != nil {
			t.Error("expected stored category reference to be NULL")
		}

		sourceBalance, err := acctSvc.GetAccountBalance(source.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(900), sourceBalance, "source balance after retype")

		destBalance, err := acctSvc.GetAccountBalance(dest.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(100), destBalance, "destination balance after retype")
	})

	t.Run("invalid_replacement_leaves_row_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		tx, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertNoError(t, err)

		_, err = txSvc.UpdateTransaction(tx.ID, TransactionInput{
			Date:       tx.Date,
			Amount:     amt(-5),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		reloaded, err := txSvc.GetTransactionByID(tx.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(100), reloaded.Amount, "amount after rejected update")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		_, err := txSvc.UpdateTransaction(9999, TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("delete_restores_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccountWithBalance(t, db, amt(1000))
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		tx, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(250),
			Type:       models.TransactionTypeExpense,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, txSvc.DeleteTransaction(tx.ID))

		balance, err := acctSvc.GetAccountBalance(account.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(1000), balance, "balance after delete")

		_, err = txSvc.GetTransactionByID(tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("delete_transfer_restores_both_sides", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db)
		source := testutil.CreateTestAccountWithBalance(t, db, amt(500))
		dest := testutil.CreateTestAccountWithBalance(t, db, amt(500))

		tx, err := txSvc.CreateTransaction(TransactionInput{
			Date:        time.Now(),
			Amount:      amt(200),
			Type:        models.TransactionTypeTransfer,
			AccountID:   source.ID,
			ToAccountID: &dest.ID,
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, txSvc.DeleteTransaction(tx.ID))

		sourceBalance, err := acctSvc.GetAccountBalance(source.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(500), sourceBalance, "source balance after delete")

		destBalance, err := acctSvc.GetAccountBalance(dest.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, amt(500), destBalance, "destination balance after delete")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)

		err := txSvc.DeleteTransaction(9999)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestGetTransactions(t *testing.T) {
	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)

		older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, account.ID, amt(100), older)
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, account.ID, amt(200), newer)

		transactions, err := txSvc.GetTransactions(TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}
		testutil.AssertDecimalEqual(t, amt(200), transactions[0].Amount, "newest transaction first")
	})

	t.Run("same_date_ties_break_by_insertion_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)

		date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, account.ID, amt(1), date)
		second := testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, account.ID, amt(2), date)

		transactions, err := txSvc.GetTransactions(TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].ID != second.ID {
			t.Errorf("expected most recently inserted transaction first, got ID %d", transactions[0].ID)
		}
	})

	t.Run("date_range_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)

		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, account.ID, amt(100), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, account.ID, amt(200), time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, account.ID, amt(300), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
		transactions, err := txSvc.GetTransactions(TransactionFilter{StartDate: &start, EndDate: &end})
		testutil.AssertNoError(t, err)
		if len(transactions) != 1 {
			t.Fatalf("expected 1 transaction in range, got %d", len(transactions))
		}
		testutil.AssertDecimalEqual(t, amt(200), transactions[0].Amount, "transaction in range")
	})

	t.Run("studio_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)
		studio := testutil.CreateTestStudio(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
			StudioID:   &studio.ID,
		})
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(200),
			Type:       models.TransactionTypeIncome,
			AccountID:  account.ID,
			CategoryID: &category.ID,
		})
		testutil.AssertNoError(t, err)

		transactions, err := txSvc.GetTransactions(TransactionFilter{StudioID: &studio.ID})
		testutil.AssertNoError(t, err)
		if len(transactions) != 1 {
			t.Fatalf("expected 1 transaction for studio, got %d", len(transactions))
		}
		testutil.AssertDecimalEqual(t, amt(100), transactions[0].Amount, "studio-tagged transaction")
	})

	t.Run("limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		account := testutil.CreateTestAccount(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, account.ID, amt(int64(i+1)), time.Now())
		}

		transactions, err := txSvc.GetTransactions(TransactionFilter{Limit: 3})
		testutil.AssertNoError(t, err)
		if len(transactions) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(transactions))
		}
	})
}
