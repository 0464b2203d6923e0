package services

import (
	"testing"
	"time"

	"studioledger/internal/models"
	"studioledger/internal/testutil"
)

func seedReportData(t *testing.T, txSvc TransactionServicer, accountID uint, categoryID *uint, txType models.TransactionType, amount int64, date time.Time) {
	t.Helper()
	_, err := txSvc.CreateTransaction(TransactionInput{
		Date:       date,
		Amount:     amt(amount),
		Type:       txType,
		AccountID:  accountID,
		CategoryID: categoryID,
	})
	testutil.AssertNoError(t, err)
}

func TestGetCashflow(t *testing.T) {
	t.Run("buckets_by_month_chronologically", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		reportSvc := NewReportService(db)
		account := testutil.CreateTestAccount(t, db)
		income := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)
		expense := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
		seedReportData(t, txSvc, account.ID, &income.ID, models.TransactionTypeIncome, 1000, jan)
		seedReportData(t, txSvc, account.ID, &expense.ID, models.TransactionTypeExpense, 400, jan)
		seedReportData(t, txSvc, account.ID, &income.ID, models.TransactionTypeIncome, 2000, feb)

		entries, err := reportSvc.GetCashflow(nil, nil)
		testutil.AssertNoError(t, err)
		if len(entries) != 2 {
			t.Fatalf("expected 2 month buckets, got %d", len(entries))
		}

		if entries[0].Period != "Jan 2026" {
			t.Errorf("expected first bucket Jan 2026, got %s", entries[0].Period)
		}
		testutil.AssertDecimalEqual(t, amt(1000), entries[0].Income, "January income")
		testutil.AssertDecimalEqual(t, amt(400), entries[0].Expense, "January expense")
		testutil.AssertDecimalEqual(t, amt(600), entries[0].Balance, "January net")

		if entries[1].Period != "Feb 2026" {
			t.Errorf("expected second bucket Feb 2026, got %s", entries[1].Period)
		}
		testutil.AssertDecimalEqual(t, amt(2000), entries[1].Income, "February income")
	})

	t.Run("transfers_excluded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		reportSvc := NewReportService(db)
		source := testutil.CreateTestAccountWithBalance(t, db, amt(1000))
		dest := testutil.CreateTestAccount(t, db)

		_, err := txSvc.CreateTransaction(TransactionInput{
			Date:        time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			Amount:      amt(500),
			Type:        models.TransactionTypeTransfer,
			AccountID:   source.ID,
			ToAccountID: &dest.ID,
		})
		testutil.AssertNoError(t, err)

		entries, err := reportSvc.GetCashflow(nil, nil)
		testutil.AssertNoError(t, err)
		if len(entries) != 0 {
			t.Errorf("expected no buckets from transfers alone, got %d", len(entries))
		}
	})

	t.Run("date_range_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		reportSvc := NewReportService(db)
		account := testutil.CreateTestAccount(t, db)
		income := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		seedReportData(t, txSvc, account.ID, &income.ID, models.TransactionTypeIncome, 100, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		seedReportData(t, txSvc, account.ID, &income.ID, models.TransactionTypeIncome, 200, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

		start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		entries, err := reportSvc.GetCashflow(&start, nil)
		testutil.AssertNoError(t, err)
		if len(entries) != 1 {
			t.Fatalf("expected 1 bucket in range, got %d", len(entries))
		}
		testutil.AssertDecimalEqual(t, amt(200), entries[0].Income, "income in range")
	})
}

func TestGetPnl(t *testing.T) {
	t.Run("groups_by_category_income_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		reportSvc := NewReportService(db)
		account := testutil.CreateTestAccount(t, db)
		revenue := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)
		rent := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		seedReportData(t, txSvc, account.ID, &revenue.ID, models.TransactionTypeIncome, 1500, date)
		seedReportData(t, txSvc, account.ID, &revenue.ID, models.TransactionTypeIncome, 500, date)
		seedReportData(t, txSvc, account.ID, &rent.ID, models.TransactionTypeExpense, 800, date)

		entries, err := reportSvc.GetPnl(nil, nil)
		testutil.AssertNoError(t, err)
		if len(entries) != 2 {
			t.Fatalf("expected 2 category buckets, got %d", len(entries))
		}

		if entries[0].Type != models.CategoryTypeIncome {
			t.Errorf("expected income entries first, got %s", entries[0].Type)
		}
		if entries[0].Category != revenue.Name {
			t.Errorf("expected category %q, got %q", revenue.Name, entries[0].Category)
		}
		testutil.AssertDecimalEqual(t, amt(2000), entries[0].Amount, "summed income category")
		testutil.AssertDecimalEqual(t, amt(800), entries[1].Amount, "expense category")
	})

	t.Run("uncategorized_fallback", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		reportSvc := NewReportService(db)
		account := testutil.CreateTestAccount(t, db)

		// Row without a category, inserted directly.
		testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, account.ID, amt(300), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		entries, err := reportSvc.GetPnl(nil, nil)
		testutil.AssertNoError(t, err)
		if len(entries) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(entries))
		}
		if entries[0].Category != "Uncategorized" {
			t.Errorf("expected Uncategorized bucket, got %q", entries[0].Category)
		}
	})
}
