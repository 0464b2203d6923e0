package services

import (
	"testing"
	"time"

	"studioledger/internal/models"
	"studioledger/internal/testutil"
)

func TestCreateProject(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		projectSvc := NewProjectService(db)

		project, err := projectSvc.CreateProject("Summer Campaign", "Promo work for summer season")
		testutil.AssertNoError(t, err)
		if project.ID == 0 {
			t.Fatal("expected non-zero project ID")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		projectSvc := NewProjectService(db)

		_, err := projectSvc.CreateProject("", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteProject(t *testing.T) {
	t.Run("clears_transaction_references", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		projectSvc := NewProjectService(db)
		txSvc := NewTransactionService(db)
		project := testutil.CreateTestProject(t, db)
		account := testutil.CreateTestAccount(t, db)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		tx, err := txSvc.CreateTransaction(TransactionInput{
			Date:       time.Now(),
			Amount:     amt(100),
			Type:       models.TransactionTypeExpense,
			AccountID:  account.ID,
			CategoryID: &category.ID,
			ProjectID:  &project.ID,
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, projectSvc.DeleteProject(project.ID))

		reloaded, err := txSvc.GetTransactionByID(tx.ID)
		testutil.AssertNoError(t, err)
		if reloaded.ProjectID != nil {
			t.Error("expected transaction project reference to be cleared")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		projectSvc := NewProjectService(db)

		err := projectSvc.DeleteProject(9999)
		testutil.AssertAppError(t, err, "PROJECT_NOT_FOUND")
	})
}
