package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studioledger/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     fmt.Sprintf("user%d", nextID()),
		PasswordHash: string(hash),
		DisplayName:  "Test User",
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestStudio creates a studio with a unique name.
func CreateTestStudio(t *testing.T, db *gorm.DB) *models.Studio {
	t.Helper()

	studio := &models.Studio{
		Name:    fmt.Sprintf("Test Studio %d", nextID()),
		Address: "1 Test Street",
		Color:   "#3366FF",
	}
	if err := db.Create(studio).Error; err != nil {
		t.Fatalf("failed to create test studio: %v", err)
	}
	return studio
}

// CreateTestAccount creates a cash account with zero initial balance.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, decimal.Zero)
}

// CreateTestAccountWithBalance creates a cash account with the given initial balance.
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, initialBalance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:           fmt.Sprintf("Test Account %d", nextID()),
		Type:           models.AccountTypeCash,
		Currency:       "RUB",
		InitialBalance: initialBalance,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a non-system category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
		Type: categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestSystemCategory creates a protected system category of the given type.
func CreateTestSystemCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     fmt.Sprintf("System Category %d", nextID()),
		Type:     categoryType,
		IsSystem: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test system category: %v", err)
	}
	return category
}

// CreateTestContractor creates a contractor with a unique name.
func CreateTestContractor(t *testing.T, db *gorm.DB) *models.Contractor {
	t.Helper()

	contractor := &models.Contractor{
		Name: fmt.Sprintf("Test Contractor %d", nextID()),
		INN:  "7707083893",
	}
	if err := db.Create(contractor).Error; err != nil {
		t.Fatalf("failed to create test contractor: %v", err)
	}
	return contractor
}

// CreateTestProject creates a project with a unique name.
func CreateTestProject(t *testing.T, db *gorm.DB) *models.Project {
	t.Helper()

	project := &models.Project{
		Name: fmt.Sprintf("Test Project %d", nextID()),
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestTransaction inserts a transaction row directly, bypassing the
// service-layer validation. Useful for seeding read paths.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, accountID uint, amount decimal.Decimal, date time.Time) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Date:      date,
		Amount:    amount,
		Type:      txType,
		AccountID: accountID,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}
