package database

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studioledger/internal/logger"
	"studioledger/internal/models"
)

// Seed populates an empty database with the default admin user, a
// studio, two accounts, and the system categories. It runs at every
// startup but is a no-op once any studio exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Studio{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Get().Info("Seeding database...")

	return db.Transaction(func(tx *gorm.DB) error {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			DisplayName:  "Administrator",
			IsActive:     true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		studio := &models.Studio{Name: "Main Studio", Address: "Tverskaya 1"}
		if err := tx.Create(studio).Error; err != nil {
			return err
		}

		accounts := []models.Account{
			{
				Name:           "Cash Register",
				Type:           models.AccountTypeCash,
				Currency:       "RUB",
				InitialBalance: decimal.NewFromInt(50000),
				StudioID:       &studio.ID,
			},
			{
				Name:           "Bank Account",
				Type:           models.AccountTypeBank,
				Currency:       "RUB",
				InitialBalance: decimal.NewFromInt(150000),
				StudioID:       &studio.ID,
			},
		}
		if err := tx.Create(&accounts).Error; err != nil {
			return err
		}

		categories := []models.Category{
			{Name: "Service Revenue", Type: models.CategoryTypeIncome, IsSystem: true},
			{Name: "Product Revenue", Type: models.CategoryTypeIncome, IsSystem: true},
			{Name: "Rent", Type: models.CategoryTypeExpense, IsSystem: true},
			{Name: "Salaries", Type: models.CategoryTypeExpense, IsSystem: true},
			{Name: "Marketing", Type: models.CategoryTypeExpense},
			{Name: "Supplies", Type: models.CategoryTypeExpense},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		logger.Get().Info("Database seeded")
		return nil
	})
}
