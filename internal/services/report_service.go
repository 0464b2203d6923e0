package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
)

// reportService produces read-only projections over transaction history.
// Transfers move money between accounts without changing the business
// total, so both reports exclude them.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

func (s *reportService) loadRange(startDate, endDate *time.Time) ([]models.Transaction, error) {
	q := s.db.Model(&models.Transaction{}).Where("type IN ?", []models.TransactionType{
		models.TransactionTypeIncome,
		models.TransactionTypeExpense,
	})
	if startDate != nil {
		q = q.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("date <= ?", *endDate)
	}

	var transactions []models.Transaction
	if err := q.Preload("Category").Order("date").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetCashflow aggregates income and expense into month buckets,
// chronological order.
func (s *reportService) GetCashflow(startDate, endDate *time.Time) ([]CashflowEntry, error) {
	transactions, err := s.loadRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		key     string // YYYY-MM, for ordering
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for i := range transactions {
		t := &transactions[i]
		key := t.Date.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key}
			buckets[key] = b
		}
		if t.Type == models.TransactionTypeIncome {
			b.income = b.income.Add(t.Amount)
		} else {
			b.expense = b.expense.Add(t.Amount)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]CashflowEntry, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		month, _ := time.Parse("2006-01", key)
		entries = append(entries, CashflowEntry{
			Period:  month.Format("Jan 2006"),
			Income:  b.income,
			Expense: b.expense,
			Balance: b.income.Sub(b.expense),
		})
	}
	return entries, nil
}

// GetPnl aggregates income and expense by category, income first, larger
// amounts first within each type.
func (s *reportService) GetPnl(startDate, endDate *time.Time) ([]PnlEntry, error) {
	transactions, err := s.loadRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		name   string
		ctype  models.CategoryType
		amount decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for i := range transactions {
		t := &transactions[i]
		name := "Uncategorized"
		if t.Category != nil {
			name = t.Category.Name
		}
		key := string(t.Type) + "/" + name
		b, ok := buckets[key]
		if !ok {
			b = &bucket{name: name, ctype: models.CategoryType(t.Type)}
			buckets[key] = b
		}
		b.amount = b.amount.Add(t.Amount)
	}

	entries := make([]PnlEntry, 0, len(buckets))
	for _, b := range buckets {
		entries = append(entries, PnlEntry{
			Category: b.name,
			Type:     b.ctype,
			Amount:   b.amount,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type == models.CategoryTypeIncome
		}
		if !entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Amount.GreaterThan(entries[j].Amount)
		}
		return entries[i].Category < entries[j].Category
	})
	return entries, nil
}
