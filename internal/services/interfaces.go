package services

import (
	"time"

	"github.com/shopspring/decimal"

	"studioledger/internal/models"
	"studioledger/internal/pagination"
)

// AccountWithBalance is an account joined with its derived balance:
// initial_balance plus the signed sum of every transaction touching the
// account as source or destination.
type AccountWithBalance struct {
	models.Account
	Balance decimal.Decimal `json:"balance"`
}

// StudioServicer defines the contract for studio-related business logic.
type StudioServicer interface {
	GetStudios() ([]models.Studio, error)
	GetStudioByID(id uint) (*models.Studio, error)
	CreateStudio(name, address, color string) (*models.Studio, error)
	UpdateStudio(id uint, name, address, color *string) (*models.Studio, error)
	DeleteStudio(id uint) error
}

// AccountServicer defines the contract for account-related business logic.
// Balances are always derived on read; no method ever writes a balance.
type AccountServicer interface {
	GetAccounts() ([]AccountWithBalance, error)
	GetAccountByID(id uint) (*models.Account, error)
	GetAccountBalance(id uint) (decimal.Decimal, error)
	CreateAccount(name string, accountType models.AccountType, currency string, initialBalance decimal.Decimal, studioID *uint) (*models.Account, error)
	ArchiveAccount(id uint) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	GetCategories() ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	CreateCategory(name string, categoryType models.CategoryType, parentID *uint, isSystem bool) (*models.Category, error)
	DeleteCategory(id uint) error
}

// ContractorServicer defines the contract for contractor-related business logic.
type ContractorServicer interface {
	GetContractors() ([]models.Contractor, error)
	CreateContractor(name, inn, description string) (*models.Contractor, error)
	UpdateContractor(id uint, name, inn, description *string) (*models.Contractor, error)
	DeleteContractor(id uint) error
}

// ProjectServicer defines the contract for project-related business logic.
type ProjectServicer interface {
	GetProjects() ([]models.Project, error)
	CreateProject(name, description string) (*models.Project, error)
	UpdateProject(id uint, name, description *string) (*models.Project, error)
	DeleteProject(id uint) error
}

// TransactionInput carries the full field set of a transaction mutation.
// Both create and update (full replacement) take the same shape.
type TransactionInput struct {
	Date         time.Time
	Amount       decimal.Decimal
	Type         models.TransactionType
	Description  string
	AccountID    uint
	ToAccountID  *uint
	CategoryID   *uint
	StudioID     *uint
	ContractorID *uint
	ProjectID    *uint
	CreatedByID  *uint
}

// TransactionFilter holds optional filter parameters for listing transactions.
// Filters are conjunctive.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	StudioID  *uint
	Limit     int
}

// TransactionServicer defines the contract for the transaction mutation
// protocol and transaction reads.
type TransactionServicer interface {
	CreateTransaction(input TransactionInput) (*models.Transaction, error)
	UpdateTransaction(id uint, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(id uint) error
	GetTransactionByID(id uint) (*models.Transaction, error)
	GetTransactions(filter TransactionFilter) ([]models.Transaction, error)
}

// CashflowEntry is one month bucket of the cashflow report.
type CashflowEntry struct {
	Period  string          `json:"period"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// PnlEntry is one category bucket of the profit-and-loss report.
type PnlEntry struct {
	Category string              `json:"category"`
	Type     models.CategoryType `json:"type"`
	Amount   decimal.Decimal     `json:"amount"`
}

// ReportServicer defines the contract for read-only reporting projections.
type ReportServicer interface {
	GetCashflow(startDate, endDate *time.Time) ([]CashflowEntry, error)
	GetPnl(startDate, endDate *time.Time) ([]PnlEntry, error)
}

// AuditServicer defines the contract for activity logging.
type AuditServicer interface {
	Log(userID *uint, action, entityType string, entityID uint, details string)
	GetActivityLogs(page pagination.PageRequest) (*pagination.PageResponse[models.ActivityLog], error)
}

// UserServicer defines the contract for the identity collaborator.
type UserServicer interface {
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
}
