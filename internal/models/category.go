package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category classifies income and expense transactions. Transfers are
// never categorized. System categories are seeded at first boot and
// protected from deletion.
type Category struct {
	Base
	Name     string       `gorm:"not null" json:"name"`
	Type     CategoryType `gorm:"not null" json:"type"`
	ParentID *uint        `json:"parent_id,omitempty"`
	IsSystem bool         `gorm:"not null;default:false" json:"is_system"`

	// Relationships
	Parent       *Category     `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children     []Category    `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
