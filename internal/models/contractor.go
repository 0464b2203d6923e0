package models

// Contractor is an external counterparty optionally tagged on income and
// expense transactions. Transfers never reference a contractor.
type Contractor struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	INN         string `gorm:"column:inn" json:"inn"`
	Description string `json:"description"`
}
