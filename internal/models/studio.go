package models

// Studio represents a business location. It is a pure grouping dimension:
// accounts and transactions may reference it for reporting segmentation.
type Studio struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Color   string `json:"color"`

	// Relationships
	Accounts     []Account     `gorm:"foreignKey:StudioID" json:"accounts,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:StudioID" json:"transactions,omitempty"`
}
