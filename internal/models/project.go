package models

// Project is an optional cost-center tag, independent of studio and category.
type Project struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}
