package models

// User is the caller identity supplied by the auth layer. It exists only
// so mutations can be attributed in the activity log; authorization
// policy is not part of this service.
type User struct {
	Base
	Username     string `gorm:"not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `json:"display_name"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}
