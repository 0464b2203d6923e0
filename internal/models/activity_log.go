package models

// ActivityLog records who did what to which entity. It is a write-only
// side observer of mutations: entries are appended after a successful
// operation and never read back by the ledger itself. Username is
// denormalized for easier display.
type ActivityLog struct {
	Base
	UserID     *uint  `gorm:"index" json:"user_id,omitempty"`
	Username   string `json:"username"`
	Action     string `gorm:"not null" json:"action"`
	EntityType string `gorm:"not null" json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Details    string `json:"details,omitempty"`
}
