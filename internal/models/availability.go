package models

import "time"

// Availability marks a calendar day a user is available. The set is
// always replaced as a whole, never patched row by row.
type Availability struct {
	Base
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
}
