package models

import "time"

// Event represents a calendar entry owned by a single user.
type Event struct {
	Base
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	Title     string    `json:"title"`
}
