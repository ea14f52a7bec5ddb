package models

import "time"

// TodoStatus represents the state of a todo. "removed" is accepted as a
// status update but deletes the row rather than being stored.
type TodoStatus string

const (
	TodoStatusDoing   TodoStatus = "doing"
	TodoStatusDone    TodoStatus = "done"
	TodoStatusRemoved TodoStatus = "removed"
)

// Todo represents a to-do entry owned by a single user. Creating a todo
// also creates a calendar event at the deadline.
type Todo struct {
	Base
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Links       string     `json:"links"`
	Status      TodoStatus `gorm:"not null;default:doing" json:"status"`
	Color       string     `json:"color"`
	Deadline    time.Time  `gorm:"not null" json:"deadline"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
}
