package models

// Notification is an ephemeral message for a single recipient, created
// as a side effect of selected mutations and deleted explicitly by the
// recipient.
type Notification struct {
	Base
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Title    string `gorm:"not null" json:"title"`
	Redirect string `json:"redirect"`
}
