package models

// User represents a team member.
//
// Revenue is an accumulated amount in cents, credited when one of the
// user's invoices transitions to paid. InvoicesCount and TodoCount are
// denormalized counters maintained by the invoice and todo services.
type User struct {
	Base
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	Password      string   `gorm:"not null" json:"-"`
	Name          string   `json:"name"`
	Bio           string   `json:"bio"`
	Role          RoleName `gorm:"not null;default:user" json:"role"`
	ProfileImg    string   `gorm:"default:images/default-profile.jpg" json:"profile_img"`
	Revenue       int64    `gorm:"default:0" json:"revenue"`
	InvoicesCount int      `gorm:"default:0" json:"invoices_count"`
	TodoCount     int      `gorm:"default:0" json:"todo_count"`

	Invoices     []Invoice      `gorm:"foreignKey:UserID" json:"invoices,omitempty"`
	Todos        []Todo         `gorm:"foreignKey:UserID" json:"todos,omitempty"`
	Events       []Event        `gorm:"foreignKey:UserID" json:"events,omitempty"`
	Availability []Availability `gorm:"foreignKey:UserID" json:"availability,omitempty"`
}
