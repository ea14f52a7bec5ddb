package models

// RoleName identifies a role a user can hold. Capability checks live
// here so membership is never decided by ad-hoc string slices.
type RoleName string

const (
	RoleAdmin   RoleName = "admin"
	RoleFounder RoleName = "founder"
	RoleManager RoleName = "manager"
	RoleUser    RoleName = "user"
)

// IsAdmin reports whether the role grants access to admin-only operations.
func (r RoleName) IsAdmin() bool {
	switch r {
	case RoleAdmin, RoleFounder:
		return true
	default:
		return false
	}
}

// IsSeed reports whether the role is created at first boot and must
// never be deleted.
func (r RoleName) IsSeed() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// Role represents an assignable role with its display attributes.
// Root roles are system-owned and cannot be removed.
type Role struct {
	Base
	Name  RoleName `gorm:"uniqueIndex;not null" json:"name"`
	Color string   `json:"color"`
	Icon  string   `json:"icon"`
	Root  bool     `gorm:"default:false" json:"root"`
}
