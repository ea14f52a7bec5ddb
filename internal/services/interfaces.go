package services

import (
	"gorm.io/gorm"

	"teamboard/internal/models"
)

// TeamOverview groups team members the way the team and admin views
// render them.
type TeamOverview struct {
	Admins   []models.User `json:"admins"`
	Managers []models.User `json:"managers"`
	Others   []models.User `json:"others"`
}

// DashboardSummary contains the aggregate numbers shown on the admin
// dashboard. The invoice and todo totals are sums of the per-user
// counters across the whole team.
type DashboardSummary struct {
	TeamCount     int64 `json:"team_count"`
	RolesCount    int64 `json:"roles_count"`
	InvoicesTotal int64 `json:"invoices_total"`
	TodosTotal    int64 `json:"todos_total"`
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string, role models.RoleName) (*models.User, error)
	UpdateUser(targetID uint, email, name string, role models.RoleName, newPassword string) (*models.User, error)
	DeleteUser(actorID, targetID uint) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID uint, name, bio, email string) (*models.User, error)
	SetAvatar(userID uint, path string) error
	ClearAvatar(userID uint) error
	TeamOverview() (*TeamOverview, error)
	DashboardSummary() (*DashboardSummary, error)
}

// RoleServicer defines the contract for role management.
type RoleServicer interface {
	AddRole(name string) (*models.Role, error)
	RemoveRole(roleID uint) error
	ListRoles() ([]models.Role, error)
}

// InvoiceItemInput is one line item of an invoice upload. Price and
// quantity arrive as form strings and are parsed by the service.
type InvoiceItemInput struct {
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// InvoiceServicer defines the contract for invoice-related business logic.
type InvoiceServicer interface {
	Upload(userID uint, title, date, fromAddress string, items []InvoiceItemInput) (*models.Invoice, error)
	Remove(userID, invoiceID uint) error
	SetNote(invoiceID uint, note string) error
	UpdateStatus(invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error)
	Filter(principal uint, isAdmin bool, status string, adminScope bool) ([]models.Invoice, error)
	ListByUser(userID uint, status models.InvoiceStatus) ([]models.Invoice, error)
	GetWithItems(invoiceID uint) (*models.Invoice, error)
}

// TodoServicer defines the contract for todo-related business logic.
type TodoServicer interface {
	Add(userID uint, title, description, links, deadline string) (*models.Todo, error)
	UpdateStatus(userID, todoID uint, status models.TodoStatus) error
	Update(userID, todoID uint, title, description, links, deadline string) (*models.Todo, error)
	List(userID uint) ([]models.Todo, error)
}

// EventInput is one calendar entry in a batch save. Start is an
// ISO-8601 instant; a trailing UTC marker is accepted.
type EventInput struct {
	Start string `json:"start" binding:"required"`
	Title string `json:"title" binding:"required"`
}

// EventServicer defines the contract for calendar events.
type EventServicer interface {
	SaveEvents(userID uint, entries []EventInput) ([]models.Event, error)
	Remove(userID, eventID uint) error
	List(userID uint) ([]models.Event, error)
}

// AvailabilityServicer defines the contract for availability scheduling.
type AvailabilityServicer interface {
	Replace(userID uint, starts []string) ([]models.Availability, error)
	List(userID uint) ([]models.Availability, error)
}

// NotificationServicer defines the contract for notification emission
// and retrieval. Emit takes the caller's transaction handle so the
// notification commits or rolls back with the mutation that caused it.
type NotificationServicer interface {
	Emit(tx *gorm.DB, userID uint, title, redirect string) error
	List(userID uint) ([]models.Notification, error)
	Delete(userID, notificationID uint) error
}
