package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"teamboard/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Role:     models.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAdmin creates a user with the admin role.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("failed to promote test user: %v", err)
	}
	user.Role = models.RoleAdmin
	return user
}

// CreateTestRole creates a non-root role with a unique name.
func CreateTestRole(t *testing.T, db *gorm.DB) *models.Role {
	t.Helper()

	role := &models.Role{
		Name:  models.RoleName(fmt.Sprintf("role%d", nextID())),
		Color: "blue",
		Icon:  "star",
	}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("failed to create test role: %v", err)
	}
	return role
}

// CreateTestInvoice creates an invoice with a single line item. The
// price is in cents.
func CreateTestInvoice(t *testing.T, db *gorm.DB, userID uint, price int64, quantity int) *models.Invoice {
	t.Helper()

	n := nextID()
	invoice := &models.Invoice{
		UserID:      userID,
		Title:       fmt.Sprintf("Test Invoice %d", n),
		Date:        "2026-01-15",
		FromAddress: "12 Test Street",
		Items: []models.InvoiceItem{
			{Name: fmt.Sprintf("Item %d", n), Price: price, Quantity: quantity},
		},
	}
	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}
	return invoice
}

// CreateTestTodo creates a todo with a deadline one day out.
func CreateTestTodo(t *testing.T, db *gorm.DB, userID uint) *models.Todo {
	t.Helper()

	todo := &models.Todo{
		UserID:      userID,
		Title:       fmt.Sprintf("Test Todo %d", nextID()),
		Description: "do the thing",
		Deadline:    time.Now().Add(24 * time.Hour),
	}
	if err := db.Create(todo).Error; err != nil {
		t.Fatalf("failed to create test todo: %v", err)
	}
	return todo
}

// CreateTestEvent creates a calendar event starting now.
func CreateTestEvent(t *testing.T, db *gorm.DB, userID uint) *models.Event {
	t.Helper()

	event := &models.Event{
		UserID:    userID,
		Title:     fmt.Sprintf("Test Event %d", nextID()),
		StartDate: time.Now(),
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateTestNotification creates a notification for the given user.
func CreateTestNotification(t *testing.T, db *gorm.DB, userID uint) *models.Notification {
	t.Helper()

	notification := &models.Notification{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Notification %d", nextID()),
		Redirect: "/profile",
	}
	if err := db.Create(notification).Error; err != nil {
		t.Fatalf("failed to create test notification: %v", err)
	}
	return notification
}
