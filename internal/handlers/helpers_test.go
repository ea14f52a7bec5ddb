package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"teamboard/internal/middleware"
	"teamboard/internal/models"
	"teamboard/internal/services"
	"teamboard/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn       func(email, password string, role models.RoleName) (*models.User, error)
	updateUserFn       func(targetID uint, email, name string, role models.RoleName, newPassword string) (*models.User, error)
	deleteUserFn       func(actorID, targetID uint) error
	getUserByEmailFn   func(email string) (*models.User, error)
	getUserByIDFn      func(id uint) (*models.User, error)
	verifyPasswordFn   func(user *models.User, password string) bool
	updateProfileFn    func(userID uint, name, bio, email string) (*models.User, error)
	setAvatarFn        func(userID uint, path string) error
	clearAvatarFn      func(userID uint) error
	teamOverviewFn     func() (*services.TeamOverview, error)
	dashboardSummaryFn func() (*services.DashboardSummary, error)
}

func (m *mockUserService) CreateUser(email, password string, role models.RoleName) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password, role)
	}
	return &models.User{}, nil
}

func (m *mockUserService) UpdateUser(targetID uint, email, name string, role models.RoleName, newPassword string) (*models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(targetID, email, name, role, newPassword)
	}
	return &models.User{}, nil
}

func (m *mockUserService) DeleteUser(actorID, targetID uint) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(actorID, targetID)
	}
	return nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) UpdateProfile(userID uint, name, bio, email string) (*models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(userID, name, bio, email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) SetAvatar(userID uint, path string) error {
	if m.setAvatarFn != nil {
		return m.setAvatarFn(userID, path)
	}
	return nil
}

func (m *mockUserService) ClearAvatar(userID uint) error {
	if m.clearAvatarFn != nil {
		return m.clearAvatarFn(userID)
	}
	return nil
}

func (m *mockUserService) TeamOverview() (*services.TeamOverview, error) {
	if m.teamOverviewFn != nil {
		return m.teamOverviewFn()
	}
	return &services.TeamOverview{}, nil
}

func (m *mockUserService) DashboardSummary() (*services.DashboardSummary, error) {
	if m.dashboardSummaryFn != nil {
		return m.dashboardSummaryFn()
	}
	return &services.DashboardSummary{}, nil
}

type mockInvoiceService struct {
	uploadFn       func(userID uint, title, date, fromAddress string, items []services.InvoiceItemInput) (*models.Invoice, error)
	removeFn       func(userID, invoiceID uint) error
	setNoteFn      func(invoiceID uint, note string) error
	updateStatusFn func(invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error)
	filterFn       func(principal uint, isAdmin bool, status string, adminScope bool) ([]models.Invoice, error)
	listByUserFn   func(userID uint, status models.InvoiceStatus) ([]models.Invoice, error)
	getWithItemsFn func(invoiceID uint) (*models.Invoice, error)
}

func (m *mockInvoiceService) Upload(userID uint, title, date, fromAddress string, items []services.InvoiceItemInput) (*models.Invoice, error) {
	if m.uploadFn != nil {
		return m.uploadFn(userID, title, date, fromAddress, items)
	}
	return &models.Invoice{}, nil
}

func (m *mockInvoiceService) Remove(userID, invoiceID uint) error {
	if m.removeFn != nil {
		return m.removeFn(userID, invoiceID)
	}
	return nil
}

func (m *mockInvoiceService) SetNote(invoiceID uint, note string) error {
	if m.setNoteFn != nil {
		return m.setNoteFn(invoiceID, note)
	}
	return nil
}

func (m *mockInvoiceService) UpdateStatus(invoiceID uint, status models.InvoiceStatus) (*models.Invoice, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(invoiceID, status)
	}
	return &models.Invoice{}, nil
}

func (m *mockInvoiceService) Filter(principal uint, isAdmin bool, status string, adminScope bool) ([]models.Invoice, error) {
	if m.filterFn != nil {
		return m.filterFn(principal, isAdmin, status, adminScope)
	}
	return nil, nil
}

func (m *mockInvoiceService) ListByUser(userID uint, status models.InvoiceStatus) ([]models.Invoice, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(userID, status)
	}
	return nil, nil
}

func (m *mockInvoiceService) GetWithItems(invoiceID uint) (*models.Invoice, error) {
	if m.getWithItemsFn != nil {
		return m.getWithItemsFn(invoiceID)
	}
	return &models.Invoice{}, nil
}

type mockTodoService struct {
	addFn          func(userID uint, title, description, links, deadline string) (*models.Todo, error)
	updateStatusFn func(userID, todoID uint, status models.TodoStatus) error
	updateFn       func(userID, todoID uint, title, description, links, deadline string) (*models.Todo, error)
	listFn         func(userID uint) ([]models.Todo, error)
}

func (m *mockTodoService) Add(userID uint, title, description, links, deadline string) (*models.Todo, error) {
	if m.addFn != nil {
		return m.addFn(userID, title, description, links, deadline)
	}
	return &models.Todo{}, nil
}

func (m *mockTodoService) UpdateStatus(userID, todoID uint, status models.TodoStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(userID, todoID, status)
	}
	return nil
}

func (m *mockTodoService) Update(userID, todoID uint, title, description, links, deadline string) (*models.Todo, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, todoID, title, description, links, deadline)
	}
	return &models.Todo{}, nil
}

func (m *mockTodoService) List(userID uint) ([]models.Todo, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return nil, nil
}

type mockNotificationService struct {
	emitFn   func(tx *gorm.DB, userID uint, title, redirect string) error
	listFn   func(userID uint) ([]models.Notification, error)
	deleteFn func(userID, notificationID uint) error
}

func (m *mockNotificationService) Emit(tx *gorm.DB, userID uint, title, redirect string) error {
	if m.emitFn != nil {
		return m.emitFn(tx, userID, title, redirect)
	}
	return nil
}

func (m *mockNotificationService) List(userID uint) ([]models.Notification, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return nil, nil
}

func (m *mockNotificationService) Delete(userID, notificationID uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(userID, notificationID)
	}
	return nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectPrincipal(p *middleware.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

func memberPrincipal() *middleware.Principal {
	return &middleware.Principal{ID: 1, Email: "member@test.com", Name: "Member", Role: models.RoleUser}
}

func adminPrincipal() *middleware.Principal {
	return &middleware.Principal{ID: 2, Email: "admin@test.com", Name: "Admin", Role: models.RoleAdmin}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
