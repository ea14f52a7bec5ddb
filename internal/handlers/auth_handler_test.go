package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/middleware"
	"teamboard/internal/models"
)

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/logout", handler.Logout)
	return r
}

func TestLogin(t *testing.T) {
	t.Run("valid_admin_lands_on_admin", func(t *testing.T) {
		svc := &mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return &models.User{Email: email, Role: models.RoleAdmin}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"email":"admin@test.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["redirect"] != "/admin" {
			t.Errorf("expected redirect /admin, got %v", result["redirect"])
		}

		cookies := rec.Result().Cookies()
		var found bool
		for _, cookie := range cookies {
			if cookie.Name == middleware.SessionCookie && cookie.Value != "" {
				found = true
				if !cookie.HttpOnly {
					t.Error("session cookie must be HttpOnly")
				}
			}
		}
		if !found {
			t.Error("expected session cookie to be set")
		}
	})

	t.Run("member_lands_on_team", func(t *testing.T) {
		svc := &mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return &models.User{Email: email, Role: models.RoleUser}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"email":"member@test.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["redirect"] != "/team" {
			t.Errorf("expected redirect /team, got %v", result["redirect"])
		}
	})

	t.Run("safe_next_overrides_landing", func(t *testing.T) {
		svc := &mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return &models.User{Email: email, Role: models.RoleUser}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"email":"m@test.com","password":"pw","next":"/invoices"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["redirect"] != "/invoices" {
			t.Errorf("expected redirect /invoices, got %v", result["redirect"])
		}
	})

	t.Run("unsafe_next_rejected_at_binding", func(t *testing.T) {
		svc := &mockUserService{}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"email":"m@test.com","password":"pw","next":"//evil.example"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("unknown_email", func(t *testing.T) {
		svc := &mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"email":"ghost@test.com","password":"pw"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		// Unknown user and wrong password are indistinguishable.
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("wrong_password", func(t *testing.T) {
		svc := &mockUserService{
			verifyPasswordFn: func(user *models.User, password string) bool { return false },
		}
		r := setupAuthRouter(NewAuthHandler(svc))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"email":"m@test.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("missing_fields", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, http.MethodPost, "/auth/login", `{"email":"m@test.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestLogout(t *testing.T) {
	r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

	rec := doRequest(r, http.MethodPost, "/auth/logout", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected session cookie cleared")
	}
}

func TestLandingRoute(t *testing.T) {
	cases := []struct {
		role models.RoleName
		next string
		want string
	}{
		{models.RoleAdmin, "", "/admin"},
		{models.RoleFounder, "", "/admin"},
		{models.RoleUser, "", "/team"},
		{models.RoleManager, "", "/team"},
		{models.RoleUser, "/profile", "/profile"},
		{models.RoleAdmin, "//evil.example", "/admin"},
		{models.RoleUser, "https://evil.example", "/team"},
	}
	for _, tc := range cases {
		if got := landingRoute(tc.role, tc.next); got != tc.want {
			t.Errorf("landingRoute(%s, %q) = %q, want %q", tc.role, tc.next, got, tc.want)
		}
	}
	if got := landingRoute(models.RoleUser, strings.Repeat("/a", 3)); got != "/a/a/a" {
		t.Errorf("unexpected landing route %q", got)
	}
}
