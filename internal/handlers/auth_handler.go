package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/middleware"
	"teamboard/internal/models"
	"teamboard/internal/services"
	"teamboard/internal/validator"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// LoginRequest represents the login request payload. Next is an
// optional single-use redirect target; only same-origin relative paths
// pass validation.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Next     string `json:"next" binding:"omitempty,safe_path"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID    uint            `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  models.RoleName `json:"role"`
}

// LoginResponse represents the login response with the landing route.
type LoginResponse struct {
	User     UserResponse `json:"user"`
	Redirect string       `json:"redirect"`
}

// Login handles user login
// @Summary     Log in
// @Description Authenticate with email and password; sets the session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} LoginResponse "Session established"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.GetUserByEmail(req.Email)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	if !h.userService.VerifyPassword(user, req.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateSessionToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	middleware.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
		"redirect": landingRoute(user.Role, req.Next),
	})
}

// Logout tears down the session. Always succeeds, even without one.
// @Summary     Log out
// @Tags        auth
// @Produce     json
// @Success     200 {object} MessageResponse "Session cleared"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// landingRoute picks where the client should go after login: a
// validated next target if one was supplied, otherwise the role's
// default view.
func landingRoute(role models.RoleName, next string) string {
	if next != "" && validator.IsSafePath(next) {
		return next
	}
	if role.IsAdmin() {
		return "/admin"
	}
	return "/team"
}
