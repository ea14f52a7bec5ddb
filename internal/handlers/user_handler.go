package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/services"
)

// UserHandler handles admin user management and the team view.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the payload for creating a team member.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest represents the payload for editing a team member.
// NewPassword is optional; when empty the stored hash is untouched.
type UpdateUserRequest struct {
	Email       string `json:"email" binding:"required,email,max=50"`
	Name        string `json:"name" binding:"required,max=20"`
	Role        string `json:"role" binding:"required"`
	NewPassword string `json:"new_password" binding:"omitempty,min=8,max=128"`
}

// CreateUser handles admin creation of a team member
// @Summary     Create a user
// @Description Create a new team member with a generated display name
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} UserResponse "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already taken"
// @Router      /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.Email, req.Password, models.RoleName(req.Role))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// UpdateUser handles admin edits of a team member
// @Summary     Update a user
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       id path int true "User ID"
// @Param       request body UpdateUserRequest true "Updated user details"
// @Success     200 {object} UserResponse "User updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     409 {object} ErrorResponse "Email already taken"
// @Router      /admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	targetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(targetID, req.Email, req.Name, models.RoleName(req.Role), req.NewPassword)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// DeleteUser handles admin removal of a team member. Admins cannot
// delete their own account.
// @Summary     Delete a user
// @Tags        admin
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} MessageResponse "User deleted"
// @Failure     400 {object} ErrorResponse "Self-deletion"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	targetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.DeleteUser(principal.ID, targetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetTeam returns all members grouped into admins, managers, and others.
// @Summary     Team overview
// @Tags        team
// @Produce     json
// @Success     200 {object} services.TeamOverview "Grouped members"
// @Router      /team [get]
func (h *UserHandler) GetTeam(c *gin.Context) {
	overview, err := h.userService.TeamOverview()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": overview})
}
