package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/services"
)

// RoleHandler handles role management requests.
type RoleHandler struct {
	roleService services.RoleServicer
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(roleService services.RoleServicer) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// AddRoleRequest represents the payload for creating a role.
type AddRoleRequest struct {
	Name string `json:"name" binding:"required,max=30"`
}

// AddRole creates a custom role
// @Summary     Create a role
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body AddRoleRequest true "Role name"
// @Success     201 {object} MessageResponse "Role created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Role already exists"
// @Router      /admin/roles [post]
func (h *RoleHandler) AddRole(c *gin.Context) {
	var req AddRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	role, err := h.roleService.AddRole(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"role": role, "message": "New role created!"})
}

// RemoveRole deletes a non-seed role, reassigning its members to "user".
// Deleting a seed or unknown role is a silent no-op.
// @Summary     Delete a role
// @Tags        admin
// @Produce     json
// @Param       id path int true "Role ID"
// @Success     200 {object} MessageResponse "Role removed"
// @Router      /admin/roles/{id} [delete]
func (h *RoleHandler) RemoveRole(c *gin.Context) {
	roleID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.roleService.RemoveRole(roleID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role removed"})
}

// ListRoles returns all roles.
// @Summary     List roles
// @Tags        admin
// @Produce     json
// @Success     200 {array} models.Role "All roles"
// @Router      /admin/roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleService.ListRoles()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}
