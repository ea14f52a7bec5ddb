package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/services"
)

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	userService services.UserServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(userService services.UserServicer) *DashboardHandler {
	return &DashboardHandler{userService: userService}
}

// GetDashboard returns team-wide counts for the admin dashboard
// @Summary     Admin dashboard
// @Tags        admin
// @Produce     json
// @Success     200 {object} services.DashboardSummary "Aggregate counts"
// @Router      /admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.userService.DashboardSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": summary})
}
