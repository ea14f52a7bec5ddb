package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/services"
)

// AvailabilityHandler handles availability scheduling requests.
type AvailabilityHandler struct {
	availabilityService services.AvailabilityServicer
}

// NewAvailabilityHandler creates a new AvailabilityHandler
func NewAvailabilityHandler(availabilityService services.AvailabilityServicer) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// ReplaceAvailabilityRequest represents a full replacement of the
// caller's available days. Each entry is an ISO-8601 date or instant;
// instants are truncated to their day.
type ReplaceAvailabilityRequest struct {
	Days []string `json:"days" binding:"required"`
}

// GetAvailability returns a user's available days. The user_id query
// selects whose schedule to read; it defaults to the caller's own.
// @Summary     List availability
// @Tags        availability
// @Produce     json
// @Param       user_id query int false "Schedule owner, defaults to caller"
// @Success     200 {array} models.Availability "Available days"
// @Router      /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ownerID := principal.ID
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := parseQueryID(raw, "user_id")
		if err != nil {
			respondWithError(c, err)
			return
		}
		ownerID = parsed
	}

	entries, err := h.availabilityService.List(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": entries})
}

// ReplaceAvailability swaps the caller's schedule for the submitted
// days. An empty list clears the schedule.
// @Summary     Replace availability
// @Tags        availability
// @Accept      json
// @Produce     json
// @Param       request body ReplaceAvailabilityRequest true "Available days"
// @Success     200 {array} models.Availability "Stored days"
// @Failure     400 {object} ErrorResponse "Malformed day"
// @Router      /availability [put]
func (h *AvailabilityHandler) ReplaceAvailability(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entries, err := h.availabilityService.Replace(principal.ID, req.Days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": entries})
}
