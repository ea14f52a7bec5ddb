package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/services"
)

// EventHandler handles calendar event requests.
type EventHandler struct {
	eventService services.EventServicer
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService services.EventServicer) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// SaveEventsRequest represents a batch of calendar entries. The batch
// is saved atomically; one malformed date rejects all of it.
type SaveEventsRequest struct {
	Events []services.EventInput `json:"events" binding:"required,min=1,dive"`
}

// GetEvents returns a user's calendar. The user_id query selects whose
// calendar to read; it defaults to the caller's own. Any authenticated
// member may read any member's calendar.
// @Summary     List events
// @Tags        events
// @Produce     json
// @Param       user_id query int false "Calendar owner, defaults to caller"
// @Success     200 {array} models.Event "Events"
// @Router      /events [get]
func (h *EventHandler) GetEvents(c *gin.Context) {
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

	events, err := h.eventService.List(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// SaveEvents stores a batch of calendar entries for the caller
// @Summary     Save events
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       request body SaveEventsRequest true "Calendar entries"
// @Success     201 {array} models.Event "Events created"
// @Failure     400 {object} ErrorResponse "Malformed entry"
// @Router      /events [post]
func (h *EventHandler) SaveEvents(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	events, err := h.eventService.SaveEvents(principal.ID, req.Events)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"events": events})
}

// RemoveEvent deletes one of the caller's events. Unknown or foreign
// events answer success without touching anything.
// @Summary     Remove an event
// @Tags        events
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} MessageResponse "Event removed"
// @Router      /events/{id} [delete]
func (h *EventHandler) RemoveEvent(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	eventID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.eventService.Remove(principal.ID, eventID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event removed"})
}
