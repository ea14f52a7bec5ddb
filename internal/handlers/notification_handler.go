package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/services"
)

// NotificationHandler handles notification requests.
type NotificationHandler struct {
	notificationService services.NotificationServicer
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService services.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications returns the caller's notifications, newest first.
// @Summary     List notifications
// @Tags        notifications
// @Produce     json
// @Success     200 {array} models.Notification "Notifications"
// @Router      /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	notifications, err := h.notificationService.List(principal.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// DeleteNotification dismisses one of the caller's notifications
// @Summary     Dismiss a notification
// @Tags        notifications
// @Produce     json
// @Param       id path int true "Notification ID"
// @Success     200 {object} MessageResponse "Notification dismissed"
// @Failure     404 {object} ErrorResponse "Notification not found"
// @Router      /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	notificationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.notificationService.Delete(principal.ID, notificationID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification dismissed"})
}
