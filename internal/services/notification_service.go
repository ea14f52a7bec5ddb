package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
)

// notificationService appends and serves per-user notifications.
type notificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a new NotificationServicer.
func NewNotificationService(db *gorm.DB) NotificationServicer {
	return &notificationService{db: db}
}

// Emit appends a notification row on the caller's transaction handle.
// No dedup, no batching; delivery is whatever the enclosing transaction
// commits.
func (s *notificationService) Emit(tx *gorm.DB, userID uint, title, redirect string) error {
	notification := &models.Notification{
		UserID:   userID,
		Title:    title,
		Redirect: redirect,
	}
	if err := tx.Create(notification).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// List returns all notifications for the recipient.
func (s *notificationService) List(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", userID).Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return notifications, nil
}

// Delete removes a notification owned by the recipient.
func (s *notificationService) Delete(userID, notificationID uint) error {
	var notification models.Notification
	if err := s.db.Where("id = ? AND user_id = ?", notificationID, userID).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&notification).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
