package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/sanitize"
)

// eventService handles calendar events.
type eventService struct {
	db *gorm.DB
}

// NewEventService creates a new EventServicer.
func NewEventService(db *gorm.DB) EventServicer {
	return &eventService{db: db}
}

// SaveEvents creates one event per entry for the caller. A malformed
// date anywhere in the batch rejects the whole batch; entries are never
// partially saved.
func (s *eventService) SaveEvents(userID uint, entries []EventInput) ([]models.Event, error) {
	if len(entries) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "no events provided")
	}

	events := make([]models.Event, 0, len(entries))
	for _, entry := range entries {
		start, err := parseISOInstant(entry.Start)
		if err != nil {
			return nil, err
		}
		events = append(events, models.Event{
			UserID:    userID,
			StartDate: start,
			Title:     sanitize.String(entry.Title),
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&events).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Remove deletes an event owned by the caller. A missing or foreign
// event is a silent no-op.
func (s *eventService) Remove(userID, eventID uint) error {
	var event models.Event
	if err := s.db.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&event).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// List returns all events owned by the given user.
func (s *eventService) List(userID uint) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where("user_id = ?", userID).Order("start_date").Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return events, nil
}
