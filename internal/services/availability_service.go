package services

import (
	"gorm.io/gorm"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
)

// availabilityService handles availability scheduling.
type availabilityService struct {
	db *gorm.DB
}

// NewAvailabilityService creates a new AvailabilityServicer.
func NewAvailabilityService(db *gorm.DB) AvailabilityServicer {
	return &availabilityService{db: db}
}

// Replace swaps the caller's whole availability set: delete all rows,
// insert one per entry, truncated to day granularity. Delete and insert
// run in one transaction so a reader never observes a partial set.
func (s *availabilityService) Replace(userID uint, starts []string) ([]models.Availability, error) {
	entries := make([]models.Availability, 0, len(starts))
	for _, start := range starts {
		instant, err := parseISOInstant(start)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.Availability{
			UserID:    userID,
			StartDate: truncateToDate(instant),
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Availability{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := tx.Create(&entries).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// List returns all availability entries for the given user.
func (s *availabilityService) List(userID uint) ([]models.Availability, error) {
	var entries []models.Availability
	if err := s.db.Where("user_id = ?", userID).Order("start_date").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}
