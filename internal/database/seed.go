package database

import (
	"fmt"

	"teamboard/internal/logger"
	"teamboard/internal/models"
	"teamboard/internal/random"

	"gorm.io/gorm"
)

// SeedRoles creates the default roles on first boot. The admin and user
// roles are root roles and can never be deleted.
func SeedRoles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Role{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count roles: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []models.RoleName{models.RoleAdmin, models.RoleFounder, models.RoleUser}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range defaults {
			role := models.Role{
				Name:  name,
				Color: random.Color(),
				Icon:  random.Icon(),
				Root:  name.IsSeed(),
			}
			if err := tx.Create(&role).Error; err != nil {
				return fmt.Errorf("failed to seed role %s: %w", name, err)
			}
		}
		logger.Get().Infof("Seeded %d default roles", len(defaults))
		return nil
	})
}
