package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/random"
)

// roleService handles role management.
type roleService struct {
	db *gorm.DB
}

// NewRoleService creates a new RoleServicer.
func NewRoleService(db *gorm.DB) RoleServicer {
	return &roleService{db: db}
}

// AddRole creates a custom role with randomized display attributes.
// Names are normalized to trimmed lowercase before the uniqueness check.
func (s *roleService) AddRole(name string) (*models.Role, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide role name.")
	}

	var count int64
	if err := s.db.Model(&models.Role{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateRole
	}

	role := &models.Role{
		Name:  models.RoleName(name),
		Color: random.Color(),
		Icon:  random.Icon(),
		Root:  false,
	}
	if err := s.db.Create(role).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return role, nil
}

// RemoveRole deletes a non-root role. Every user holding the role is
// reassigned to "user" before the role row goes away; a role is never
// deleted while users still reference it. Seed roles and missing roles
// are a silent no-op.
func (s *roleService) RemoveRole(roleID uint) error {
	var role models.Role
	if err := s.db.First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if role.Root || role.Name.IsSeed() {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("role = ?", role.Name).
			Update("role", models.RoleUser).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&role).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// ListRoles returns all roles.
func (s *roleService) ListRoles() ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.Order("id").Find(&roles).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return roles, nil
}
