package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/random"
	"teamboard/internal/sanitize"
)

// Profile field limits, carried over from the original form validation.
const (
	maxNameLen  = 20
	maxBioLen   = 100
	maxEmailLen = 50
)

// userService handles user-related business logic.
type userService struct {
	db            *gorm.DB
	notifications NotificationServicer
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB, notifications NotificationServicer) UserServicer {
	return &userService{db: db, notifications: notifications}
}

// CreateUser registers a new team member with a generated display name
// and emits a welcome notification. User row and notification commit
// together.
func (s *userService) CreateUser(email, password string, role models.RoleName) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" || role == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email, password and role are required")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     random.Username(),
		Role:     role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		title := fmt.Sprintf("Welcome to the team, %s! Check out profile.", user.Name)
		return s.notifications.Emit(tx, user.ID, title, "/profile")
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser edits a user's email, name, and role, and replaces the
// password only when a non-empty new password is supplied.
func (s *userService) UpdateUser(targetID uint, email, name string, role models.RoleName, newPassword string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = sanitize.String(name)

	if email == "" || name == "" || role == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email, name and role are required")
	}

	user, err := s.GetUserByID(targetID)
	if err != nil {
		return nil, err
	}

	// The new email must not belong to a different user.
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, targetID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	user.Email = email
	user.Name = name
	user.Role = role

	if pw := strings.TrimSpace(newPassword); pw != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		user.Password = string(hashed)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// DeleteUser removes a user. Admins cannot delete their own account.
func (s *userService) DeleteUser(actorID, targetID uint) error {
	if actorID == targetID {
		return apperrors.ErrSelfDeleteForbidden
	}

	user, err := s.GetUserByID(targetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// UpdateProfile edits the caller's own name, bio, and email. All three
// are required and length-limited; the bio passes the sanitization
// boundary since it is free text rendered on member cards.
func (s *userService) UpdateProfile(userID uint, name, bio, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	bio = sanitize.String(bio)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || bio == "" || email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please fill out all fields.")
	}
	if len(name) > maxNameLen {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is too long")
	}
	if len(bio) > maxBioLen {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Bio is too long")
	}
	if len(email) > maxEmailLen {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Email is too long")
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Bio = bio
	user.Email = email

	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// SetAvatar records the stored avatar path on the user.
func (s *userService) SetAvatar(userID uint, path string) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("profile_img", path)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ClearAvatar resets the user's avatar to the default image.
func (s *userService) ClearAvatar(userID uint) error {
	return s.SetAvatar(userID, "images/default-profile.jpg")
}

// TeamOverview groups all members into admins, managers, and others.
func (s *userService) TeamOverview() (*TeamOverview, error) {
	var overview TeamOverview

	if err := s.db.Where("role IN ?", []models.RoleName{models.RoleAdmin, models.RoleFounder}).
		Find(&overview.Admins).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Where("role = ?", models.RoleManager).
		Find(&overview.Managers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Where("role NOT IN ?", []models.RoleName{models.RoleAdmin, models.RoleFounder, models.RoleManager}).
		Find(&overview.Others).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &overview, nil
}

// DashboardSummary computes the aggregate numbers for the admin view.
// Read-only joins across users; read committed is enough.
func (s *userService) DashboardSummary() (*DashboardSummary, error) {
	var summary DashboardSummary

	if err := s.db.Model(&models.User{}).Count(&summary.TeamCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.Role{}).Count(&summary.RolesCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.User{}).
		Select("COALESCE(SUM(invoices_count), 0)").
		Scan(&summary.InvoicesTotal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.User{}).
		Select("COALESCE(SUM(todo_count), 0)").
		Scan(&summary.TodosTotal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &summary, nil
}
