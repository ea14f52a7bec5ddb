package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/random"
	"teamboard/internal/sanitize"
)

// todoService handles todo-related business logic.
type todoService struct {
	db *gorm.DB
}

// NewTodoService creates a new TodoServicer.
func NewTodoService(db *gorm.DB) TodoServicer {
	return &todoService{db: db}
}

// Add creates a todo in "doing" state together with a calendar event at
// the deadline, and bumps the owner's todo counter. All three writes
// commit as one unit.
func (s *todoService) Add(userID uint, title, description, links, deadline string) (*models.Todo, error) {
	title = sanitize.String(title)
	description = sanitize.String(description)
	links = strings.TrimSpace(links)

	if title == "" || description == "" || strings.TrimSpace(deadline) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title, description and deadline are required")
	}

	due, err := parseISOInstant(deadline)
	if err != nil {
		return nil, err
	}

	todo := &models.Todo{
		Title:       title,
		Description: description,
		Links:       links,
		Status:      models.TodoStatusDoing,
		Color:       random.Color(),
		Deadline:    due,
		UserID:      userID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(todo).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		event := &models.Event{
			UserID:    userID,
			StartDate: due,
			Title:     fmt.Sprintf("ToDo: %s", title),
		}
		if err := tx.Create(event).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("todo_count", gorm.Expr("todo_count + 1")).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return todo, nil
}

// UpdateStatus sets a todo's status. "removed" deletes the row and
// decrements the owner's counter, flooring at zero.
func (s *todoService) UpdateStatus(userID, todoID uint, status models.TodoStatus) error {
	var todo models.Todo
	if err := s.db.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTodoNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if status == models.TodoStatusRemoved {
		return s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.User{}).
				Where("id = ? AND todo_count > 0", userID).
				UpdateColumn("todo_count", gorm.Expr("todo_count - 1")).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Delete(&todo).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return nil
		})
	}

	if err := s.db.Model(&todo).Update("status", status).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Update overwrites a todo's title, description, links, and deadline.
func (s *todoService) Update(userID, todoID uint, title, description, links, deadline string) (*models.Todo, error) {
	title = sanitize.String(title)
	description = sanitize.String(description)
	links = strings.TrimSpace(links)

	if title == "" || description == "" || strings.TrimSpace(deadline) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title, description and deadline are required")
	}

	due, err := parseISOInstant(deadline)
	if err != nil {
		return nil, err
	}

	var todo models.Todo
	if err := s.db.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	todo.Title = title
	todo.Description = description
	todo.Links = links
	todo.Deadline = due

	if err := s.db.Save(&todo).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &todo, nil
}

// List returns all todos owned by the user.
func (s *todoService) List(userID uint) ([]models.Todo, error) {
	var todos []models.Todo
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&todos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return todos, nil
}
