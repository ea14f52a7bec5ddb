package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/services"
)

// TodoHandler handles todo-related requests.
type TodoHandler struct {
	todoService services.TodoServicer
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService services.TodoServicer) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// AddTodoRequest represents the payload for creating a todo. Deadline
// is an ISO-8601 instant; a trailing UTC marker is accepted.
type AddTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Links       string `json:"links" binding:"omitempty"`
	Deadline    string `json:"deadline" binding:"required"`
}

// UpdateTodoRequest represents the payload for overwriting a todo.
type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Links       string `json:"links" binding:"omitempty"`
	Deadline    string `json:"deadline" binding:"required"`
}

// UpdateTodoStatusRequest represents the payload for a status change.
type UpdateTodoStatusRequest struct {
	Status string `json:"status" binding:"required,todo_status"`
}

// ListTodos returns the caller's todos
// @Summary     List todos
// @Tags        todos
// @Produce     json
// @Success     200 {array} models.Todo "Todos"
// @Router      /todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	todos, err := h.todoService.List(principal.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

// AddTodo creates a todo and its paired calendar event
// @Summary     Add a todo
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       request body AddTodoRequest true "Todo details"
// @Success     201 {object} models.Todo "Todo created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /todos [post]
func (h *TodoHandler) AddTodo(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	todo, err := h.todoService.Add(principal.ID, req.Title, req.Description, req.Links, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"todo": todo})
}

// UpdateTodo overwrites a todo's fields
// @Summary     Update a todo
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       id path int true "Todo ID"
// @Param       request body UpdateTodoRequest true "Updated todo"
// @Success     200 {object} models.Todo "Updated todo"
// @Failure     404 {object} ErrorResponse "Todo not found"
// @Router      /todos/{id} [put]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	todoID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	todo, err := h.todoService.Update(principal.ID, todoID, req.Title, req.Description, req.Links, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": todo})
}

// UpdateTodoStatus moves a todo between doing, done, and removed.
// Removed todos are deleted and the owner's counter decremented.
// @Summary     Update todo status
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       id path int true "Todo ID"
// @Param       request body UpdateTodoStatusRequest true "New status"
// @Success     200 {object} MessageResponse "Status updated"
// @Failure     404 {object} ErrorResponse "Todo not found"
// @Router      /todos/{id}/status [put]
func (h *TodoHandler) UpdateTodoStatus(c *gin.Context) {
	principal, err := currentPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	todoID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTodoStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.todoService.UpdateStatus(principal.ID, todoID, models.TodoStatus(req.Status)); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo updated"})
}
