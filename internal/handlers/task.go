package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Noam97/mini-project-manager/internal/dto"
	apierrors "github.com/Noam97/mini-project-manager/internal/errors"
	"github.com/Noam97/mini-project-manager/internal/middleware"
	"github.com/Noam97/mini-project-manager/internal/services"
)

// TaskHandler coordinates task CRUD handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create adds a task under one of the caller's projects. A project that
// does not exist and a project owned by someone else both answer 404.
func (h *TaskHandler) Create(c *gin.Context) {
	type CreateTaskRequest struct {
		Title   string    `json:"title" binding:"required"`
		DueDate *dto.Date `json:"due_date"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(userID, projectID, services.CreateTaskInput{
		Title:   req.Title,
		DueDate: dateToTime(req.DueDate),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// Update applies a partial update to a task. Absent fields stay unchanged;
// a null due date is treated as absent, so this endpoint cannot clear one.
func (h *TaskHandler) Update(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title       *string   `json:"title"`
		DueDate     *dto.Date `json:"due_date"`
		IsCompleted *bool     `json:"is_completed"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(userID, taskID, services.UpdateTaskInput{
		Title:       req.Title,
		DueDate:     dateToTime(req.DueDate),
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.Delete(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, "Title cannot be empty")
	default:
		apierrors.InternalError(c, "")
	}
}

func dateToTime(d *dto.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
