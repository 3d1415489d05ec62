package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Noam97/mini-project-manager/internal/models"
	"github.com/Noam97/mini-project-manager/internal/repository"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrTitleEmpty   = errors.New("title cannot be empty")
)

// TaskService handles task business logic. Ownership is always resolved
// through the parent project: a task under a project the user does not own
// is reported as not found.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title   string
	DueDate *time.Time
}

// UpdateTaskInput represents a partial task update. Absent fields are left
// unchanged. A due date can only be set, never cleared: the payload does not
// distinguish a null due date from an absent one, so only non-null values
// trigger an update.
type UpdateTaskInput struct {
	Title       *string
	DueDate     *time.Time
	IsCompleted *bool
}

// Create adds a task under one of the user's projects
func (s *TaskService) Create(userID, projectID uint64, input CreateTaskInput) (*models.Task, error) {
	project, err := s.projectRepo.FindOwned(userID, projectID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleEmpty
	}

	task := &models.Task{
		Title:       title,
		DueDate:     input.DueDate,
		IsCompleted: false,
		ProjectID:   project.ID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update applies a partial update to a task
func (s *TaskService) Update(userID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.resolveOwnedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = title
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.IsCompleted != nil {
		task.IsCompleted = *input.IsCompleted
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes a task
func (s *TaskService) Delete(userID, taskID uint64) error {
	task, err := s.resolveOwnedTask(userID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// resolveOwnedTask is the shared two-hop lookup used by update and delete.
func (s *TaskService) resolveOwnedTask(userID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}
