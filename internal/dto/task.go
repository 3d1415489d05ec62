package dto

import (
	"time"

	"github.com/Noam97/mini-project-manager/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
	ProjectID   uint64     `json:"project_id"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		DueDate:     task.DueDate,
		IsCompleted: task.IsCompleted,
		ProjectID:   task.ProjectID,
	}
}
