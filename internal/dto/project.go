package dto

import (
	"time"

	"github.com/Noam97/mini-project-manager/internal/models"
)

// ProjectDTO represents a project in API responses, tasks included.
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Tasks       []TaskDTO `json:"tasks"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	tasks := make([]TaskDTO, len(project.Tasks))
	for i, task := range project.Tasks {
		tasks[i] = ToTaskDTO(task)
	}

	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		Tasks:       tasks,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
