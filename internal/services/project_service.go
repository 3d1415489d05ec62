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

var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project business logic. Every operation is scoped
// to the calling user; projects owned by other users surface as not found.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Title       string
	Description *string
}

// UpdateProjectInput represents a partial project edit
type UpdateProjectInput struct {
	Title       *string
	Description *string
}

// List returns the user's projects with their tasks, newest first
func (s *ProjectService) List(userID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetByID returns a single project with its tasks
func (s *ProjectService) GetByID(userID, projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindOwned(userID, projectID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Create persists a new project owned by the user
func (s *ProjectService) Create(userID uint64, input CreateProjectInput) (*models.Project, error) {
	project := &models.Project{
		Title:       strings.TrimSpace(input.Title),
		Description: normalizeDescription(input.Description),
		CreatedAt:   time.Now().UTC(),
		UserID:      userID,
		Tasks:       []models.Task{},
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Update edits a project's title and description
func (s *ProjectService) Update(userID, projectID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindOwned(userID, projectID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Title != nil {
		project.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		project.Description = normalizeDescription(input.Description)
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Delete removes a project together with all of its tasks
func (s *ProjectService) Delete(userID, projectID uint64) error {
	project, err := s.projectRepo.FindOwned(userID, projectID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// normalizeDescription trims the description and maps blank values to nil
func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
