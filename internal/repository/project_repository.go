package repository

import (
	"gorm.io/gorm"

	"github.com/Noam97/mini-project-manager/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// ListByOwner returns the user's projects, newest first, tasks included
func (r *GormProjectRepository) ListByOwner(userID uint64) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("Tasks").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FindOwned finds a project by id and owner in a single predicate
func (r *GormProjectRepository) FindOwned(userID, projectID uint64, withTasks bool) (*models.Project, error) {
	var project models.Project
	query := r.db
	if withTasks {
		query = query.Preload("Tasks")
	}

	err := query.
		Where("id = ? AND user_id = ?", projectID, userID).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create persists a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update persists changes to a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes the project's tasks and then the project itself inside a
// single transaction, so a crash cannot leave orphaned tasks behind.
func (r *GormProjectRepository) Delete(projectID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, projectID).Error
	})
}
