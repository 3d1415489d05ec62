package repository

import (
	"gorm.io/gorm"

	"github.com/Noam97/mini-project-manager/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create persists a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindOwned joins the task to its parent project and filters on the
// project's owner. A task under someone else's project comes back as
// gorm.ErrRecordNotFound, exactly like a task that does not exist.
func (r *GormTaskRepository) FindOwned(userID, taskID uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("tasks.id = ? AND projects.user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update persists changes to a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task
func (r *GormTaskRepository) Delete(taskID uint64) error {
	return r.db.Delete(&models.Task{}, taskID).Error
}
