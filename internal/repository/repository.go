package repository

import (
	"github.com/Noam97/mini-project-manager/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByNormalizedUsername finds a user by the case-folded username
	FindByNormalizedUsername(normalized string) (*models.User, error)
}

// ProjectRepository defines the interface for project data access.
// Every lookup is scoped to the owning user; a project owned by someone
// else is indistinguishable from a missing one.
type ProjectRepository interface {
	// ListByOwner returns the user's projects with tasks eagerly loaded,
	// most recently created first
	ListByOwner(userID uint64) ([]models.Project, error)

	// FindOwned finds a project by id and owner in a single predicate
	FindOwned(userID, projectID uint64, withTasks bool) (*models.Project, error)

	// Create persists a new project
	Create(project *models.Project) error

	// Update persists changes to a project
	Update(project *models.Project) error

	// Delete removes a project and all of its tasks atomically
	Delete(projectID uint64) error
}

// TaskRepository defines the interface for task data access. Ownership is
// resolved transitively through the parent project.
type TaskRepository interface {
	// Create persists a new task
	Create(task *models.Task) error

	// FindOwned resolves a task together with its parent project and
	// requires the project's owner to match userID
	FindOwned(userID, taskID uint64) (*models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete removes a task
	Delete(taskID uint64) error
}
