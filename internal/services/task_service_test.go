package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Noam97/mini-project-manager/internal/models"
	"github.com/Noam97/mini-project-manager/internal/repository"
)

type serviceTestEnv struct {
	db       *gorm.DB
	tasks    *TaskService
	projects *ProjectService
}

func setupServiceEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return serviceTestEnv{
		db:       db,
		tasks:    NewTaskService(taskRepo, projectRepo),
		projects: NewProjectService(projectRepo),
	}
}

func (e serviceTestEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:           username,
		UsernameNormalized: username,
		PasswordHash:       []byte("hash"),
		PasswordSalt:       []byte("salt"),
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e serviceTestEnv) createProject(t *testing.T, userID uint64, title string) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:     title,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

func TestTaskService_Create(t *testing.T) {
	env := setupServiceEnv(t)
	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.ID, "Trip")

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	task, err := env.tasks.Create(owner.ID, project.ID, CreateTaskInput{
		Title:   "  Book flight  ",
		DueDate: &due,
	})
	require.NoError(t, err)
	require.Equal(t, "Book flight", task.Title)
	require.False(t, task.IsCompleted)
	require.Equal(t, project.ID, task.ProjectID)
	require.NotNil(t, task.DueDate)
	require.True(t, due.Equal(*task.DueDate))
}

func TestTaskService_Create_ForeignProject(t *testing.T) {
	env := setupServiceEnv(t)
	owner := env.createUser(t, "owner")
	other := env.createUser(t, "other")
	project := env.createProject(t, owner.ID, "Trip")

	_, err := env.tasks.Create(other.ID, project.ID, CreateTaskInput{Title: "sneak"})
	require.ErrorIs(t, err, ErrProjectNotFound)

	_, err = env.tasks.Create(owner.ID, project.ID+999, CreateTaskInput{Title: "missing"})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestTaskService_Update_PartialPatch(t *testing.T) {
	env := setupServiceEnv(t)
	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.ID, "Trip")

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	task, err := env.tasks.Create(owner.ID, project.ID, CreateTaskInput{Title: "Book flight", DueDate: &due})
	require.NoError(t, err)

	// Title-only patch leaves the due date untouched.
	title := "Book hotel"
	updated, err := env.tasks.Update(owner.ID, task.ID, UpdateTaskInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Book hotel", updated.Title)
	require.NotNil(t, updated.DueDate)
	require.True(t, due.Equal(*updated.DueDate))
	require.False(t, updated.IsCompleted)

	// Completion-only patch leaves title and due date untouched.
	done := true
	updated, err = env.tasks.Update(owner.ID, task.ID, UpdateTaskInput{IsCompleted: &done})
	require.NoError(t, err)
	require.True(t, updated.IsCompleted)
	require.Equal(t, "Book hotel", updated.Title)
	require.NotNil(t, updated.DueDate)

	// An absent due date never clears the stored one.
	updated, err = env.tasks.Update(owner.ID, task.ID, UpdateTaskInput{})
	require.NoError(t, err)
	require.NotNil(t, updated.DueDate)
}

func TestTaskService_Update_EmptyTitle(t *testing.T) {
	env := setupServiceEnv(t)
	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.ID, "Trip")

	task, err := env.tasks.Create(owner.ID, project.ID, CreateTaskInput{Title: "Book flight"})
	require.NoError(t, err)

	empty := "   "
	_, err = env.tasks.Update(owner.ID, task.ID, UpdateTaskInput{Title: &empty})
	require.ErrorIs(t, err, ErrTitleEmpty)
}

func TestTaskService_Update_TwoHopOwnership(t *testing.T) {
	env := setupServiceEnv(t)
	owner := env.createUser(t, "owner")
	other := env.createUser(t, "other")
	project := env.createProject(t, owner.ID, "Trip")

	task, err := env.tasks.Create(owner.ID, project.ID, CreateTaskInput{Title: "Book flight"})
	require.NoError(t, err)

	done := true
	_, err = env.tasks.Update(other.ID, task.ID, UpdateTaskInput{IsCompleted: &done})
	require.ErrorIs(t, err, ErrTaskNotFound)

	require.ErrorIs(t, env.tasks.Delete(other.ID, task.ID), ErrTaskNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	env := setupServiceEnv(t)
	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.ID, "Trip")

	task, err := env.tasks.Create(owner.ID, project.ID, CreateTaskInput{Title: "Book flight"})
	require.NoError(t, err)

	require.NoError(t, env.tasks.Delete(owner.ID, task.ID))

	_, err = env.tasks.Update(owner.ID, task.ID, UpdateTaskInput{})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestProjectService_Delete_CascadesToTasks(t *testing.T) {
	env := setupServiceEnv(t)
	owner := env.createUser(t, "owner")
	project := env.createProject(t, owner.ID, "Trip")

	task, err := env.tasks.Create(owner.ID, project.ID, CreateTaskInput{Title: "Book flight"})
	require.NoError(t, err)

	require.NoError(t, env.projects.Delete(owner.ID, project.ID))

	_, err = env.projects.GetByID(owner.ID, project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)

	_, err = env.tasks.Update(owner.ID, task.ID, UpdateTaskInput{})
	require.ErrorIs(t, err, ErrTaskNotFound)

	var count int64
	require.NoError(t, env.db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestProjectService_Create_NormalizesDescription(t *testing.T) {
	env := setupServiceEnv(t)
	owner := env.createUser(t, "owner")

	blank := "   "
	project, err := env.projects.Create(owner.ID, CreateProjectInput{Title: "  Trip  ", Description: &blank})
	require.NoError(t, err)
	require.Equal(t, "Trip", project.Title)
	require.Nil(t, project.Description)
	require.NotNil(t, project.Tasks)
	require.Empty(t, project.Tasks)

	desc := "  Japan  "
	project, err = env.projects.Create(owner.ID, CreateProjectInput{Title: "Trip 2", Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, project.Description)
	require.Equal(t, "Japan", *project.Description)
}

func TestProjectService_List_OwnershipScoped(t *testing.T) {
	env := setupServiceEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	mine := env.createProject(t, alice.ID, "Mine")
	env.createProject(t, bob.ID, "Theirs")

	projects, err := env.projects.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, mine.ID, projects[0].ID)

	_, err = env.projects.GetByID(bob.ID, mine.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)
}
