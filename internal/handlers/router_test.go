package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Noam97/mini-project-manager/internal/auth"
	"github.com/Noam97/mini-project-manager/internal/database"
	"github.com/Noam97/mini-project-manager/internal/middleware"
	"github.com/Noam97/mini-project-manager/internal/models"
	"github.com/Noam97/mini-project-manager/internal/repository"
	"github.com/Noam97/mini-project-manager/internal/services"
)

// testEnv wires the full router against an in-memory SQLite database.
type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	tokens      *auth.TokenIssuer
	authService *services.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}))

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	authHandler := NewAuthHandler(authService)
	projectHandler := NewProjectHandler(projectService)
	taskHandler := NewTaskHandler(taskService)

	router := gin.New()
	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)

	projects := api.Group("/projects")
	projects.Use(middleware.RequireAuth(tokens))
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.POST("/:id/tasks", taskHandler.Create)

	tasks := api.Group("/tasks")
	tasks.Use(middleware.RequireAuth(tokens))
	tasks.PUT("/:taskId", taskHandler.Update)
	tasks.DELETE("/:taskId", taskHandler.Delete)

	return &testEnv{
		db:          db,
		router:      router,
		tokens:      tokens,
		authService: authService,
	}
}

// register creates a user through the service and returns a bearer token.
func (e *testEnv) register(t *testing.T, username, password string) string {
	t.Helper()
	token, err := e.authService.Register(services.RegisterInput{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return token
}

// userID extracts the user id embedded in a token.
func (e *testEnv) userID(t *testing.T, token string) uint64 {
	t.Helper()
	claims, err := e.tokens.Verify(token)
	require.NoError(t, err)
	return claims.UserID
}

// request performs an HTTP request against the test router.
func (e *testEnv) request(t *testing.T, method, url string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (e *testEnv) createProjectRow(t *testing.T, userID uint64, title string, createdAt time.Time) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:     title,
		CreatedAt: createdAt,
		UserID:    userID,
	}
	require.NoError(t, e.db.Create(project).Error)
	return project
}

func (e *testEnv) createTaskRow(t *testing.T, projectID uint64, title string, dueDate *time.Time) *models.Task {
	t.Helper()
	task := &models.Task{
		Title:     title,
		DueDate:   dueDate,
		ProjectID: projectID,
	}
	require.NoError(t, e.db.Create(task).Error)
	return task
}
