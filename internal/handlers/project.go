package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Noam97/mini-project-manager/internal/constants"
	"github.com/Noam97/mini-project-manager/internal/dto"
	apierrors "github.com/Noam97/mini-project-manager/internal/errors"
	"github.com/Noam97/mini-project-manager/internal/middleware"
	"github.com/Noam97/mini-project-manager/internal/services"
)

// ProjectHandler coordinates project CRUD handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List returns all of the caller's projects, newest first.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projects, err := h.projectService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// Get returns a single project with its tasks.
func (h *ProjectHandler) Get(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(userID, projectID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// Create adds a new project owned by the caller.
func (h *ProjectHandler) Create(c *gin.Context) {
	type CreateProjectRequest struct {
		Title       string  `json:"title" binding:"required,min=3,max=100"`
		Description *string `json:"description" binding:"omitempty,max=500"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, fmt.Sprintf("Title must be %d-%d characters, description at most %d",
			constants.MinTitleLength, constants.MaxTitleLength, constants.MaxDescriptionLength))
		return
	}

	project, err := h.projectService.Create(userID, services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// Update edits a project's title and description.
func (h *ProjectHandler) Update(c *gin.Context) {
	type UpdateProjectRequest struct {
		Title       *string `json:"title" binding:"omitempty,min=3,max=100"`
		Description *string `json:"description" binding:"omitempty,max=500"`
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

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(userID, projectID, services.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// Delete removes a project and all of its tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(userID, projectID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondProjectError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrProjectNotFound) {
		apierrors.NotFound(c, "Project not found")
		return
	}
	apierrors.InternalError(c, "")
}

// parseIDParam reads a numeric path parameter, answering 400 on garbage.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
