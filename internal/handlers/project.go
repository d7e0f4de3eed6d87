package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/internal/dto"
	"github.com/taskflow-dev/taskflow-api/internal/middleware"
	"github.com/taskflow-dev/taskflow-api/internal/response"
	"github.com/taskflow-dev/taskflow-api/internal/services"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List returns all projects.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		response.Internal(c, err)
		return
	}

	dtos := dto.ToProjectDTOs(projects)
	response.List(c, len(dtos), dtos)
}

// Get returns a single project.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.OK(c, "", dto.ToProjectDTO(*project))
}

// Create creates a new project owned by the acting admin.
func (h *ProjectHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Project name is required")
		return
	}

	project, err := h.projectService.Create(actor, services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.Created(c, "Project created successfully", dto.ToProjectDTO(*project))
}

// Update applies a partial update to a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload dto.ProjectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(id, payload)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	response.OK(c, "Project updated successfully", dto.ToProjectDTO(*project))
}

// Delete removes a project and all of its tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondProjectError(c, err)
		return
	}

	response.OK(c, "Project deleted successfully", nil)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidProjectName),
		errors.Is(err, services.ErrInvalidProjectStatus),
		errors.Is(err, services.ErrNoProjectFields):
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, err)
	}
}

// parseIDParam reads a numeric path parameter, answering 400 on failure.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
