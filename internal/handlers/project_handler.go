package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/services"
)

// ProjectHandler handles project-related requests.
type ProjectHandler struct {
	projectService services.ProjectServicer
	auditService   services.AuditServicer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService services.ProjectServicer, auditService services.AuditServicer) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, auditService: auditService}
}

// CreateProjectRequest represents the request payload for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateProjectRequest represents the request payload for updating a project
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// GetProjects handles the retrieval of all projects
// @Summary     List projects
// @Tags        projects
// @Produce     json
// @Success     200 {array} models.Project "Projects"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.GetProjects()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject handles the creation of a new project
// @Summary     Create a project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateProjectRequest true "Project details"
// @Success     201 {object} models.Project "Project created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	project, err := h.projectService.CreateProject(req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "create", "project", project.ID, "Created project "+project.Name)
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles updating an existing project
// @Summary     Update a project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                  true "Project ID"
// @Param       request body UpdateProjectRequest true "Fields to update"
// @Success     200 {object} models.Project "Project updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	project, err := h.projectService.UpdateProject(id, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "update", "project", project.ID, "Updated project "+project.Name)
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles deleting a project
// @Summary     Delete a project
// @Description Delete a project; transaction references are cleared
// @Tags        projects
// @Security    BearerAuth
// @Param       id path int true "Project ID"
// @Success     204 "Project deleted"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "delete", "project", id, "Deleted project")
	c.Status(http.StatusNoContent)
}
