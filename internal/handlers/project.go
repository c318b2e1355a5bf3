package handlers

import (
	"net/http"

	"issueboard-be/internal/models"
	"issueboard-be/internal/services"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List godoc
// @Summary List all projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.ProjectResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get godoc
// @Summary Get a project with its columns
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.ProjectResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projects.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetByKey godoc
// @Summary Get a project by its key
// @Tags projects
// @Produce json
// @Param key path string true "Project key"
// @Success 200 {object} models.ProjectResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /projects/key/{key} [get]
func (h *ProjectHandler) GetByKey(c *gin.Context) {
	project, err := h.projects.FindByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create godoc
// @Summary Create a project with its default columns
// @Tags projects
// @Accept json
// @Produce json
// @Param payload body models.ProjectCreateRequest true "Project data"
// @Success 201 {object} models.ProjectResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary Update a project's name and description
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param payload body models.ProjectUpdateRequest true "Update data"
// @Success 200 {object} models.ProjectResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	var req models.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Description Deletes the project only; its columns and tickets are left in place.
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
