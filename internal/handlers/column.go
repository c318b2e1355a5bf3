package handlers

import (
	"net/http"

	"issueboard-be/internal/models"
	"issueboard-be/internal/services"

	"github.com/gin-gonic/gin"
)

// ColumnHandler handles board column endpoints.
type ColumnHandler struct {
	columns *services.ColumnService
}

func NewColumnHandler(columns *services.ColumnService) *ColumnHandler {
	return &ColumnHandler{columns: columns}
}

// ListByProject godoc
// @Summary Get a project's board
// @Description Columns ordered by position, each with its tickets ordered by position.
// @Tags columns
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.ColumnResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /projects/{id}/columns [get]
func (h *ColumnHandler) ListByProject(c *gin.Context) {
	columns, err := h.columns.FindByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

// Create godoc
// @Summary Create a column at the end of the project's board
// @Tags columns
// @Accept json
// @Produce json
// @Param payload body models.ColumnCreateRequest true "Column data"
// @Success 201 {object} models.ColumnResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	var req models.ColumnCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := h.columns.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, column)
}

// Update godoc
// @Summary Update a column's name and color
// @Tags columns
// @Accept json
// @Produce json
// @Param id path string true "Column ID"
// @Param payload body models.ColumnUpdateRequest true "Update data"
// @Success 200 {object} models.ColumnResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /columns/{id} [put]
func (h *ColumnHandler) Update(c *gin.Context) {
	var req models.ColumnUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := h.columns.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, column)
}

// Delete godoc
// @Summary Delete a column
// @Description Deletes the column only; its tickets keep their column reference and sibling positions are not compacted.
// @Tags columns
// @Param id path string true "Column ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	if err := h.columns.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
