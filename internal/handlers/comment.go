package handlers

import (
	"net/http"

	"issueboard-be/internal/models"
	"issueboard-be/internal/services"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles the comments nested under tickets.
type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListByTicket godoc
// @Summary List a ticket's comments
// @Description Ordered by creation time ascending.
// @Tags comments
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {array} models.CommentResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /tickets/{id}/comments [get]
func (h *CommentHandler) ListByTicket(c *gin.Context) {
	comments, err := h.comments.FindByTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create godoc
// @Summary Add a comment to a ticket
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param payload body models.CommentCreateRequest true "Comment data"
// @Success 201 {object} models.CommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tickets/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req models.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Update godoc
// @Summary Update a comment's content
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param payload body models.CommentUpdateRequest true "Update data"
// @Success 200 {object} models.CommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	var req models.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.comments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
