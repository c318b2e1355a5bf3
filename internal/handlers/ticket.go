package handlers

import (
	"net/http"

	"issueboard-be/internal/models"
	"issueboard-be/internal/services"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles ticket endpoints.
type TicketHandler struct {
	tickets *services.TicketService
}

func NewTicketHandler(tickets *services.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// ListByProject godoc
// @Summary List a project's tickets
// @Description Ordered by column position, then ticket position.
// @Tags tickets
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} models.TicketResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /projects/{id}/tickets [get]
func (h *TicketHandler) ListByProject(c *gin.Context) {
	tickets, err := h.tickets.FindByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// Get godoc
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} models.TicketResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.tickets.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Create godoc
// @Summary Create a ticket at the end of its column
// @Tags tickets
// @Accept json
// @Produce json
// @Param payload body models.TicketCreateRequest true "Ticket data"
// @Success 201 {object} models.TicketResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var req models.TicketCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.tickets.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// Update godoc
// @Summary Update a ticket's fields
// @Description Full-document replacement with per-field presence semantics; changing the column here swaps the reference without repositioning (use move).
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param payload body models.TicketUpdateRequest true "Update data"
// @Success 200 {object} models.TicketResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) Update(c *gin.Context) {
	var req models.TicketUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.tickets.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Move godoc
// @Summary Move a ticket to a column position
// @Description Shifts tickets at or after the target position up by one, then relocates the ticket.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param payload body models.TicketMoveRequest true "Target column and position"
// @Success 200 {object} models.TicketResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tickets/{id}/move [patch]
func (h *TicketHandler) Move(c *gin.Context) {
	var req models.TicketMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.tickets.Move(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Delete godoc
// @Summary Delete a ticket and its comments
// @Tags tickets
// @Param id path string true "Ticket ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c *gin.Context) {
	if err := h.tickets.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
