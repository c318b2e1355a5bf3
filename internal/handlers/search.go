package handlers

import (
	"net/http"
	"strings"

	"issueboard-be/internal/models"
	"issueboard-be/internal/services"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles ticket search within a project.
type SearchHandler struct {
	tickets *services.TicketService
}

func NewSearchHandler(tickets *services.TicketService) *SearchHandler {
	return &SearchHandler{tickets: tickets}
}

// SearchTickets godoc
// @Summary Fuzzy-search a project's tickets by title
// @Description Accent- and case-insensitive fuzzy matching, best matches first.
// @Tags search
// @Produce json
// @Param id path string true "Project ID"
// @Param q query string true "Search query"
// @Success 200 {array} models.TicketResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /projects/{id}/search [get]
func (h *SearchHandler) SearchTickets(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, []models.TicketResponse{})
		return
	}

	results, err := h.tickets.Search(c.Request.Context(), c.Param("id"), query, 20)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if results == nil {
		results = []models.TicketResponse{}
	}
	c.JSON(http.StatusOK, results)
}
