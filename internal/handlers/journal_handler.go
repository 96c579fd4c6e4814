package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/stwalsh4118/cadastre/internal/errors"
	"github.com/stwalsh4118/cadastre/internal/models"
	"github.com/stwalsh4118/cadastre/internal/repository"
)

// JournalHandler serves the lookup journal.
type JournalHandler struct {
	repo repository.JournalRepository
}

// NewJournalHandler creates a new JournalHandler instance.
func NewJournalHandler(repo repository.JournalRepository) *JournalHandler {
	return &JournalHandler{
		repo: repo,
	}
}

// JournalRequest represents the query parameters for the journal listing.
type JournalRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// JournalResponse wraps journal entries, newest first.
type JournalResponse struct {
	Entries []models.JournalEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// Recent handles GET /api/v1/journal endpoint.
func (h *JournalHandler) Recent(c *gin.Context) {
	var req JournalRequest
	if !bindQuery(c, &req) {
		return
	}

	entries, err := h.repo.Recent(c.Request.Context(), req.Limit)
	if err != nil {
		apierrors.ServiceUnavailable(c, "Lookup journal unavailable", err)
		return
	}

	c.JSON(http.StatusOK, JournalResponse{Entries: entries, Count: len(entries)})
}
