package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/service"
)

// ScoreHandler handles admin review of judge scores.
type ScoreHandler struct {
	scoreService *service.ScoreService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// ListPending returns scores awaiting review
// GET /api/admin/scores/pending
func (h *ScoreHandler) ListPending(c *gin.Context) {
	limit, offset := pagination(c)
	scores, total, err := h.scoreService.ListPending(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": scores, "total": total})
}

// ListByEvent returns all scores submitted for an event
// GET /api/admin/events/:id/scores
func (h *ScoreHandler) ListByEvent(c *gin.Context) {
	scores, err := h.scoreService.ListByEvent(uintParam(c, "event_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": scores})
}

// Approve marks a pending score approved
// POST /api/admin/scores/:id/approve
func (h *ScoreHandler) Approve(c *gin.Context) {
	if err := h.scoreService.Approve(uintParam(c, "score_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Score approved"})
}

// Reject marks a pending score rejected
// POST /api/admin/scores/:id/reject
func (h *ScoreHandler) Reject(c *gin.Context) {
	if err := h.scoreService.Reject(uintParam(c, "score_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Score rejected"})
}
