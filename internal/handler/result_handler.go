package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/service"
)

// ResultHandler handles placement recording and the public results views.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// RecordResultRequest is the admin payload for recording a placement.
// Points, when present, overrides the standard points table.
type RecordResultRequest struct {
	EventID         uint   `json:"event_id" binding:"required"`
	TeamID          uint   `json:"team_id" binding:"required"`
	Position        string `json:"position" binding:"required,oneof=1st 2nd 3rd participation"`
	ParticipantName string `json:"participant_name" binding:"omitempty,max=150"`
	Points          *int   `json:"points" binding:"omitempty,min=0"`
}

// Record records a placement and updates standings
// POST /api/admin/results
func (h *ResultHandler) Record(c *gin.Context) {
	var req RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.Record(service.RecordResultInput{
		EventID:         req.EventID,
		TeamID:          req.TeamID,
		Position:        req.Position,
		ParticipantName: req.ParticipantName,
		ExplicitPoints:  req.Points,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Delete removes a placement and reverses its standings contribution
// DELETE /api/admin/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
	if err := h.resultService.Delete(uintParam(c, "result_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Result deleted"})
}

// ListByEvent returns the placements recorded for an event
// GET /api/events/:id/results
func (h *ResultHandler) ListByEvent(c *gin.Context) {
	results, err := h.resultService.ListByEvent(uintParam(c, "event_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": results})
}
