package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/middleware"
	"github.com/mcasfest/fest-api/internal/service"
)

// JudgeHandler handles judge administration and the judge panel.
type JudgeHandler struct {
	judgeService *service.JudgeService
	scoreService *service.ScoreService
}

// NewJudgeHandler creates a new judge handler
func NewJudgeHandler(judgeService *service.JudgeService, scoreService *service.ScoreService) *JudgeHandler {
	return &JudgeHandler{judgeService: judgeService, scoreService: scoreService}
}

// CreateJudgeRequest registers a judge with optional initial assignments.
type CreateJudgeRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	EventIDs []uint `json:"event_ids"`
}

// Create registers a judge account and mails the credentials
// POST /api/admin/judges
func (h *JudgeHandler) Create(c *gin.Context) {
	var req CreateJudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	judge, password, err := h.judgeService.Create(req.Name, req.Email, req.EventIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	// Returned once; the hash is all that survives server-side.
	c.JSON(http.StatusCreated, gin.H{
		"judge":    judge,
		"password": password,
	})
}

// List returns all judges with their assignments
// GET /api/admin/judges
func (h *JudgeHandler) List(c *gin.Context) {
	judges, err := h.judgeService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": judges})
}

// AssignRequest replaces a judge's event assignments.
type AssignRequest struct {
	EventIDs []uint `json:"event_ids" binding:"required"`
}

// Assign overwrites a judge's event assignments
// PUT /api/admin/judges/:id/events
func (h *JudgeHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.judgeService.AssignEvents(uintParam(c, "judge_id"), req.EventIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignments updated"})
}

// Delete removes a judge and its account
// DELETE /api/admin/judges/:id
func (h *JudgeHandler) Delete(c *gin.Context) {
	if err := h.judgeService.Delete(uintParam(c, "judge_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Judge deleted"})
}

// MyEvents returns the events assigned to the authenticated judge
// GET /api/judge/events
func (h *JudgeHandler) MyEvents(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	events, err := h.judgeService.AssignedEvents(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": events})
}

// SubmitScoreRequest is the judge panel scoring payload.
type SubmitScoreRequest struct {
	EventID  uint   `json:"event_id" binding:"required"`
	TeamID   uint   `json:"team_id" binding:"required"`
	Comments string `json:"comments" binding:"omitempty,max=1000"`
	Criteria []struct {
		CriterionID uint `json:"criterion_id" binding:"required"`
		Points      int  `json:"points" binding:"min=0"`
	} `json:"criteria" binding:"required,min=1"`
}

// SubmitScore records a criteria-based score as pending
// POST /api/judge/scores
func (h *JudgeHandler) SubmitScore(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.SubmitScoreInput{
		EventID:  req.EventID,
		TeamID:   req.TeamID,
		Comments: req.Comments,
	}
	for _, cr := range req.Criteria {
		input.Criteria = append(input.Criteria, service.CriterionInput{
			CriterionID: cr.CriterionID,
			Points:      cr.Points,
		})
	}

	score, err := h.scoreService.Submit(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, score)
}
