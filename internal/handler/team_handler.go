package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/service"
)

// TeamHandler handles team CRUD for the admin panel and the public roster.
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// TeamRequest is the create/rename payload.
type TeamRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// List returns all teams
// GET /api/teams
func (h *TeamHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	teams, total, err := h.teamService.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": teams, "total": total})
}

// Get returns one team
// GET /api/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	team, err := h.teamService.GetByID(uintParam(c, "team_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Create registers a new team
// POST /api/admin/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// Rename changes a team's name
// PUT /api/admin/teams/:id
func (h *TeamHandler) Rename(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Rename(uintParam(c, "team_id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Delete removes a team
// DELETE /api/admin/teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.teamService.Delete(uintParam(c, "team_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}
