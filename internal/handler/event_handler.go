package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	"github.com/mcasfest/fest-api/internal/service"
)

// EventHandler handles the public event catalog and its admin mutations.
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventRequest is the create/update payload.
type EventRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=150"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	Category    string    `json:"category" binding:"required,oneof=ART SPORTS"`
	EventType   string    `json:"event_type" binding:"required,oneof=individual group team"`
	Venue       string    `json:"venue" binding:"required,max=150"`
	Date        time.Time `json:"date" binding:"required"`
}

func (r *EventRequest) toInput() service.EventInput {
	return service.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		EventType:   r.EventType,
		Venue:       r.Venue,
		Date:        r.Date,
	}
}

// List returns events, optionally filtered by category and status
// GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	filters := repository.EventFilters{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	events, total, err := h.eventService.List(filters, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": events, "total": total})
}

// Get returns one event
// GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.eventService.GetByID(uintParam(c, "event_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Create adds a new event
// POST /api/admin/events
func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.Create(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Update edits an event
// PUT /api/admin/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.Update(uintParam(c, "event_id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// MarkOngoing flips an event to ongoing
// POST /api/admin/events/:id/start
func (h *EventHandler) MarkOngoing(c *gin.Context) {
	event, err := h.eventService.MarkOngoing(uintParam(c, "event_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete removes an event and reverts its standings contribution
// DELETE /api/admin/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventService.Delete(uintParam(c, "event_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// CriterionRequest is one judging criterion to attach.
type CriterionRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	MaxPoints int    `json:"max_points" binding:"required,min=1,max=100"`
}

// AddCriteria attaches judging criteria to an event
// POST /api/admin/events/:id/criteria
func (h *EventHandler) AddCriteria(c *gin.Context) {
	var req []CriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one criterion is required"})
		return
	}

	eventID := uintParam(c, "event_id")
	criteria := make([]entity.ScoreCriterion, 0, len(req))
	for _, cr := range req {
		criteria = append(criteria, entity.ScoreCriterion{Name: cr.Name, MaxPoints: cr.MaxPoints})
	}

	if err := h.eventService.AddCriteria(eventID, criteria); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Criteria added"})
}

// ListCriteria returns the judging criteria of an event
// GET /api/events/:id/criteria
func (h *EventHandler) ListCriteria(c *gin.Context) {
	criteria, err := h.eventService.ListCriteria(uintParam(c, "event_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": criteria})
}
