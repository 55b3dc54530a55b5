package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/mcasfest/fest-api/internal/service"
)

// LeaderboardHandler serves the public standings and the admin export.
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Get returns the current standings
// GET /api/leaderboard
func (h *LeaderboardHandler) Get(c *gin.Context) {
	entries, err := h.leaderboardService.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

// Export streams the standings as an xlsx file
// GET /api/admin/leaderboard/export
func (h *LeaderboardHandler) Export(c *gin.Context) {
	entries, err := h.leaderboardService.Get()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("standings_%s", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Standings"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[LeaderboardHandler] Failed to create stream writer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Rank", "Team", "Total Points", "Gold", "Silver", "Bronze"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[LeaderboardHandler] Failed to write headers: %v", err)
	}

	for i, entry := range entries {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			entry.Rank,
			entry.Name,
			entry.TotalPoints,
			entry.Gold,
			entry.Silver,
			entry.Bronze,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[LeaderboardHandler] Failed to write row %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[LeaderboardHandler] Failed to flush stream writer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Excel file"})
		return
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[LeaderboardHandler] Failed to stream Excel file: %v", err)
	}
}
