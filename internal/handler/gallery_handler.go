package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/service"
)

// GalleryHandler handles the public fest photo gallery.
type GalleryHandler struct {
	galleryService *service.GalleryService
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// AddImageRequest registers an uploaded image.
type AddImageRequest struct {
	Caption string `json:"caption" binding:"omitempty,max=300"`
	URL     string `json:"url" binding:"required,url"`
	EventID *uint  `json:"event_id"`
}

// List returns gallery images newest first
// GET /api/gallery
func (h *GalleryHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	images, total, err := h.galleryService.List(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": images, "total": total})
}

// Add registers an image
// POST /api/admin/gallery
func (h *GalleryHandler) Add(c *gin.Context) {
	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.galleryService.Add(req.Caption, req.URL, req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

// Delete removes an image
// DELETE /api/admin/gallery/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.galleryService.Delete(uintParam(c, "image_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
