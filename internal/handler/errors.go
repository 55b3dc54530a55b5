package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// respondError maps service errors onto HTTP statuses. Unrecognized errors
// become 500 with a generic body so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, repository.ErrDuplicateTeamName),
		errors.Is(err, repository.ErrDuplicateScore),
		errors.Is(err, repository.ErrDuplicateUser):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("[Handler] Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// uintParam reads a uint previously stored by the param middleware.
func uintParam(c *gin.Context, key string) uint {
	value, _ := c.Get(key)
	id, _ := value.(uint)
	return id
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// pagination reads limit/offset query parameters with sane bounds.
func pagination(c *gin.Context) (limit, offset int) {
	limit = queryInt(c, "limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset = queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
