package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/multichannel-ai/agentrouter/pkg/services"
)

// writeServiceError maps service-layer errors to HTTP error responses:
// 404 for not-found outcomes, 409 for duplicate ids and primary
// conflicts, 422 for other validation failures.
func writeServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		status := http.StatusUnprocessableEntity
		if validErr.Reason == services.ReasonConflictingPrimary {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error":  validErr.Message,
			"field":  validErr.Field,
			"reason": validErr.Reason,
		})
		return
	}

	var routeErr *services.RouteNotFoundError
	if errors.As(err, &routeErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  routeErr.Error(),
			"reason": routeErr.Reason,
		})
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "resource already exists",
			"reason": services.ReasonDuplicateID,
		})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
