package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/multichannel-ai/agentrouter/pkg/database"
)

// healthHandler handles GET /api/v1/health.
// Checks only this service's own database; external collaborators
// (Foundry, Messaging Connect) are deliberately excluded so an external
// outage does not make the orchestrator restart this service.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// statsHandler handles GET /api/v1/stats.
func (s *Server) statsHandler(c *gin.Context) {
	stats, err := s.admin.GetStatistics(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// validationHandler handles GET /api/v1/validation.
// Runs the full consistency sweep over all active records.
func (s *Server) validationHandler(c *gin.Context) {
	report, err := s.admin.ValidateAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
