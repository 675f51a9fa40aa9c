package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// resolveHandler handles GET /api/v1/routing/:phone.
// Resolves a destination phone number to its active primary agent. On
// no match the response is 404 with a machine-readable reason
// (no_channel or no_primary_agent); the caller owns any fallback.
func (s *Server) resolveHandler(c *gin.Context) {
	phoneNumber := c.Param("phone")
	if phoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone number is required"})
		return
	}

	route, err := s.routing.ResolveAgentForPhone(c.Request.Context(), phoneNumber)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, RouteResponse{
		Agent:     newAgentResponse(route.Agent),
		Channel:   newChannelResponse(route.Channel),
		MappingID: route.Mapping.ID,
	})
}
