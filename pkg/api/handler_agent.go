package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/multichannel-ai/agentrouter/pkg/models"
)

// createAgentHandler handles POST /api/v1/agents.
func (s *Server) createAgentHandler(c *gin.Context) {
	var req models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ag, err := s.agents.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAgentResponse(ag))
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *gin.Context) {
	ag, err := s.agents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAgentResponse(ag))
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *gin.Context) {
	params := models.AgentListParams{}
	if v := c.Query("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_active: must be true or false"})
			return
		}
		params.IsActive = &active
	}

	agents, err := s.agents.List(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": newAgentListResponse(agents)})
}

// updateAgentHandler handles PATCH /api/v1/agents/:id.
func (s *Server) updateAgentHandler(c *gin.Context) {
	var req models.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ag, err := s.agents.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAgentResponse(ag))
}

// deleteAgentHandler handles DELETE /api/v1/agents/:id (soft delete).
func (s *Server) deleteAgentHandler(c *gin.Context) {
	if err := s.agents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
