package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/multichannel-ai/agentrouter/pkg/models"
)

// createMappingHandler handles POST /api/v1/mappings.
func (s *Server) createMappingHandler(c *gin.Context) {
	var req models.CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := s.mappings.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMappingResponse(m))
}

// getMappingHandler handles GET /api/v1/mappings/:id.
func (s *Server) getMappingHandler(c *gin.Context) {
	m, err := s.mappings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMappingResponse(m))
}

// listMappingsHandler handles GET /api/v1/mappings.
func (s *Server) listMappingsHandler(c *gin.Context) {
	params := models.MappingListParams{
		AgentID:   c.Query("agent_id"),
		ChannelID: c.Query("channel_id"),
	}
	if v := c.Query("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_active: must be true or false"})
			return
		}
		params.IsActive = &active
	}

	mappings, err := s.mappings.List(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mappings": newMappingListResponse(mappings)})
}

// updateMappingHandler handles PATCH /api/v1/mappings/:id.
func (s *Server) updateMappingHandler(c *gin.Context) {
	var req models.UpdateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := s.mappings.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMappingResponse(m))
}

// deleteMappingHandler handles DELETE /api/v1/mappings/:id (soft delete).
func (s *Server) deleteMappingHandler(c *gin.Context) {
	if err := s.mappings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
