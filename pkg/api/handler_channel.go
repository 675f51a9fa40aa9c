package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/multichannel-ai/agentrouter/pkg/models"
)

// createChannelHandler handles POST /api/v1/channels.
func (s *Server) createChannelHandler(c *gin.Context) {
	var req models.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch, err := s.channels.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newChannelResponse(ch))
}

// getChannelHandler handles GET /api/v1/channels/:id.
func (s *Server) getChannelHandler(c *gin.Context) {
	ch, err := s.channels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newChannelResponse(ch))
}

// listChannelsHandler handles GET /api/v1/channels.
func (s *Server) listChannelsHandler(c *gin.Context) {
	params := models.ChannelListParams{
		ChannelType: c.Query("channel_type"),
	}
	if v := c.Query("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_active: must be true or false"})
			return
		}
		params.IsActive = &active
	}

	channels, err := s.channels.List(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": newChannelListResponse(channels)})
}

// updateChannelHandler handles PATCH /api/v1/channels/:id.
func (s *Server) updateChannelHandler(c *gin.Context) {
	var req models.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch, err := s.channels.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newChannelResponse(ch))
}

// deleteChannelHandler handles DELETE /api/v1/channels/:id (soft delete).
func (s *Server) deleteChannelHandler(c *gin.Context) {
	if err := s.channels.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
