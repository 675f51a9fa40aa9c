package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendMessageRequest is the payload for POST /api/v1/messages.
// Channels, when set, overrides the deployment's default fallback
// chain with an explicit ordered list of channel registration IDs.
type SendMessageRequest struct {
	To       string   `json:"to" binding:"required"`
	Text     string   `json:"text" binding:"required"`
	Channels []string `json:"channels,omitempty"`
}

// sendMessageHandler handles POST /api/v1/messages. Returns 503 when
// the deployment has no Messaging Connect configuration.
func (s *Server) sendMessageHandler(c *gin.Context) {
	if s.sender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "outbound messaging is not configured"})
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chain := req.Channels
	if len(chain) == 0 {
		chain = s.channelChain
	}

	result, err := s.sender.Send(c.Request.Context(), req.To, req.Text, chain)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, result)
}
