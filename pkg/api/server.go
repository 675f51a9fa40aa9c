// Package api exposes the routing configuration service over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/multichannel-ai/agentrouter/pkg/database"
	"github.com/multichannel-ai/agentrouter/pkg/dispatch"
	"github.com/multichannel-ai/agentrouter/pkg/services"
)

// Server is the HTTP API server. All dependencies are injected; the
// server owns no configuration state of its own.
type Server struct {
	db       *database.Client
	agents   *services.AgentService
	channels *services.ChannelService
	mappings *services.MappingService
	routing  *services.RoutingService
	admin    *services.AdminService

	// Outbound sending is optional; nil when Messaging Connect is not
	// configured for this deployment.
	sender       *dispatch.FallbackSender
	channelChain []string

	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	db *database.Client,
	agents *services.AgentService,
	channels *services.ChannelService,
	mappings *services.MappingService,
	routing *services.RoutingService,
	admin *services.AdminService,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), securityHeaders(), requestLogger())

	s := &Server{
		db:       db,
		agents:   agents,
		channels: channels,
		mappings: mappings,
		routing:  routing,
		admin:    admin,
		engine:   engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")

	v1.GET("/health", s.healthHandler)
	v1.GET("/stats", s.statsHandler)
	v1.GET("/validation", s.validationHandler)
	v1.GET("/routing/:phone", s.resolveHandler)
	v1.POST("/messages", s.sendMessageHandler)

	agents := v1.Group("/agents")
	agents.POST("", s.createAgentHandler)
	agents.GET("", s.listAgentsHandler)
	agents.GET("/:id", s.getAgentHandler)
	agents.PATCH("/:id", s.updateAgentHandler)
	agents.DELETE("/:id", s.deleteAgentHandler)

	channels := v1.Group("/channels")
	channels.POST("", s.createChannelHandler)
	channels.GET("", s.listChannelsHandler)
	channels.GET("/:id", s.getChannelHandler)
	channels.PATCH("/:id", s.updateChannelHandler)
	channels.DELETE("/:id", s.deleteChannelHandler)

	mappings := v1.Group("/mappings")
	mappings.POST("", s.createMappingHandler)
	mappings.GET("", s.listMappingsHandler)
	mappings.GET("/:id", s.getMappingHandler)
	mappings.PATCH("/:id", s.updateMappingHandler)
	mappings.DELETE("/:id", s.deleteMappingHandler)
}

// SetMessageSender enables the outbound send endpoint. channelChain is
// the default ordered list of channel registrations to try when a
// request does not name its own.
func (s *Server) SetMessageSender(sender *dispatch.FallbackSender, channelChain []string) {
	s.sender = sender
	s.channelChain = channelChain
}

// Handler returns the underlying HTTP handler (used by tests).
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
