// agentrouter server stores agent/channel routing configuration and
// resolves inbound phone numbers to their primary AI agent.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/multichannel-ai/agentrouter/pkg/api"
	"github.com/multichannel-ai/agentrouter/pkg/config"
	"github.com/multichannel-ai/agentrouter/pkg/database"
	"github.com/multichannel-ai/agentrouter/pkg/dispatch"
	"github.com/multichannel-ai/agentrouter/pkg/services"
	"github.com/multichannel-ai/agentrouter/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	settings := config.Load()

	slog.Info("Starting agentrouter",
		"version", version.Full(),
		"http_port", settings.HTTPPort,
		"messaging_enabled", settings.MessagingEnabled)

	ctx := context.Background()

	// 1. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Initialize domain services
	agentService := services.NewAgentService(dbClient.Client)
	channelService := services.NewChannelService(dbClient.Client)
	mappingService := services.NewMappingService(dbClient.Client)
	routingService := services.NewRoutingService(dbClient.Client)
	adminService := services.NewAdminService(dbClient.Client)
	slog.Info("Services initialized")

	// 3. Create HTTP server
	httpServer := api.NewServer(dbClient, agentService, channelService,
		mappingService, routingService, adminService)

	// 4. Wire outbound messaging when configured
	if settings.MessagingEnabled {
		if settings.ACSEndpoint == "" {
			slog.Error("MESSAGING_CONNECT_ENABLED is set but ACS_ENDPOINT is empty")
			os.Exit(1)
		}
		client := dispatch.NewClient(settings.ACSEndpoint,
			dispatch.StaticTokenProvider(settings.ACSAccessToken))
		httpServer.SetMessageSender(dispatch.NewFallbackSender(client), settings.ChannelChain())
		slog.Info("Messaging Connect sender initialized",
			"endpoint", settings.ACSEndpoint,
			"channels", len(settings.ChannelChain()))
	}

	// 5. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + settings.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("agentrouter started successfully")

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
