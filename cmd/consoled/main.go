package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	"github.com/Aeastr/LogOutLoud/internal/domain/usecase/logging"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/api/handler"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/api/routes"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/logger"
	timeProvider "github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/time"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/transport"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	diagLevel, err := cfg.Diagnostics.DiagnosticsLevel()
	if err != nil {
		log.Fatalf("Invalid diagnostics level: %v", err)
	}
	diagnostics := logger.NewZapLogger(cfg.IsProduction())
	diagnostics.SetLevel(diagLevel)

	nativeTransport, err := transport.NewZapTransport(cfg.IsProduction())
	if err != nil {
		diagnostics.Error("Failed to build native transport", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	severities, err := cfg.Logging.Severities(cfg.Environment)
	if err != nil {
		diagnostics.Error("Invalid logging severities", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	policy, err := cfg.Logging.Policy()
	if err != nil {
		diagnostics.Error("Invalid logging format", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	clock := timeProvider.NewRealTimeProvider()
	registry := logging.NewRegistry(logging.Options{
		Subsystem:   cfg.Logging.Subsystem,
		Transport:   nativeTransport,
		Clock:       clock,
		Diagnostics: diagnostics,
		Severities:  severities,
		Policy:      policy,
		SinkTimeout: cfg.Logging.SinkTimeout,
	})

	store, err := logging.NewConsoleStore(cfg.Console.Capacity)
	if err != nil {
		diagnostics.Error("Failed to create console store", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	for _, key := range cfg.Console.AttachTo {
		store.Attach(registry.Lookup(key))
	}

	appLogger := registry.Default()
	httpLogger := registry.Lookup("http")

	router := gin.New()
	routes.SetupMiddlewares(router, httpLogger, clock)
	routes.SetupRoutes(router,
		handler.NewConsoleHandler(store, registry, httpLogger),
		handler.NewLogHandler(registry, httpLogger),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		md := entity.Object(
			entity.F("addr", server.Addr),
			entity.F("env", cfg.Environment),
			entity.F("console_capacity", cfg.Console.Capacity),
			entity.F("attached", cfg.Console.AttachTo),
		)
		appLogger.Notice("Console viewer listening", &md, entity.TagConsole)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			diagnostics.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Notice("Shutting down console viewer", nil, entity.TagConsole)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		diagnostics.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	if err := nativeTransport.Close(); err != nil {
		diagnostics.Warn("Native transport flush failed", map[string]any{"error": err.Error()})
	}
	_ = diagnostics.Flush()
}

// validateConfig checks the values the viewer cannot start without
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Logging.Subsystem == "" {
		missingConfigs = append(missingConfigs, "logging.subsystem")
	}
	if len(cfg.Console.AttachTo) == 0 {
		missingConfigs = append(missingConfigs, "console.attachTo")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.IsProduction() && cfg.Server.ReadTimeout < 5*time.Second {
		log.Printf("Warning: server.readTimeout is too low for production")
	}
	return nil
}
