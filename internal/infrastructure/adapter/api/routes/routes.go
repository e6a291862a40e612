package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/Aeastr/LogOutLoud/internal/domain/port/core"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/usecase"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/api/handler"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the viewer API
func SetupRoutes(
	router *gin.Engine,
	consoleHandler *handler.ConsoleHandler,
	logHandler *handler.LogHandler,
) {
	router.GET("/health", handler.Health)

	consoleRoutes := router.Group("/console")
	{
		consoleRoutes.GET("/entries", consoleHandler.Entries)
		consoleRoutes.DELETE("/entries", consoleHandler.Clear)
		consoleRoutes.GET("/export", consoleHandler.Export)
		consoleRoutes.GET("/status", consoleHandler.Status)
		consoleRoutes.POST("/pause", consoleHandler.Pause)
		consoleRoutes.POST("/resume", consoleHandler.Resume)
		consoleRoutes.GET("/stream", consoleHandler.Stream)
	}

	logRoutes := router.Group("/logs")
	{
		// POST /logs/:category
		logRoutes.POST("/:category", logHandler.Emit)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger usecase.Emitter, clock coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, clock))
	router.Use(middleware.CORS())
}
