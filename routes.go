package main

import (
	"github.com/maduaionlabs/bountiful-api/handler"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes for the service
func SetupRoutes(e *echo.Echo, h *handler.Handler) {
	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	e.GET("/", h.Root)
	e.GET("/health", h.HealthCheck)

	e.GET("/data", h.GetData)
	e.GET("/columns", h.GetColumns)
	e.GET("/info", h.GetInfo)
	e.GET("/search", h.SearchData)
}
