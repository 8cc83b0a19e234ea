// Package handler translates HTTP requests into query engine calls over
// the loaded dataset and renders the JSON envelopes.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/maduaionlabs/bountiful-api/dataset"
	"github.com/maduaionlabs/bountiful-api/model"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	store  *dataset.Store
	logger *slog.Logger
}

func NewHandler(store *dataset.Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Root describes the API and its endpoints.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, model.RootResponse{
		Message: "CSV Data API",
		Endpoints: map[string]string{
			"/data":    "Get paginated data from CSV",
			"/columns": "Get list of columns",
			"/info":    "Get dataset information",
			"/search":  "Search for specific values in columns",
		},
	})
}

// Health check handler
func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "bountiful-api",
	})
}
