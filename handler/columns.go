package handler

import (
	"net/http"

	"github.com/maduaionlabs/bountiful-api/model"

	"github.com/labstack/echo/v4"
)

// GetColumns lists the dataset's column names.
func (h *Handler) GetColumns(c echo.Context) error {
	table, err := h.store.Table()
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(http.StatusOK, model.ColumnsResponse{
		Success:      true,
		Columns:      table.Columns,
		TotalColumns: len(table.Columns),
	})
}
