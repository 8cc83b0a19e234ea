package handler

import (
	"net/http"

	"github.com/maduaionlabs/bountiful-api/model"
	"github.com/maduaionlabs/bountiful-api/query"

	"github.com/labstack/echo/v4"
)

// GetData retrieves a page of dataset rows in original order.
func (h *Handler) GetData(c echo.Context) error {
	page, pageSize, err := parsePaging(c)
	if err != nil {
		return h.renderError(c, err)
	}

	table, err := h.store.Table()
	if err != nil {
		return h.renderError(c, err)
	}

	result, err := query.Paginate(table.Rows, page, pageSize)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(http.StatusOK, model.DataResponse{
		Success:        true,
		Page:           page,
		PageSize:       pageSize,
		TotalRecords:   result.TotalRecords,
		TotalPages:     result.TotalPages,
		ShowingRecords: result.ShowingRecords,
		Data:           result.Rows,
	})
}
