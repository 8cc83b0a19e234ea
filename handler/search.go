package handler

import (
	"net/http"

	"github.com/maduaionlabs/bountiful-api/model"
	"github.com/maduaionlabs/bountiful-api/query"

	"github.com/labstack/echo/v4"
)

// SearchData filters rows by case-insensitive substring match in one
// column, then paginates the filtered result.
func (h *Handler) SearchData(c echo.Context) error {
	column := c.QueryParam("column")
	if column == "" {
		return h.renderError(c, &query.InvalidParameterError{Param: "column", Reason: "is required"})
	}
	value := c.QueryParam("value")
	if value == "" && !c.QueryParams().Has("value") {
		return h.renderError(c, &query.InvalidParameterError{Param: "value", Reason: "is required"})
	}

	page, pageSize, err := parsePaging(c)
	if err != nil {
		return h.renderError(c, err)
	}

	table, err := h.store.Table()
	if err != nil {
		return h.renderError(c, err)
	}

	matched, err := query.Search(table, column, value)
	if err != nil {
		return h.renderError(c, err)
	}

	result, err := query.Paginate(matched, page, pageSize)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.JSON(http.StatusOK, model.SearchResponse{
		Success:        true,
		Page:           page,
		PageSize:       pageSize,
		TotalRecords:   result.TotalRecords,
		TotalPages:     result.TotalPages,
		ShowingRecords: result.ShowingRecords,
		SearchColumn:   column,
		SearchValue:    value,
		Data:           result.Rows,
	})
}
