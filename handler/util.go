package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/maduaionlabs/bountiful-api/model"
	"github.com/maduaionlabs/bountiful-api/query"

	"github.com/labstack/echo/v4"
)

// parsePaging reads page and page_size with their defaults. Non-integer
// values are rejected here; range checks happen in query.Paginate.
func parsePaging(c echo.Context) (int, int, error) {
	page := 1
	if pageStr := c.QueryParam("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil {
			return 0, 0, &query.InvalidParameterError{Param: "page", Reason: "must be an integer"}
		}
		page = parsed
	}

	pageSize := 10
	if pageSizeStr := c.QueryParam("page_size"); pageSizeStr != "" {
		parsed, err := strconv.Atoi(pageSizeStr)
		if err != nil {
			return 0, 0, &query.InvalidParameterError{Param: "page_size", Reason: "must be an integer"}
		}
		pageSize = parsed
	}

	return page, pageSize, nil
}

// renderError maps an error to its HTTP status and error envelope. Client
// errors carry their own message; anything unexpected is logged and
// reported as a generic internal error.
func (h *Handler) renderError(c echo.Context, err error) error {
	var invalid *query.InvalidParameterError
	var outOfRange *query.PageOutOfRangeError
	var unknown *query.UnknownColumnError

	switch {
	case errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: invalid.Error()})
	case errors.As(err, &outOfRange):
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Detail: outOfRange.Error()})
	case errors.As(err, &unknown):
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: unknown.Error()})
	default:
		h.logger.Error("Request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Detail: "Internal server error"})
	}
}
