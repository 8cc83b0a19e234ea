package handler

import (
	"net/http"

	"github.com/maduaionlabs/bountiful-api/model"

	"github.com/labstack/echo/v4"
)

// GetInfo summarizes the dataset: record count plus the inferred type and
// non-null count of every column.
func (h *Handler) GetInfo(c echo.Context) error {
	table, err := h.store.Table()
	if err != nil {
		return h.renderError(c, err)
	}

	columns := make([]model.ColumnInfo, len(table.Columns))
	for i, name := range table.Columns {
		nonNull := 0
		for _, row := range table.Rows {
			if !row[name].IsNull() {
				nonNull++
			}
		}
		columns[i] = model.ColumnInfo{
			Name:    name,
			Type:    table.Kinds[i].String(),
			NonNull: nonNull,
		}
	}

	return c.JSON(http.StatusOK, model.InfoResponse{
		Success:      true,
		File:         h.store.Path(),
		TotalRecords: len(table.Rows),
		TotalColumns: len(table.Columns),
		Columns:      columns,
	})
}
