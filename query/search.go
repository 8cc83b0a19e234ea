package query

import (
	"strings"

	"github.com/maduaionlabs/bountiful-api/dataset"
)

// Search returns the rows whose cell in column contains value,
// case-insensitively, preserving the table's row order. Rows with a null
// cell in the search column never match. An empty value matches every row
// with a non-null cell.
func Search(table *dataset.Table, column string, value string) ([]dataset.Row, error) {
	if !table.HasColumn(column) {
		return nil, &UnknownColumnError{Column: column, Available: table.Columns}
	}

	needle := strings.ToLower(value)
	matched := []dataset.Row{}
	for _, row := range table.Rows {
		cell := row[column]
		if cell.IsNull() {
			continue
		}
		if strings.Contains(strings.ToLower(cell.String()), needle) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}
