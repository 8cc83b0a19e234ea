// Package query provides pure, stateless pagination and search over an
// immutable dataset table.
package query

import "github.com/maduaionlabs/bountiful-api/dataset"

// MaxPageSize is the upper bound for the page_size parameter.
const MaxPageSize = 1000

// Page is one page of rows plus the pagination metadata for the whole set.
type Page struct {
	TotalRecords   int
	TotalPages     int
	ShowingRecords int
	Rows           []dataset.Row
}

// Paginate slices rows into the requested page. Rows keep their original
// order. An empty row set succeeds for any page number with zero total
// pages; a page beyond the last page of a non-empty set is an error.
func Paginate(rows []dataset.Row, page int, pageSize int) (*Page, error) {
	if page < 1 {
		return nil, &InvalidParameterError{Param: "page", Reason: "must be a positive integer"}
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, &InvalidParameterError{Param: "page_size", Reason: "must be between 1 and 1000"}
	}

	totalRecords := len(rows)
	if totalRecords == 0 {
		return &Page{Rows: []dataset.Row{}}, nil
	}

	totalPages := (totalRecords + pageSize - 1) / pageSize
	if page > totalPages {
		return nil, &PageOutOfRangeError{RequestedPage: page, TotalPages: totalPages}
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, totalRecords)

	return &Page{
		TotalRecords:   totalRecords,
		TotalPages:     totalPages,
		ShowingRecords: end - start,
		Rows:           rows[start:end],
	}, nil
}
