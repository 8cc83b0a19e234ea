package query

import "fmt"

// InvalidParameterError reports a malformed client parameter.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("Invalid parameter '%s': %s", e.Param, e.Reason)
}

// PageOutOfRangeError reports a page request beyond the last page.
type PageOutOfRangeError struct {
	RequestedPage int
	TotalPages    int
}

func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("Page %d not found. Total pages: %d", e.RequestedPage, e.TotalPages)
}

// UnknownColumnError reports a search against a column the table does not have.
type UnknownColumnError struct {
	Column    string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("Column '%s' not found. Available columns: %v", e.Column, e.Available)
}
