// Package model defines the JSON response envelopes of the API.
package model

import "github.com/maduaionlabs/bountiful-api/dataset"

// RootResponse describes the API and its endpoints.
type RootResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// DataResponse is the envelope for paginated dataset rows.
type DataResponse struct {
	Success        bool          `json:"success"`
	Page           int           `json:"page"`
	PageSize       int           `json:"page_size"`
	TotalRecords   int           `json:"total_records"`
	TotalPages     int           `json:"total_pages"`
	ShowingRecords int           `json:"showing_records"`
	Data           []dataset.Row `json:"data"`
}

// SearchResponse is the envelope for paginated search results. It echoes
// the search criterion back to the caller.
type SearchResponse struct {
	Success        bool          `json:"success"`
	Page           int           `json:"page"`
	PageSize       int           `json:"page_size"`
	TotalRecords   int           `json:"total_records"`
	TotalPages     int           `json:"total_pages"`
	ShowingRecords int           `json:"showing_records"`
	SearchColumn   string        `json:"search_column"`
	SearchValue    string        `json:"search_value"`
	Data           []dataset.Row `json:"data"`
}

// ColumnsResponse lists the dataset's column names.
type ColumnsResponse struct {
	Success      bool     `json:"success"`
	Columns      []string `json:"columns"`
	TotalColumns int      `json:"total_columns"`
}

// ColumnInfo describes one column in the /info response.
type ColumnInfo struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	NonNull int    `json:"non_null"`
}

// InfoResponse summarizes the loaded dataset.
type InfoResponse struct {
	Success      bool         `json:"success"`
	File         string       `json:"file"`
	TotalRecords int          `json:"total_records"`
	TotalColumns int          `json:"total_columns"`
	Columns      []ColumnInfo `json:"columns"`
}

// ErrorResponse is the envelope for every client and server error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}
