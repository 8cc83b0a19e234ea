package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchData(t *testing.T) {
	handler := newTestHandler(t, peopleCSV)

	t.Run("Should return matches with the criterion echoed back", func(t *testing.T) {
		rec, body := doRequest(t, handler.SearchData, "/search?column=name&value=john")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "name", body["search_column"])
		assert.Equal(t, "john", body["search_value"])
		assert.Equal(t, float64(2), body["total_records"])
		assert.Equal(t, float64(1), body["total_pages"])
		assert.Equal(t, float64(2), body["showing_records"])

		data, ok := body["data"].([]any)
		require.True(t, ok)
		require.Len(t, data, 2)
		assert.Equal(t, "John Doe", data[0].(map[string]any)["name"])
		assert.Equal(t, "Johnny", data[1].(map[string]any)["name"])
	})

	t.Run("Should paginate the filtered result", func(t *testing.T) {
		rec, body := doRequest(t, handler.SearchData, "/search?column=name&value=john&page=2&page_size=1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), body["total_pages"])
		assert.Equal(t, float64(1), body["showing_records"])
		data := body["data"].([]any)
		assert.Equal(t, "Johnny", data[0].(map[string]any)["name"])
	})

	t.Run("Should succeed with zero pages when nothing matches", func(t *testing.T) {
		rec, body := doRequest(t, handler.SearchData, "/search?column=name&value=zzz&page=7")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(0), body["total_records"])
		assert.Equal(t, float64(0), body["total_pages"])
		assert.Empty(t, body["data"])
	})

	t.Run("Should return 404 for a page beyond the filtered result", func(t *testing.T) {
		rec, body := doRequest(t, handler.SearchData, "/search?column=name&value=john&page=3&page_size=1")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Page 3 not found. Total pages: 2", body["detail"])
	})

	t.Run("Should return 400 for an unknown column listing valid columns", func(t *testing.T) {
		rec, body := doRequest(t, handler.SearchData, "/search?column=city&value=x")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Column 'city' not found. Available columns: [id name age]", body["detail"])
	})

	t.Run("Should return 400 when column or value is missing", func(t *testing.T) {
		rec, _ := doRequest(t, handler.SearchData, "/search?value=x")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = doRequest(t, handler.SearchData, "/search?column=name")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should accept an explicitly empty value", func(t *testing.T) {
		rec, body := doRequest(t, handler.SearchData, "/search?column=age&value=")

		assert.Equal(t, http.StatusOK, rec.Code)
		// Johnny's age is missing; null cells never match.
		assert.Equal(t, float64(2), body["total_records"])
	})

	t.Run("Should match numeric columns by textual form", func(t *testing.T) {
		rec, body := doRequest(t, handler.SearchData, "/search?column=age&value=25")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), body["total_records"])
		data := body["data"].([]any)
		assert.Equal(t, "Jane", data[0].(map[string]any)["name"])
	})
}
