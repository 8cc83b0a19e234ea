package query

import (
	"testing"

	"github.com/maduaionlabs/bountiful-api/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleTable() *dataset.Table {
	return &dataset.Table{
		Columns: []string{"id", "name", "age"},
		Kinds:   []dataset.Kind{dataset.KindInt, dataset.KindString, dataset.KindInt},
		Rows: []dataset.Row{
			{"id": dataset.IntValue(1), "name": dataset.StringValue("John Doe"), "age": dataset.IntValue(30)},
			{"id": dataset.IntValue(2), "name": dataset.StringValue("Jane"), "age": dataset.IntValue(25)},
			{"id": dataset.IntValue(3), "name": dataset.StringValue("Johnny"), "age": dataset.Null()},
		},
	}
}

func TestSearch(t *testing.T) {
	t.Run("Should match case-insensitive substrings in order", func(t *testing.T) {
		table := peopleTable()

		matched, err := Search(table, "name", "john")
		require.NoError(t, err)
		require.Len(t, matched, 2)
		assert.Equal(t, dataset.StringValue("John Doe"), matched[0]["name"])
		assert.Equal(t, dataset.StringValue("Johnny"), matched[1]["name"])

		upper, err := Search(table, "name", "JOHN")
		require.NoError(t, err)
		assert.Equal(t, matched, upper)
	})

	t.Run("Should search the textual form of non-string columns", func(t *testing.T) {
		matched, err := Search(peopleTable(), "age", "25")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, dataset.IntValue(2), matched[0]["id"])
	})

	t.Run("Should never match rows with a null cell", func(t *testing.T) {
		matched, err := Search(peopleTable(), "age", "")
		require.NoError(t, err)
		require.Len(t, matched, 2)
		for _, row := range matched {
			assert.False(t, row["age"].IsNull())
		}
	})

	t.Run("Should be idempotent over its own result", func(t *testing.T) {
		table := peopleTable()
		once, err := Search(table, "name", "jo")
		require.NoError(t, err)

		filtered := &dataset.Table{Columns: table.Columns, Kinds: table.Kinds, Rows: once}
		twice, err := Search(filtered, "name", "jo")
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("Should fail with UnknownColumnError listing valid columns", func(t *testing.T) {
		_, err := Search(peopleTable(), "unknown", "x")
		var unknown *UnknownColumnError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "unknown", unknown.Column)
		assert.Equal(t, []string{"id", "name", "age"}, unknown.Available)
	})

	t.Run("Should compose with Paginate over the filtered set", func(t *testing.T) {
		matched, err := Search(peopleTable(), "name", "john")
		require.NoError(t, err)

		page, err := Paginate(matched, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalRecords)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 2, page.ShowingRecords)
	})
}
