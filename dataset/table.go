package dataset

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the inferred type of a column's cells.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// String returns the kind name used in the /info response.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// Value is a single cell: exactly one of null, bool, int, float or string.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
}

func Null() Value                { return Value{Kind: KindNull} }
func BoolValue(b bool) Value     { return Value{Kind: KindBool, Bool: b} }
func IntValue(i int64) Value     { return Value{Kind: KindInt, Int: i} }
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IsNull reports whether the cell was empty in the source file.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// String returns the textual form used by substring search.
// Null cells have no textual form; search excludes them before calling this.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// MarshalJSON encodes the cell as a plain JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindBool:
		return strconv.AppendBool(nil, v.Bool), nil
	case KindInt:
		return strconv.AppendInt(nil, v.Int, 10), nil
	case KindFloat:
		return json.Marshal(v.Float)
	case KindString:
		return json.Marshal(v.Str)
	default:
		return []byte("null"), nil
	}
}

// Row maps column names to cell values.
type Row map[string]Value

// Table is the dataset loaded from the source file. It is built once at
// startup and never mutated afterwards; concurrent reads need no locking.
type Table struct {
	Columns []string
	Kinds   []Kind
	Rows    []Row
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
