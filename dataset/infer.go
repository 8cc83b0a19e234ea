package dataset

import (
	"math"
	"strconv"
	"strings"
)

// inferKind determines a column's type from its non-empty cells.
// The rule is fixed: all integers -> integer, else all floats -> float,
// else all true/false -> boolean, else string. Empty cells do not
// participate; a column of only empty cells stays a string column.
func inferKind(cells []string) Kind {
	isInt, isFloat, isBool := true, true, true
	seen := false
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		seen = true
		if isInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			f, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				isFloat = false
			}
		}
		if isBool {
			if !strings.EqualFold(cell, "true") && !strings.EqualFold(cell, "false") {
				isBool = false
			}
		}
		if !isInt && !isFloat && !isBool {
			return KindString
		}
	}
	switch {
	case !seen:
		return KindString
	case isInt:
		return KindInt
	case isFloat:
		return KindFloat
	case isBool:
		return KindBool
	default:
		return KindString
	}
}

// coerce converts a raw cell to a Value of the column's inferred kind.
func coerce(cell string, kind Kind) Value {
	if cell == "" {
		return Null()
	}
	switch kind {
	case KindInt:
		i, _ := strconv.ParseInt(cell, 10, 64)
		return IntValue(i)
	case KindFloat:
		f, _ := strconv.ParseFloat(cell, 64)
		return FloatValue(f)
	case KindBool:
		return BoolValue(strings.EqualFold(cell, "true"))
	default:
		return StringValue(cell)
	}
}
