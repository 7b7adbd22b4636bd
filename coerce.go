package reshape

import (
	"fmt"
	"strconv"
)

// CoerceNumbers converts all cells of the named column to numbers:
// int64 for integral values, float64 otherwise.
// Nil cells stay nil, numeric cells pass through.
// The whole call fails with TypeConversionError
// on the first value that does not parse.
func CoerceNumbers(table *Table, column string) (*Table, error) {
	index := table.ColumnIndex(column)
	if index < 0 {
		return nil, &ConfigurationError{Message: fmt.Sprintf("table has no column %q", column)}
	}
	coerced := make([]any, table.NumRows())
	for row, cell := range table.cells[index] {
		num, err := coerceNumber(cell)
		if err != nil {
			return nil, &TypeConversionError{Column: column, Row: row, Value: cell}
		}
		coerced[row] = num
	}
	cells := make([][]any, len(table.cells))
	copy(cells, table.cells)
	cells[index] = coerced
	return NewTable(table.title, table.cols, cells...)
}

// coerceNumber converts a single scalar value to int64 or float64.
// Strings are parsed, nil stays nil.
func coerceNumber(val any) (any, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case int64, float64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, nil
		}
		return nil, fmt.Errorf("can't parse %q as number", v)
	default:
		return nil, fmt.Errorf("can't convert %T to number", val)
	}
}
