package reshape

import (
	"fmt"
	"strings"
)

// Uniter concatenates the values of several columns
// into one new column with a separator.
type Uniter struct {
	newColumn     string
	sourceColumns []string
	separator     string
	nullToken     string
}

// NewUniter returns a Uniter that joins the source columns in order
// into newColumn using DefaultSeparator,
// rendering nil cells as DefaultNullToken.
func NewUniter(newColumn string, sourceColumns ...string) *Uniter {
	return &Uniter{
		newColumn:     newColumn,
		sourceColumns: sourceColumns,
		separator:     DefaultSeparator,
		nullToken:     DefaultNullToken,
	}
}

// WithSeparator returns a new Uniter using the passed separator.
func (u *Uniter) WithSeparator(separator string) *Uniter {
	mod := u.clone()
	mod.separator = separator
	return mod
}

// WithNullToken returns a new Uniter rendering nil cells
// as the passed token instead of DefaultNullToken.
// Nil cells are always rendered, never skipped,
// so a later Split on the same separator
// keeps the columns aligned.
func (u *Uniter) WithNullToken(token string) *Uniter {
	mod := u.clone()
	mod.nullToken = token
	return mod
}

func (u *Uniter) clone() *Uniter {
	c := new(Uniter)
	*c = *u
	c.sourceColumns = make([]string, len(u.sourceColumns))
	copy(c.sourceColumns, u.sourceColumns)
	return c
}

// Unite joins the source columns of table into the new column.
//
// The new column takes the position of the first source column,
// all source columns are dropped,
// all other columns pass through unchanged.
func (u *Uniter) Unite(table *Table) (*Table, error) {
	if u.newColumn == "" {
		return nil, &ConfigurationError{Message: "new column name must not be empty"}
	}
	if len(u.sourceColumns) == 0 {
		return nil, &ConfigurationError{Message: "no source columns to unite"}
	}
	sourceIndices := make([]int, len(u.sourceColumns))
	isSource := make(map[int]bool, len(u.sourceColumns))
	for i, col := range u.sourceColumns {
		index := table.ColumnIndex(col)
		if index < 0 {
			return nil, &ConfigurationError{Message: fmt.Sprintf("source column %q not found in table", col)}
		}
		if isSource[index] {
			return nil, &ConfigurationError{Message: fmt.Sprintf("duplicate source column %q", col)}
		}
		sourceIndices[i] = index
		isSource[index] = true
	}
	for i, col := range table.cols {
		if col == u.newColumn && !isSource[i] {
			return nil, &ConfigurationError{Message: fmt.Sprintf("new column name %q collides with existing column", col)}
		}
	}

	united := make([]any, table.NumRows())
	fields := make([]string, len(sourceIndices))
	for row := range united {
		for i, col := range sourceIndices {
			fields[i] = CellString(table.cells[col][row], u.nullToken)
		}
		united[row] = strings.Join(fields, u.separator)
	}

	cols := make([]string, 0, len(table.cols)-len(sourceIndices)+1)
	cells := make([][]any, 0, cap(cols))
	for i, col := range table.cols {
		switch {
		case i == sourceIndices[0]:
			cols = append(cols, u.newColumn)
			cells = append(cells, united)
		case isSource[i]:
			// dropped
		default:
			cols = append(cols, col)
			cells = append(cells, table.cells[i])
		}
	}
	return NewTable(table.title, cols, cells...)
}
