package reshape

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table is an ordered collection of named columns of equal length.
//
// Cells are held column-major as values of any type,
// with nil representing a missing value (null).
// A Table is never mutated after construction:
// every reshaping operation consumes a Table
// and produces a new one, so Tables are safe
// for concurrent read access.
type Table struct {
	title string
	cols  []string
	cells [][]any // one slice per column, all of equal length
}

// NewTable creates a Table from column names and column value slices.
//
// The number of cell slices must match the number of column names,
// all column names must be unique and non-empty,
// and all cell slices must have the same length.
// Violations are reported as ConfigurationError.
func NewTable(title string, cols []string, cells ...[]any) (*Table, error) {
	if len(cells) != len(cols) {
		return nil, &ConfigurationError{Message: fmt.Sprintf("got %d columns of cells for %d column names", len(cells), len(cols))}
	}
	numRows := 0
	if len(cells) > 0 {
		numRows = len(cells[0])
	}
	seen := make(map[string]struct{}, len(cols))
	for i, col := range cols {
		if col == "" {
			return nil, &ConfigurationError{Message: fmt.Sprintf("empty name for column %d", i)}
		}
		if _, ok := seen[col]; ok {
			return nil, &ConfigurationError{Message: fmt.Sprintf("duplicate column name %q", col)}
		}
		seen[col] = struct{}{}
		if len(cells[i]) != numRows {
			return nil, &ConfigurationError{Message: fmt.Sprintf("column %q has %d rows, expected %d", col, len(cells[i]), numRows)}
		}
	}
	t := &Table{
		title: title,
		cols:  make([]string, len(cols)),
		cells: make([][]any, len(cells)),
	}
	copy(t.cols, cols)
	for i, column := range cells {
		t.cells[i] = make([]any, len(column))
		copy(t.cells[i], column)
	}
	return t, nil
}

// NewTableFromRows creates a Table from row-major string data
// where the first row contains the column names.
// The empty string and nullTokens are read as nil cells.
// Rows shorter than the header are padded with nil cells.
func NewTableFromRows(title string, rows [][]string, nullTokens ...string) (*Table, error) {
	if len(rows) == 0 {
		return NewTable(title, nil)
	}
	cols := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		cols[i] = strings.TrimSpace(col)
	}
	cells := make([][]any, len(cols))
	for i := range cells {
		cells[i] = make([]any, len(rows)-1)
	}
	for rowIndex, row := range rows[1:] {
		for colIndex := range cols {
			if colIndex >= len(row) {
				continue // missing trailing field, cell stays nil
			}
			val := row[colIndex]
			if isNullToken(val, nullTokens) {
				continue
			}
			cells[colIndex][rowIndex] = val
		}
	}
	return NewTable(title, cols, cells...)
}

func isNullToken(val string, nullTokens []string) bool {
	if val == "" {
		return true
	}
	for _, token := range nullTokens {
		if val == token {
			return true
		}
	}
	return false
}

// Title returns the title of the table.
func (t *Table) Title() string { return t.title }

// WithTitle returns a Table with the passed title
// sharing the columns and cells of the receiver.
func (t *Table) WithTitle(title string) *Table {
	return &Table{title: title, cols: t.cols, cells: t.cells}
}

// Columns returns the column names in order.
// The returned slice is a copy and can be modified freely.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// ColumnIndex returns the index of the named column
// or -1 if the table has no column with that name.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.cols {
		if col == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column with the passed name.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Cell returns the value at the row and column indices
// or nil if the indices are out of bounds.
func (t *Table) Cell(row, col int) any {
	if row < 0 || col < 0 || col >= len(t.cells) || row >= len(t.cells[col]) {
		return nil
	}
	return t.cells[col][row]
}

// Column returns a copy of the cells of the named column.
func (t *Table) Column(name string) ([]any, error) {
	index := t.ColumnIndex(name)
	if index < 0 {
		return nil, &ConfigurationError{Message: fmt.Sprintf("table has no column %q", name)}
	}
	column := make([]any, len(t.cells[index]))
	copy(column, t.cells[index])
	return column, nil
}

// Row returns a copy of the cells of one row in column order.
func (t *Table) Row(index int) []any {
	if index < 0 || index >= t.NumRows() {
		return nil
	}
	row := make([]any, len(t.cells))
	for col := range t.cells {
		row[col] = t.cells[col][index]
	}
	return row
}

// Strings renders all cells row-major as strings without a header row.
// Nil cells are rendered as nullToken.
func (t *Table) Strings(nullToken string) [][]string {
	rows := make([][]string, t.NumRows())
	for row := range rows {
		rows[row] = make([]string, len(t.cols))
		for col := range t.cols {
			rows[row][col] = CellString(t.cells[col][row], nullToken)
		}
	}
	return rows
}

// Equal reports whether two tables have the same title,
// the same columns in the same order, and equal cells.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.title != other.title || len(t.cols) != len(other.cols) || t.NumRows() != other.NumRows() {
		return false
	}
	for col, name := range t.cols {
		if name != other.cols[col] {
			return false
		}
		for row := range t.cells[col] {
			if t.cells[col][row] != other.cells[col][row] {
				return false
			}
		}
	}
	return true
}

// String renders the table as aligned text for debugging.
func (t *Table) String() string {
	rows := append([][]string{t.Columns()}, t.Strings(DefaultNullToken)...)
	colWidths := stringColumnWidths(rows, len(t.cols))
	var b strings.Builder
	if t.title != "" {
		b.WriteString(t.title)
		b.WriteByte('\n')
	}
	for _, row := range rows {
		for col, str := range row {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(str)
			for pad := utf8.RuneCountInString(str); pad < colWidths[col]; pad++ {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// stringColumnWidths returns the column widths of the passed
// rows as count of UTF-8 runes.
func stringColumnWidths(rows [][]string, numCols int) []int {
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}

// CellString renders a single cell value as string
// with nil rendered as nullToken.
func CellString(cell any, nullToken string) string {
	switch val := cell.(type) {
	case nil:
		return nullToken
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
