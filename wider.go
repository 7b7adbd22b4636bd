package reshape

import (
	"fmt"
	"strings"
)

// Wider reshapes a long table back into wide format.
//
// Rows are grouped by the values of the id columns.
// Every group becomes one output row with one column
// per distinct value of the name column,
// filled from the corresponding value column cell.
type Wider struct {
	nameColumn  string
	valueColumn string
	idColumns   []string // nil means all columns except name and value
	fill        any
}

// NewWider returns a Wider that spreads nameColumn/valueColumn pairs
// into one column per distinct name value,
// grouping by all remaining columns.
func NewWider(nameColumn, valueColumn string) *Wider {
	return &Wider{
		nameColumn:  nameColumn,
		valueColumn: valueColumn,
	}
}

// WithIDColumns returns a new Wider grouping by the passed columns
// instead of all columns except the name and value columns.
func (w *Wider) WithIDColumns(cols ...string) *Wider {
	mod := w.clone()
	mod.idColumns = cols
	return mod
}

// WithFill returns a new Wider using fill for missing
// id and name combinations instead of nil.
func (w *Wider) WithFill(fill any) *Wider {
	mod := w.clone()
	mod.fill = fill
	return mod
}

func (w *Wider) clone() *Wider {
	c := new(Wider)
	*c = *w
	return c
}

// Reshape spreads table into wide format.
//
// Output rows are ordered by first appearance of their group key,
// spread columns by first appearance of their name value.
// Two input rows with the same group key and name value
// fail with DuplicateKeyError.
// A name value equal to an id column name
// fails with ConfigurationError instead of silently renaming.
func (w *Wider) Reshape(table *Table) (*Table, error) {
	nameIndex := table.ColumnIndex(w.nameColumn)
	if nameIndex < 0 {
		return nil, &ConfigurationError{Message: fmt.Sprintf("name column %q not found in table", w.nameColumn)}
	}
	valueIndex := table.ColumnIndex(w.valueColumn)
	if valueIndex < 0 {
		return nil, &ConfigurationError{Message: fmt.Sprintf("value column %q not found in table", w.valueColumn)}
	}
	if nameIndex == valueIndex {
		return nil, &ConfigurationError{Message: fmt.Sprintf("name and value columns are both called %q", w.nameColumn)}
	}

	idCols, err := w.resolveIDColumns(table, nameIndex, valueIndex)
	if err != nil {
		return nil, err
	}

	type group struct {
		key   []any
		cells map[string]any // spread column name to value
	}
	var (
		groups     []*group
		groupIndex = make(map[string]*group)
		spreadCols []string
		spreadSeen = make(map[string]bool)
	)
	for row := 0; row < table.NumRows(); row++ {
		key := make([]any, len(idCols))
		for i, col := range idCols {
			key[i] = table.cells[col][row]
		}
		mapKey := groupMapKey(key)
		g := groupIndex[mapKey]
		if g == nil {
			g = &group{key: key, cells: make(map[string]any)}
			groupIndex[mapKey] = g
			groups = append(groups, g)
		}

		name := CellString(table.cells[nameIndex][row], DefaultNullToken)
		if !spreadSeen[name] {
			spreadSeen[name] = true
			spreadCols = append(spreadCols, name)
		}
		if _, exists := g.cells[name]; exists {
			return nil, &DuplicateKeyError{Key: g.key, Name: name}
		}
		g.cells[name] = table.cells[valueIndex][row]
	}

	cols := make([]string, 0, len(idCols)+len(spreadCols))
	cells := make([][]any, 0, len(idCols)+len(spreadCols))
	for i, col := range idCols {
		column := make([]any, len(groups))
		for row, g := range groups {
			column[row] = g.key[i]
		}
		cols = append(cols, table.cols[col])
		cells = append(cells, column)
	}
	for _, name := range spreadCols {
		for _, col := range idCols {
			if table.cols[col] == name {
				return nil, &ConfigurationError{Message: fmt.Sprintf("reshaped column name %q collides with id column", name)}
			}
		}
		column := make([]any, len(groups))
		for row, g := range groups {
			if val, ok := g.cells[name]; ok {
				column[row] = val
			} else {
				column[row] = w.fill
			}
		}
		cols = append(cols, name)
		cells = append(cells, column)
	}

	return NewTable(table.title, cols, cells...)
}

// resolveIDColumns returns the indices of the grouping columns
// in table column order.
func (w *Wider) resolveIDColumns(table *Table, nameIndex, valueIndex int) ([]int, error) {
	if w.idColumns == nil {
		var idCols []int
		for i := range table.cols {
			if i != nameIndex && i != valueIndex {
				idCols = append(idCols, i)
			}
		}
		return idCols, nil
	}
	idCols := make([]int, len(w.idColumns))
	for i, col := range w.idColumns {
		index := table.ColumnIndex(col)
		if index < 0 {
			return nil, &ConfigurationError{Message: fmt.Sprintf("id column %q not found in table", col)}
		}
		if index == nameIndex || index == valueIndex {
			return nil, &ConfigurationError{Message: fmt.Sprintf("column name %q collides with id column", col)}
		}
		idCols[i] = index
	}
	return idCols, nil
}

// groupMapKey encodes id column values as a map key.
// The value types are part of the key so that
// the string "1" and the number 1 form different groups.
func groupMapKey(key []any) string {
	var b strings.Builder
	for _, val := range key {
		fmt.Fprintf(&b, "%T=%#v\x00", val, val)
	}
	return b.String()
}
