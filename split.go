package reshape

import (
	"fmt"
	"strings"
)

// OverflowPolicy controls what a Splitter does when a cell value
// splits into more parts than there are target columns.
type OverflowPolicy int

const (
	// OverflowMerge treats only the first len(targetColumns)-1 separators
	// as structural and joins the excess parts back into the last column
	// using the separator.
	// This is the default because it keeps values intact
	// that contain the separator within their last field.
	OverflowMerge OverflowPolicy = iota

	// OverflowError fails the split with TooManyPartsError.
	OverflowError

	// OverflowDrop discards the excess parts.
	OverflowDrop
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowMerge:
		return "OverflowMerge"
	case OverflowError:
		return "OverflowError"
	case OverflowDrop:
		return "OverflowDrop"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// UnderflowPolicy controls what a Splitter does when a cell value
// splits into fewer parts than there are target columns.
type UnderflowPolicy int

const (
	// UnderflowFillRight pads the missing trailing columns with nil.
	UnderflowFillRight UnderflowPolicy = iota

	// UnderflowError fails the split with TooFewPartsError.
	UnderflowError
)

func (p UnderflowPolicy) String() string {
	switch p {
	case UnderflowFillRight:
		return "UnderflowFillRight"
	case UnderflowError:
		return "UnderflowError"
	default:
		return fmt.Sprintf("UnderflowPolicy(%d)", int(p))
	}
}

// Splitter splits the string values of one column
// into several new columns by a separator.
type Splitter struct {
	sourceColumn string
	into         []string
	separator    string
	overflow     OverflowPolicy
	underflow    UnderflowPolicy
}

// NewSplitter returns a Splitter that splits sourceColumn
// into the passed target columns using DefaultSeparator,
// merging excess parts into the last column
// and padding missing parts with nil.
func NewSplitter(sourceColumn string, into ...string) *Splitter {
	return &Splitter{
		sourceColumn: sourceColumn,
		into:         into,
		separator:    DefaultSeparator,
	}
}

// WithSeparator returns a new Splitter using the passed separator.
func (s *Splitter) WithSeparator(separator string) *Splitter {
	mod := s.clone()
	mod.separator = separator
	return mod
}

// WithOverflowPolicy returns a new Splitter using the passed policy
// for values with more parts than target columns.
func (s *Splitter) WithOverflowPolicy(policy OverflowPolicy) *Splitter {
	mod := s.clone()
	mod.overflow = policy
	return mod
}

// WithUnderflowPolicy returns a new Splitter using the passed policy
// for values with fewer parts than target columns.
func (s *Splitter) WithUnderflowPolicy(policy UnderflowPolicy) *Splitter {
	mod := s.clone()
	mod.underflow = policy
	return mod
}

func (s *Splitter) clone() *Splitter {
	c := new(Splitter)
	*c = *s
	c.into = make([]string, len(s.into))
	copy(c.into, s.into)
	return c
}

// Split splits the source column of table.
//
// The new columns take the source column's position,
// all other columns pass through unchanged.
// A nil source cell yields nil in every new column.
// The whole call fails on the first policy violation,
// no partial result is returned.
func (s *Splitter) Split(table *Table) (*Table, error) {
	sourceIndex := table.ColumnIndex(s.sourceColumn)
	if sourceIndex < 0 {
		return nil, &ConfigurationError{Message: fmt.Sprintf("source column %q not found in table", s.sourceColumn)}
	}
	if len(s.into) == 0 {
		return nil, &ConfigurationError{Message: "no target columns to split into"}
	}
	if s.separator == "" {
		return nil, &ConfigurationError{Message: "separator must not be empty"}
	}
	for _, col := range s.into {
		if col != s.sourceColumn && table.HasColumn(col) {
			return nil, &ConfigurationError{Message: fmt.Sprintf("new column name %q collides with existing column", col)}
		}
	}

	numRows := table.NumRows()
	newCells := make([][]any, len(s.into))
	for i := range newCells {
		newCells[i] = make([]any, numRows)
	}
	for row := 0; row < numRows; row++ {
		cell := table.cells[sourceIndex][row]
		if cell == nil {
			continue // all parts stay nil
		}
		parts, err := s.splitValue(row, CellString(cell, ""))
		if err != nil {
			return nil, err
		}
		for i, part := range parts {
			newCells[i][row] = part
		}
	}

	cols := make([]string, 0, len(table.cols)-1+len(s.into))
	cells := make([][]any, 0, cap(cols))
	for i, col := range table.cols {
		if i == sourceIndex {
			cols = append(cols, s.into...)
			cells = append(cells, newCells...)
			continue
		}
		cols = append(cols, col)
		cells = append(cells, table.cells[i])
	}
	return NewTable(table.title, cols, cells...)
}

// splitValue splits one cell value into the target columns,
// applying the overflow and underflow policies.
// The returned parts can be shorter than the target columns
// under UnderflowFillRight, the missing columns stay nil.
func (s *Splitter) splitValue(row int, value string) ([]any, error) {
	fields := strings.Split(value, s.separator)
	switch {
	case len(fields) > len(s.into):
		switch s.overflow {
		case OverflowMerge:
			fields[len(s.into)-1] = strings.Join(fields[len(s.into)-1:], s.separator)
			fields = fields[:len(s.into)]
		case OverflowDrop:
			fields = fields[:len(s.into)]
		default:
			return nil, &TooManyPartsError{Row: row, Value: value, Parts: len(fields), Columns: len(s.into)}
		}
	case len(fields) < len(s.into):
		if s.underflow == UnderflowError {
			return nil, &TooFewPartsError{Row: row, Value: value, Parts: len(fields), Columns: len(s.into)}
		}
	}
	parts := make([]any, len(fields))
	for i, field := range fields {
		parts[i] = field
	}
	return parts, nil
}
