package reshape

import "fmt"

// NameConversion controls how a Longer reshape
// treats the column names it moves into the name column.
type NameConversion int

const (
	// KeepStrings keeps the reshaped column names as strings.
	KeepStrings NameConversion = iota

	// ConvertNumbers converts every reshaped column name to a number
	// and fails with TypeConversionError if any name does not parse.
	ConvertNumbers

	// ConvertNumbersOrKeep converts the reshaped column names to numbers
	// if all of them parse, else keeps all of them as strings.
	ConvertNumbersOrKeep
)

func (c NameConversion) String() string {
	switch c {
	case KeepStrings:
		return "KeepStrings"
	case ConvertNumbers:
		return "ConvertNumbers"
	case ConvertNumbersOrKeep:
		return "ConvertNumbersOrKeep"
	default:
		return fmt.Sprintf("NameConversion(%d)", int(c))
	}
}

// Longer reshapes a wide table into long format.
//
// The configured id columns are held fixed.
// Every other column is melted away:
// its name becomes a value in the name column
// and its cells become values in the value column,
// one output row per input row and melted column.
type Longer struct {
	nameColumn  string
	valueColumn string
	idColumns   []string
	conversion  NameConversion
}

// NewLonger returns a Longer that reshapes
// all non-id columns into nameColumn/valueColumn pairs.
func NewLonger(nameColumn, valueColumn string) *Longer {
	return &Longer{
		nameColumn:  nameColumn,
		valueColumn: valueColumn,
		conversion:  KeepStrings,
	}
}

// WithIDColumns returns a new Longer that holds
// the passed columns fixed instead of reshaping them.
func (l *Longer) WithIDColumns(cols ...string) *Longer {
	mod := l.clone()
	mod.idColumns = cols
	return mod
}

// WithNameConversion returns a new Longer using the passed
// conversion for the values of the name column.
// The default is KeepStrings.
func (l *Longer) WithNameConversion(conversion NameConversion) *Longer {
	mod := l.clone()
	mod.conversion = conversion
	return mod
}

func (l *Longer) clone() *Longer {
	c := new(Longer)
	*c = *l
	return c
}

// Reshape melts table into long format.
//
// The output has the id columns followed by the name and value columns
// and NumRows() of the input times the number of melted columns rows.
// Rows are emitted in input row order with the melted columns
// in their table order within each input row.
func (l *Longer) Reshape(table *Table) (*Table, error) {
	if l.nameColumn == "" || l.valueColumn == "" {
		return nil, &ConfigurationError{Message: "name and value column names must not be empty"}
	}
	if l.nameColumn == l.valueColumn {
		return nil, &ConfigurationError{Message: fmt.Sprintf("name and value columns are both called %q", l.nameColumn)}
	}
	isID := make(map[string]bool, len(l.idColumns))
	for _, col := range l.idColumns {
		if !table.HasColumn(col) {
			return nil, &ConfigurationError{Message: fmt.Sprintf("id column %q not found in table", col)}
		}
		if col == l.nameColumn || col == l.valueColumn {
			return nil, &ConfigurationError{Message: fmt.Sprintf("column name %q collides with id column", col)}
		}
		isID[col] = true
	}

	var meltCols []int
	for i, col := range table.cols {
		if !isID[col] {
			meltCols = append(meltCols, i)
		}
	}
	if len(meltCols) == 0 {
		return nil, &ConfigurationError{Message: "no columns left to reshape"}
	}

	names, err := l.meltedNames(table, meltCols)
	if err != nil {
		return nil, err
	}

	numRows := table.NumRows() * len(meltCols)
	cols := make([]string, 0, len(l.idColumns)+2)
	cells := make([][]any, 0, len(l.idColumns)+2)

	// id columns keep their table order
	for i, col := range table.cols {
		if !isID[col] {
			continue
		}
		column := make([]any, 0, numRows)
		for row := 0; row < table.NumRows(); row++ {
			for range meltCols {
				column = append(column, table.cells[i][row])
			}
		}
		cols = append(cols, col)
		cells = append(cells, column)
	}

	nameCells := make([]any, 0, numRows)
	valueCells := make([]any, 0, numRows)
	for row := 0; row < table.NumRows(); row++ {
		for meltIndex, col := range meltCols {
			nameCells = append(nameCells, names[meltIndex])
			valueCells = append(valueCells, table.cells[col][row])
		}
	}
	cols = append(cols, l.nameColumn, l.valueColumn)
	cells = append(cells, nameCells, valueCells)

	return NewTable(table.title, cols, cells...)
}

// meltedNames returns the name column value for every melted column,
// applying the configured NameConversion.
func (l *Longer) meltedNames(table *Table, meltCols []int) ([]any, error) {
	names := make([]any, len(meltCols))
	for i, col := range meltCols {
		names[i] = table.cols[col]
	}
	if l.conversion == KeepStrings {
		return names, nil
	}
	converted := make([]any, len(names))
	for i, name := range names {
		num, err := coerceNumber(name)
		if err != nil {
			if l.conversion == ConvertNumbersOrKeep {
				return names, nil
			}
			return nil, &TypeConversionError{Column: l.nameColumn, Row: -1, Value: name}
		}
		converted[i] = num
	}
	return converted, nil
}
