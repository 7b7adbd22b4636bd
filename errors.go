package reshape

import "fmt"

// ConfigurationError indicates invalid or colliding column names
// or an otherwise unusable operation configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// DuplicateKeyError indicates that a long to wide reshape
// found more than one value for the same combination
// of id column values and name column value,
// making the fill of the widened cell ambiguous.
type DuplicateKeyError struct {
	Key  []any  // id column values of the ambiguous group
	Name string // name column value of the ambiguous cell
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for name %q of group key %v", e.Name, e.Key)
}

// TooManyPartsError indicates that splitting a cell value
// produced more parts than target columns
// under the OverflowError policy.
type TooManyPartsError struct {
	Row     int
	Value   string
	Parts   int
	Columns int
}

func (e *TooManyPartsError) Error() string {
	return fmt.Sprintf("splitting %q in row %d produced %d parts for %d columns", e.Value, e.Row, e.Parts, e.Columns)
}

// TooFewPartsError indicates that splitting a cell value
// produced fewer parts than target columns
// under the UnderflowError policy.
type TooFewPartsError struct {
	Row     int
	Value   string
	Parts   int
	Columns int
}

func (e *TooFewPartsError) Error() string {
	return fmt.Sprintf("splitting %q in row %d produced only %d parts for %d columns", e.Value, e.Row, e.Parts, e.Columns)
}

// TypeConversionError indicates a cell value
// that could not be converted to the requested type.
// Row is -1 when the value did not come from a table row.
type TypeConversionError struct {
	Column string
	Row    int
	Value  any
}

func (e *TypeConversionError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("can't convert value %#v for column %q to a number", e.Value, e.Column)
	}
	return fmt.Sprintf("can't convert value %#v in row %d of column %q to a number", e.Value, e.Row, e.Column)
}
