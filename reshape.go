// Package reshape converts tabular data between wide and long layouts
// and splits or unites columns of an in-memory Table.
//
// All operations are pure single-pass transforms:
// they consume a Table and return a new Table
// or an error without partial results.
// Operation defaults are explicit package constants,
// overridable per call via With methods,
// never ambient state.
package reshape

const (
	// DefaultSeparator is the separator used by Splitter and Uniter
	// when none is configured with WithSeparator.
	DefaultSeparator = "_"

	// DefaultNullToken is the textual rendering of nil cells
	// used by Uniter and serialization
	// when none is configured with WithNullToken.
	DefaultNullToken = "NA"
)
