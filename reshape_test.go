package reshape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPipeline reshapes a table whose column names encode
// a year and a variable, the typical messy wide layout:
// melt the observation columns, split the melted names,
// then spread the variables back into columns.
func TestPipeline(t *testing.T) {
	wide := mustTable(t,
		[]string{"country", "1960_life_expectancy", "1960_fertility"},
		[]any{"Brazil", "Niger"},
		[]any{"54.7", "35.6"},
		[]any{"6.1", "7.5"},
	)

	long, err := NewLonger("key", "value").
		WithIDColumns("country").
		Reshape(wide)
	require.NoError(t, err)
	require.Equal(t, 4, long.NumRows())

	split, err := NewSplitter("key", "year", "variable").Split(long)
	require.NoError(t, err)
	require.Equal(t, []string{"country", "year", "variable", "value"}, split.Columns())
	require.Equal(t, []any{"Brazil", "1960", "life_expectancy", "54.7"}, split.Row(0))

	tidy, err := NewWider("variable", "value").Reshape(split)
	require.NoError(t, err)
	require.Equal(t, []string{"country", "year", "life_expectancy", "fertility"}, tidy.Columns())
	require.Equal(t, []any{"Brazil", "1960", "54.7", "6.1"}, tidy.Row(0))
	require.Equal(t, []any{"Niger", "1960", "35.6", "7.5"}, tidy.Row(1))
}
