package reshape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWiderReshape(t *testing.T) {
	long := mustTable(t,
		[]string{"country", "year", "cases"},
		[]any{"Afghanistan", "Afghanistan", "Brazil", "Brazil"},
		[]any{"1999", "2000", "1999", "2000"},
		[]any{"745", "2666", "37737", "80488"},
	)

	wide, err := NewWider("year", "cases").Reshape(long)
	require.NoError(t, err)

	require.Equal(t, []string{"country", "1999", "2000"}, wide.Columns())
	require.Equal(t, 2, wide.NumRows())
	require.Equal(t, []any{"Afghanistan", "745", "2666"}, wide.Row(0))
	require.Equal(t, []any{"Brazil", "37737", "80488"}, wide.Row(1))
}

func TestWiderRoundTrip(t *testing.T) {
	wide := mustTable(t,
		[]string{"country", "1999", "2000"},
		[]any{"Afghanistan", "Brazil", "China"},
		[]any{"745", "37737", "212258"},
		[]any{"2666", "80488", "213766"},
	)

	long, err := NewLonger("year", "cases").
		WithIDColumns("country").
		Reshape(wide)
	require.NoError(t, err)

	back, err := NewWider("year", "cases").Reshape(long)
	require.NoError(t, err)
	require.True(t, wide.Equal(back), "wide -> long -> wide must reproduce the table\nwant:\n%s\ngot:\n%s", wide, back)
}

func TestWiderFillsMissing(t *testing.T) {
	long := mustTable(t,
		[]string{"country", "year", "cases"},
		[]any{"Afghanistan", "Brazil"},
		[]any{"1999", "2000"},
		[]any{"745", "80488"},
	)

	wide, err := NewWider("year", "cases").Reshape(long)
	require.NoError(t, err)
	require.Nil(t, wide.Cell(0, 2), "missing 2000 for Afghanistan")
	require.Nil(t, wide.Cell(1, 1), "missing 1999 for Brazil")

	filled, err := NewWider("year", "cases").WithFill("0").Reshape(long)
	require.NoError(t, err)
	require.Equal(t, "0", filled.Cell(0, 2))
}

func TestWiderDuplicateKey(t *testing.T) {
	long := mustTable(t,
		[]string{"country", "year", "cases"},
		[]any{"Brazil", "Brazil"},
		[]any{"1999", "1999"},
		[]any{"37737", "80488"},
	)

	_, err := NewWider("year", "cases").Reshape(long)
	var dupErr *DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	require.Equal(t, []any{"Brazil"}, dupErr.Key)
	require.Equal(t, "1999", dupErr.Name)
}

func TestWiderConfigurationErrors(t *testing.T) {
	long := mustTable(t,
		[]string{"country", "year", "cases"},
		[]any{"Brazil"},
		[]any{"country"}, // spread column name collides with id column
		[]any{"37737"},
	)
	tests := []struct {
		name  string
		wider *Wider
	}{
		{
			name:  "unknown name column",
			wider: NewWider("bad", "cases"),
		},
		{
			name:  "unknown value column",
			wider: NewWider("year", "bad"),
		},
		{
			name:  "name equals value",
			wider: NewWider("year", "year"),
		},
		{
			name:  "unknown id column",
			wider: NewWider("year", "cases").WithIDColumns("continent"),
		},
		{
			name:  "id column equals name column",
			wider: NewWider("year", "cases").WithIDColumns("year"),
		},
		{
			name:  "spread name collides with id column",
			wider: NewWider("year", "cases"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.wider.Reshape(long)
			var confErr *ConfigurationError
			require.ErrorAs(t, err, &confErr)
		})
	}
}

func TestWiderExplicitIDColumns(t *testing.T) {
	long := mustTable(t,
		[]string{"country", "note", "year", "cases"},
		[]any{"Brazil", "Brazil"},
		[]any{"a", "b"}, // not part of the grouping, gets dropped
		[]any{"1999", "2000"},
		[]any{"37737", "80488"},
	)

	wide, err := NewWider("year", "cases").
		WithIDColumns("country").
		Reshape(long)
	require.NoError(t, err)
	require.Equal(t, []string{"country", "1999", "2000"}, wide.Columns())
	require.Equal(t, 1, wide.NumRows())
}

func TestWiderGroupsByValueType(t *testing.T) {
	// the string "1" and the number 1 must form different groups
	long := mustTable(t,
		[]string{"id", "key", "value"},
		[]any{"1", int64(1)},
		[]any{"a", "a"},
		[]any{"x", "y"},
	)
	wide, err := NewWider("key", "value").Reshape(long)
	require.NoError(t, err)
	require.Equal(t, 2, wide.NumRows())
}
