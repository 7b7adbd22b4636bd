package csvtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantSep  string
		wantNL   string
		wantCols []string
		wantRows int
	}{
		{
			name:     "comma and LF",
			data:     "country,year,cases\nBrazil,1999,37737\nChina,1999,212258\n",
			wantSep:  ",",
			wantNL:   "\n",
			wantCols: []string{"country", "year", "cases"},
			wantRows: 2,
		},
		{
			name:     "semicolon and CRLF",
			data:     "country;year\r\nBrazil;1999\r\n",
			wantSep:  ";",
			wantNL:   "\r\n",
			wantCols: []string{"country", "year"},
			wantRows: 1,
		},
		{
			name:     "tab separated",
			data:     "country\tyear\nBrazil\t1999\n",
			wantSep:  "\t",
			wantNL:   "\n",
			wantCols: []string{"country", "year"},
			wantRows: 1,
		},
		{
			name:     "sep header line",
			data:     "sep=;\ncountry;year\nBrazil;1999\n",
			wantSep:  ";",
			wantNL:   "\n",
			wantCols: []string{"country", "year"},
			wantRows: 1,
		},
		{
			name:     "empty lines are dropped",
			data:     "a,b\n\n1,2\n\n",
			wantSep:  ",",
			wantNL:   "\n",
			wantCols: []string{"a", "b"},
			wantRows: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, format, err := ParseDetectFormat([]byte(tt.data), nil)
			require.NoError(t, err)
			require.Equal(t, tt.wantSep, format.Separator)
			require.Equal(t, tt.wantNL, format.Newline)
			require.Equal(t, "UTF-8", format.Encoding)
			require.Equal(t, tt.wantCols, table.Columns())
			require.Equal(t, tt.wantRows, table.NumRows())
		})
	}
}

func TestParseQuotedFields(t *testing.T) {
	data := "name,quote\r\n" +
		"\"Doe, John\",\"said \"\"hi\"\"\r\nand left\"\r\n"
	table, err := ParseWithFormat([]byte(data), NewFormat(","))
	require.NoError(t, err)
	require.Equal(t, 1, table.NumRows())
	require.Equal(t, "Doe, John", table.Cell(0, 0), "quoted separator stays in field")
	require.Equal(t, "said \"hi\"\nand left", table.Cell(0, 1), "escaped quotes and embedded newline")
}

func TestParseNullTokens(t *testing.T) {
	data := "a,b,c\n1,,NA\n"
	table, err := ParseWithFormat([]byte(data), &Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"}, "NA")
	require.NoError(t, err)
	require.Equal(t, "1", table.Cell(0, 0))
	require.Nil(t, table.Cell(0, 1), "empty field")
	require.Nil(t, table.Cell(0, 2), "null token field")
}

func TestParseUnclosedQuote(t *testing.T) {
	_, err := ParseWithFormat([]byte("a\n\"unclosed\n"), NewFormat(","))
	require.Error(t, err)
}

func TestParseSepHeaderMismatch(t *testing.T) {
	_, err := ParseWithFormat([]byte("sep=;\r\na,b\r\n"), NewFormat(","))
	require.Error(t, err)
}

func TestWriteParseRoundTrip(t *testing.T) {
	data := "country,year,note\r\nBrazil,1999,\"has, comma\"\r\nChina,2000,NA\r\n"
	format := NewFormat(",")

	table, err := ParseWithFormat([]byte(data), format, "NA")
	require.NoError(t, err)
	require.Nil(t, table.Cell(1, 2))

	written, err := Write(table, format, "NA")
	require.NoError(t, err)
	require.Equal(t, data, string(written))
}

func TestFormatValidate(t *testing.T) {
	tests := []struct {
		name    string
		format  *Format
		wantErr bool
	}{
		{name: "valid", format: NewFormat(";")},
		{name: "nil", format: nil, wantErr: true},
		{name: "missing encoding", format: &Format{Separator: ",", Newline: "\n"}, wantErr: true},
		{name: "missing separator", format: &Format{Encoding: "UTF-8", Newline: "\n"}, wantErr: true},
		{name: "multi char separator", format: &Format{Encoding: "UTF-8", Separator: ",,", Newline: "\n"}, wantErr: true},
		{name: "bad newline", format: &Format{Encoding: "UTF-8", Separator: ",", Newline: "x"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
