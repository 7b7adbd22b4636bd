package csvtable

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-reshape"
)

// ParseDetectFormat parses delimited text data into a Table
// with automatic detection of encoding, separator, and line endings.
//
// The first parsed row is used as column names.
// Rows with only empty fields are dropped.
// Empty fields and fields equal to one of the nullTokens
// become nil cells.
//
// If config is nil, NewDefaultFormatDetectionConfig() is used.
func ParseDetectFormat(data []byte, config *FormatDetectionConfig, nullTokens ...string) (table *reshape.Table, format *Format, err error) {
	if config == nil {
		config = NewDefaultFormatDetectionConfig()
	}
	data, format, err = detectFormat(data, config)
	if err != nil {
		return nil, format, err
	}
	table, err = parse(data, format.Separator[0], nullTokens)
	return table, format, err
}

// ParseWithFormat parses delimited text data into a Table
// using an explicitly specified format.
//
// A "sep=X" header line is accepted if it declares
// the same separator as the format.
// See ParseDetectFormat for how rows and fields
// are turned into the Table.
func ParseWithFormat(data []byte, format *Format, nullTokens ...string) (*reshape.Table, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if format.Encoding == "UTF-8" {
		data = charset.TrimBOM(data, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, err
		}
	}
	data = bytes.ToValidUTF8(data, []byte("�"))

	if line, rest, _ := bytes.Cut(data, []byte(format.Newline)); len(line) > 0 {
		if headerSep := parseSepHeaderLine(line); headerSep != "" {
			if headerSep != format.Separator {
				return nil, fmt.Errorf("separator %q in header line is different from format.Separator %q", headerSep, format.Separator)
			}
			data = rest
		}
	}

	return parse(data, format.Separator[0], nullTokens)
}

// detectFormat detects encoding, line ending, and separator
// and returns the data decoded to valid UTF-8,
// with a potential "sep=X" header line removed.
func detectFormat(data []byte, config *FormatDetectionConfig) (utf8Data []byte, format *Format, err error) {
	format = new(Format)

	var encodings []charset.Encoding
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
		encodings = append(encodings, enc)
	}
	data, format.Encoding, err = charset.AutoDecode(data, encodings, config.EncodingTests)
	if err != nil {
		return nil, nil, err
	}
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	data = bytes.ToValidUTF8(data, []byte("�"))

	// Prefer \r\n when present because that's the RFC 4180 standard
	if bytes.Contains(data, []byte("\r\n")) {
		format.Newline = "\r\n"
	} else {
		format.Newline = "\n"
	}

	if line, rest, _ := bytes.Cut(data, []byte(format.Newline)); len(line) > 0 {
		if format.Separator = parseSepHeaderLine(line); format.Separator != "" {
			return rest, format, nil
		}
	}

	var commas, semicolons, tabs int
	for _, line := range bytes.Split(data, []byte(format.Newline)) {
		line = bytes.Trim(line, "\r\n")
		commas += bytes.Count(line, []byte{','})
		semicolons += bytes.Count(line, []byte{';'})
		tabs += bytes.Count(line, []byte{'\t'})
	}
	switch {
	case semicolons > commas && semicolons > tabs:
		format.Separator = ";"
	case tabs > commas && tabs > semicolons:
		format.Separator = "\t"
	default:
		format.Separator = ","
	}

	return data, format, nil
}

// parseSepHeaderLine recognizes Excel style "sep=X" or "SEP=X"
// separator declaration lines, optionally enclosed in double quotes,
// and returns the declared separator
// or "" if the line is not a separator declaration.
func parseSepHeaderLine(line []byte) (sep string) {
	line = bytes.Trim(line, "\r\n")
	if len(line) == 7 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:])
}

// parse scans UTF-8 data into fields and rows and builds a Table.
// Quoted fields can contain separators, newlines,
// and doubled quotes per RFC 4180.
func parse(data []byte, sep byte, nullTokens []string) (*reshape.Table, error) {
	var (
		rows     [][]string
		row      []string
		field    []byte
		inQuotes bool
	)
	flushField := func() {
		row = append(row, string(field))
		field = field[:0]
	}
	flushRow := func() {
		flushField()
		rows = append(rows, row)
		row = nil
	}
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case inQuotes:
			if c != '"' {
				if c == '\r' && i+1 < len(data) && data[i+1] == '\n' {
					c = '\n' // normalize embedded line endings
					i++
				}
				field = append(field, c)
				continue
			}
			if i+1 < len(data) && data[i+1] == '"' {
				field = append(field, '"') // escaped quote
				i++
			} else {
				inQuotes = false
			}
		case c == '"' && len(field) == 0:
			inQuotes = true
		case c == sep:
			flushField()
		case c == '\r' || c == '\n':
			if c == '\r' && i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			flushRow()
		default:
			field = append(field, c)
		}
	}
	if inQuotes {
		return nil, errors.New("unclosed quote at end of data")
	}
	if len(field) > 0 || len(row) > 0 {
		flushRow()
	}
	return reshape.NewTableFromRows("", removeEmptyRows(rows), nullTokens...)
}

// removeEmptyRows removes rows where all fields are empty.
func removeEmptyRows(rows [][]string) [][]string {
	result := rows[:0]
rowLoop:
	for _, row := range rows {
		for _, field := range row {
			if field != "" {
				result = append(result, row)
				continue rowLoop
			}
		}
	}
	return result
}
