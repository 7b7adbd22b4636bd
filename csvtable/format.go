// Package csvtable reads and writes reshape.Table values
// as delimited text with automatic format detection.
//
// Detection covers the character encoding (via go-types/charset),
// the line ending, the separator (comma, semicolon, or tab
// by frequency count), and an Excel style "sep=X" header line.
// Parsing handles quoted fields per RFC 4180 including
// embedded separators, newlines, and doubled quotes.
package csvtable

import (
	"errors"
	"fmt"
)

// Format describes the encoding and structure of delimited text data.
type Format struct {
	// Encoding is the character encoding name,
	// e.g. "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252".
	Encoding string `json:"encoding"`

	// Separator is the field separator, must be a single character.
	Separator string `json:"separator"`

	// Newline is the line ending, one of "\n", "\r\n", "\n\r".
	Newline string `json:"newline"`
}

// NewFormat returns a Format with the passed separator,
// UTF-8 encoding, and "\r\n" line endings per RFC 4180.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate returns an error describing the first invalid field
// of the Format, or nil if the Format is valid.
// It can be called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Newline != "\n" && f.Newline != "\r\n" && f.Newline != "\n\r":
		return fmt.Errorf("invalid csvtable.Format.Newline: %q", f.Newline)
	}
	return nil
}

// FormatDetectionConfig configures automatic format detection.
type FormatDetectionConfig struct {
	// Encodings are the character encodings to test in priority order.
	Encodings []string `json:"encodings"`

	// EncodingTests are strings with characters that decode differently
	// across the tested encodings, used to validate the detection.
	EncodingTests []string `json:"encodingTests"`
}

// NewDefaultFormatDetectionConfig returns a FormatDetectionConfig
// covering UTF-8, UTF-16LE, and the common western European
// single byte encodings, validated with umlaut, currency,
// and Cyrillic test characters.
func NewDefaultFormatDetectionConfig() *FormatDetectionConfig {
	return &FormatDetectionConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß",
			"§", "€",
			"д", "Д", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}
