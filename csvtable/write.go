package csvtable

import (
	"bytes"
	"strings"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-reshape"
)

// Write serializes a Table as delimited text in the passed format,
// with the column names as first row
// and nil cells rendered as nullToken.
//
// Fields containing the separator, quotes, or newlines are quoted,
// with quotes escaped by doubling per RFC 4180.
// The result is encoded to the format's character encoding.
func Write(table *reshape.Table, format *Format, nullToken string) ([]byte, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	writeRow(&b, table.Columns(), format)
	for _, row := range table.Strings(nullToken) {
		writeRow(&b, row, format)
	}
	if format.Encoding == "UTF-8" {
		return b.Bytes(), nil
	}
	enc, err := charset.GetEncoding(format.Encoding)
	if err != nil {
		return nil, err
	}
	return enc.Encode(b.Bytes())
}

func writeRow(b *bytes.Buffer, fields []string, format *Format) {
	for i, field := range fields {
		if i > 0 {
			b.WriteString(format.Separator)
		}
		writeField(b, field, format.Separator)
	}
	b.WriteString(format.Newline)
}

func writeField(b *bytes.Buffer, field, separator string) {
	if !strings.ContainsAny(field, separator+"\"\r\n") {
		b.WriteString(field)
		return
	}
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(field, `"`, `""`))
	b.WriteByte('"')
}
