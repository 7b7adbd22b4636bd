package csvtable

import (
	"context"
	"strings"

	"github.com/ungerik/go-fs"

	"github.com/domonda/go-reshape"
)

// ReadFile reads a delimited text file into a Table
// with automatic format detection.
//
// The file name without extension becomes the table title.
// If config is nil, NewDefaultFormatDetectionConfig() is used.
func ReadFile(ctx context.Context, file fs.FileReader, config *FormatDetectionConfig, nullTokens ...string) (table *reshape.Table, format *Format, err error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	table, format, err = ParseDetectFormat(data, config, nullTokens...)
	if err != nil {
		return nil, format, err
	}
	title := strings.TrimSuffix(file.Name(), file.Ext())
	return table.WithTitle(title), format, nil
}

// WriteFile writes a Table as delimited text file in the passed format
// with nil cells rendered as nullToken.
func WriteFile(ctx context.Context, file fs.File, table *reshape.Table, format *Format, nullToken string) error {
	data, err := Write(table, format, nullToken)
	if err != nil {
		return err
	}
	return file.WriteAllContext(ctx, data)
}
