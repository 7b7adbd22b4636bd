// Package exceltable reads and writes reshape.Table values
// as Excel spreadsheets (.xlsx, .xlsm, .xltm, .xltx)
// using the excelize library.
//
// The first row of a sheet is used as column names,
// empty rows and columns at the borders of the data range
// are trimmed, and the sheet name becomes the table title.
package exceltable

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-reshape"
)

// ReadSheet reads the named sheet into a Table.
// Empty cells and cells equal to one of the nullTokens
// become nil cells.
func ReadSheet(reader io.Reader, sheet string, nullTokens ...string) (table *reshape.Table, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return readSheet(f, sheet, nullTokens)
}

// ReadFirstSheet reads the first sheet of an Excel file into a Table.
func ReadFirstSheet(reader io.Reader, nullTokens ...string) (table *reshape.Table, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	return readSheet(f, sheet, nullTokens)
}

// Read reads all non-empty sheets of an Excel file,
// returning one Table per sheet with the sheet name as title.
// Empty sheets are skipped.
func Read(reader io.Reader, nullTokens ...string) (tables []*reshape.Table, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	for _, sheet := range f.GetSheetList() {
		table, err := readSheet(f, sheet, nullTokens)
		if err != nil {
			if errors.Is(err, ErrEmptySheet) {
				continue
			}
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func readSheet(f *excelize.File, sheet string, nullTokens []string) (*reshape.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	rows = trimEmptyBorder(rows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySheet, sheet)
	}
	return reshape.NewTableFromRows(sheet, rows, nullTokens...)
}

// trimEmptyBorder removes empty rows at the top and bottom
// and empty columns at the left and right of the data range.
func trimEmptyBorder(rows [][]string) [][]string {
	for len(rows) > 0 && rowIsEmpty(rows[0]) {
		rows = rows[1:]
	}
	for len(rows) > 0 && rowIsEmpty(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil
	}

	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	firstCol, lastCol := numCols, -1
	for _, row := range rows {
		for col, cell := range row {
			if cell == "" {
				continue
			}
			if col < firstCol {
				firstCol = col
			}
			if col > lastCol {
				lastCol = col
			}
		}
	}
	if lastCol < 0 {
		return nil
	}
	trimmed := make([][]string, len(rows))
	for i, row := range rows {
		if lastCol+1 < len(row) {
			row = row[:lastCol+1]
		}
		trimmed[i] = row[min(firstCol, len(row)):]
	}
	return trimmed
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
