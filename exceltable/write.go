package exceltable

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-reshape"
)

// WriteSheet writes a Table as Excel file with a single sheet,
// the column names as first row,
// and nil cells rendered as nullToken.
func WriteSheet(w io.Writer, table *reshape.Table, sheet, nullToken string) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	err = f.SetSheetName("Sheet1", sheet)
	if err != nil {
		return err
	}
	err = setRow(f, sheet, 1, table.Columns())
	if err != nil {
		return err
	}
	for i, row := range table.Strings(nullToken) {
		err = setRow(f, sheet, i+2, row)
		if err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, cells []string) error {
	cellName, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cellName, &cells)
}
