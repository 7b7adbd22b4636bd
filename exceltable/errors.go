package exceltable

import (
	"errors"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet indicates a sheet without any data
// after trimming empty border rows and columns.
var ErrEmptySheet = errors.New("empty sheet")

// ErrSheetNotExist is re-exported from excelize and indicates
// that a requested sheet name does not exist in the file.
type ErrSheetNotExist = excelize.ErrSheetNotExist
