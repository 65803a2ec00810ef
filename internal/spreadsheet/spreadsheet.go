// Package spreadsheet handles the Excel side of a reconciliation run:
// parsing a marketplace export worksheet past its header rows, and
// writing reconciled rows back into the original workbook so that
// formatting, extra sheets and header content survive untouched.
package spreadsheet

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jugandoyeducando/marketmaster/pkg/errors"
)

// Read opens an xlsx workbook and returns the raw rows of the given
// sheet after skipping skipRows header rows. An empty sheet name means
// the first sheet of the workbook; a named sheet that does not exist is
// a malformed-input failure for the whole run.
func Read(path, sheet string, skipRows int) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParseError("xlsx", path, err.Error(), err)
	}
	defer f.Close()

	name := sheet
	if name == "" {
		name = f.GetSheetName(0)
		if name == "" {
			return nil, errors.NewParseError("xlsx", path, "workbook has no sheets", nil)
		}
	} else if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, &errors.SchemaError{Sheet: name, Message: "not found in workbook"}
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, errors.NewParseError("xlsx", path, err.Error(), err)
	}

	if skipRows >= len(rows) {
		return nil, nil
	}
	return rows[skipRows:], nil
}

// WriteTemplate writes reconciled rows into a copy of the source
// workbook, starting at startRow (1-based, the row just past the
// template's header block). Cells in numericCols are written as numbers
// when they parse cleanly; every other cell is written back verbatim as
// text, so a pass-through value like a zero-padded SKU survives exactly
// as uploaded. The output is assembled under a temporary name and
// renamed into place on success only.
func WriteTemplate(srcPath, dstPath, sheet string, startRow int, rows [][]string, numericCols map[int]bool) error {
	f, err := excelize.OpenFile(srcPath)
	if err != nil {
		return errors.NewParseError("xlsx", srcPath, err.Error(), err)
	}
	defer f.Close()

	name := sheet
	if name == "" {
		name = f.GetSheetName(0)
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, startRow+i)
			if err != nil {
				return errors.NewIOError("write", dstPath, err)
			}
			if numericCols[j] {
				err = f.SetCellValue(name, cell, cellValue(value))
			} else {
				err = f.SetCellStr(name, cell, value)
			}
			if err != nil {
				return errors.NewIOError("write", dstPath, err)
			}
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dstPath), ".marketmaster-*.xlsx")
	if err != nil {
		return errors.WrapIO("create", dstPath, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := f.SaveAs(tmpPath); err != nil {
		return errors.WrapIO("write", dstPath, err)
	}
	if err := os.Rename(tmpPath, dstPath); err != nil {
		return errors.WrapIO("rename", dstPath, err)
	}
	return nil
}

// cellValue keeps numeric cells numeric: marketplace templates validate
// price and quantity columns as numbers, so a value that parses cleanly
// is written as a float rather than a string.
func cellValue(v string) any {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	return v
}
