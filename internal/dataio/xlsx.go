package dataio

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/salesprep/internal/model"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name used when writing workbooks.
const DefaultSheet = "Sheet1"

// ReadXLSX loads a dataset from one sheet of a workbook. An empty sheet name
// selects the first sheet. The first row is the header.
func ReadXLSX(path, sheet string, schema Schema) (*model.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}

	slog.Debug("Read workbook sheet", "path", path, "sheet", sheet, "rows", len(rows)-1)
	return fromRows(rows[0], rows[1:], schema)
}

// WriteXLSX saves the dataset as a single-sheet workbook. Numbers and bools
// are written as native cell types; missing cells are left blank.
func WriteXLSX(path, sheet string, ds *model.Dataset) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	header := make([]interface{}, 0, len(ds.Columns()))
	for _, name := range ds.Columns() {
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	width := len(header)
	for i := 0; i < ds.Len(); i++ {
		cells := make([]interface{}, width)
		for j := 0; j < width; j++ {
			cells[j] = nativeCell(ds.At(i, j))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func nativeCell(v model.Value) interface{} {
	if v.IsMissing() {
		return nil
	}
	if f, ok := v.Float(); ok {
		return f
	}
	if b, ok := v.Flag(); ok {
		return b
	}
	return v.String()
}
