// Package dataio reads and writes sales datasets as CSV or XLSX files.
package dataio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Veraticus/salesprep/internal/model"
)

// ErrUnsupportedFormat is returned for file extensions other than .csv and .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoHeader is returned for inputs without a header row.
var ErrNoHeader = errors.New("missing header row")

// missingMarkers are cell texts read as absent values.
var missingMarkers = map[string]struct{}{
	"":     {},
	"NaN":  {},
	"nan":  {},
	"NA":   {},
	"N/A":  {},
	"NULL": {},
	"null": {},
	"None": {},
}

// ParseCell converts a raw cell into a Value according to the column type.
// Cells that do not parse as their column's type are kept as text so that
// validators can report them as type mismatches.
func ParseCell(raw string, typ model.ColumnType) model.Value {
	s := strings.TrimSpace(raw)
	if _, missing := missingMarkers[s]; missing {
		return model.Missing()
	}

	switch typ {
	case model.ColumnTypeNumber:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return model.Number(f)
		}
	case model.ColumnTypeBool:
		if b, ok := parseBool(s); ok {
			return model.Bool(b)
		}
	}
	return model.String(raw)
}

// InferCell converts a raw cell of an unknown column, trying bool, then
// number, then text.
func InferCell(raw string) model.Value {
	s := strings.TrimSpace(raw)
	if _, missing := missingMarkers[s]; missing {
		return model.Missing()
	}
	if b, ok := parseBool(s); ok {
		return model.Bool(b)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return model.Number(f)
	}
	return model.String(raw)
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	default:
		return false, false
	}
}

// Schema maps column names to types. Columns it does not list are inferred.
type Schema map[string]model.ColumnType

func (s Schema) parse(column, raw string) model.Value {
	if typ, ok := s[column]; ok {
		return ParseCell(raw, typ)
	}
	return InferCell(raw)
}

// fromRows builds a dataset from a header and string rows. Short rows are
// padded with missing cells.
func fromRows(header []string, rows [][]string, schema Schema) (*model.Dataset, error) {
	if len(header) == 0 {
		return nil, ErrNoHeader
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	ds, err := model.NewDataset(header...)
	if err != nil {
		return nil, err
	}
	for n, raw := range rows {
		if len(raw) > len(header) {
			return nil, fmt.Errorf("line %d: %w: %d fields for %d columns", n+2, model.ErrRowShape, len(raw), len(header))
		}
		vals := make([]model.Value, len(header))
		for j, name := range header {
			if j < len(raw) {
				vals[j] = schema.parse(name, raw[j])
			}
		}
		if err := ds.AppendRow(vals...); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// Read loads a dataset from a .csv or .xlsx file. XLSX files are read from
// their first sheet.
func Read(path string, schema Schema) (*model.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVFile(path, schema)
	case ".xlsx":
		return ReadXLSX(path, "", schema)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Write saves a dataset to a .csv or .xlsx file.
func Write(path string, ds *model.Dataset) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSVFile(path, ds)
	case ".xlsx":
		return WriteXLSX(path, "", ds)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
