package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/salesprep/internal/model"
)

// ReadCSV parses a CSV stream with a header row.
func ReadCSV(r io.Reader, schema Schema) (*model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}
	return fromRows(header, rows, schema)
}

// ReadCSVFile opens and parses a CSV file.
func ReadCSVFile(path string, schema Schema) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := ReadCSV(f, schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// WriteCSV writes the dataset with a header row. Missing cells are empty.
func WriteCSV(w io.Writer, ds *model.Dataset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ds.Columns()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(ds.Columns()))
	for i := 0; i < ds.Len(); i++ {
		for j := range record {
			record[j] = ds.At(i, j).String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile creates or truncates path and writes the dataset to it.
func WriteCSVFile(path string, ds *model.Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, ds)
}
