package dataio

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/salesprep/internal/model"
)

// RecordSchema is the parsing schema for sales record files.
func RecordSchema() Schema {
	s := make(Schema, len(model.RecordSchema))
	for k, v := range model.RecordSchema {
		s[k] = v
	}
	return s
}

// PriceSchema is the parsing schema for reference price files.
func PriceSchema() Schema {
	return Schema{
		model.PriceColumnItem:      model.ColumnTypeText,
		model.PriceColumnStartDate: model.ColumnTypeText,
		model.PriceColumnEndDate:   model.ColumnTypeText,
		model.PriceColumnPrice:     model.ColumnTypeNumber,
	}
}

// ReadPriceTable converts a tabular reference price list into a PriceTable.
// Every row must carry an item, both dates and a numeric price.
func ReadPriceTable(ds *model.Dataset) (model.PriceTable, error) {
	if err := ds.Require(model.PriceColumnItem, model.PriceColumnStartDate, model.PriceColumnEndDate, model.PriceColumnPrice); err != nil {
		return nil, err
	}

	table := make(model.PriceTable, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		item := row.Get(model.PriceColumnItem)
		if item.IsMissing() {
			return nil, fmt.Errorf("price row %d: missing item", i)
		}
		start, err := parseDay(row.Get(model.PriceColumnStartDate))
		if err != nil {
			return nil, fmt.Errorf("price row %d: start date: %w", i, err)
		}
		end, err := parseDay(row.Get(model.PriceColumnEndDate))
		if err != nil {
			return nil, fmt.Errorf("price row %d: end date: %w", i, err)
		}
		price, ok := row.Get(model.PriceColumnPrice).Float()
		if !ok {
			return nil, fmt.Errorf("price row %d: price %q is not a number", i, row.Get(model.PriceColumnPrice).String())
		}

		p := model.PriceInterval{Item: item.String(), Start: start, End: end, Price: price}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("price row %d: %w", i, err)
		}
		table = append(table, p)
	}
	return table, nil
}

// LoadPriceTable reads a reference price file.
func LoadPriceTable(path string) (model.PriceTable, error) {
	ds, err := Read(path, PriceSchema())
	if err != nil {
		return nil, err
	}
	return ReadPriceTable(ds)
}

// parseDay accepts YYYY-MM-DD, optionally followed by a time of day that is
// discarded.
func parseDay(v model.Value) (time.Time, error) {
	if v.IsMissing() {
		return time.Time{}, fmt.Errorf("missing")
	}
	s := strings.TrimSpace(v.String())
	if len(s) > len(model.DateLayout) {
		s = s[:len(model.DateLayout)]
	}
	return time.Parse(model.DateLayout, s)
}
