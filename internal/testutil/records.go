// Package testutil provides builders and fixtures for sales datasets used in
// tests across the module.
//
// Example:
//
//	ds := testutil.NewRecords(t).
//		Add(testutil.ValidRecord()).
//		Add(testutil.ValidRecord().With(model.ColumnQuantity, model.Number(-1))).
//		Build()
package testutil

import (
	"testing"
	"time"

	"github.com/Veraticus/salesprep/internal/model"
)

// Record is one sales record keyed by column name. Absent keys are missing.
type Record map[string]model.Value

// ValidRecord returns a record that passes every check against
// StandardPrices.
func ValidRecord() Record {
	return Record{
		model.ColumnTransactionID:   model.String("TXN_1234567"),
		model.ColumnCustomerID:      model.String("CUST_01"),
		model.ColumnCategory:        model.String("Food"),
		model.ColumnItem:            model.String("Item_1_FOOD"),
		model.ColumnPricePerUnit:    model.Number(10),
		model.ColumnQuantity:        model.Number(4),
		model.ColumnTotalSpent:      model.Number(40),
		model.ColumnPaymentMethod:   model.String("Cash"),
		model.ColumnLocation:        model.String("Online"),
		model.ColumnTransactionDate: model.String("2024-01-15"),
		model.ColumnDiscountApplied: model.Bool(false),
	}
}

// With returns a copy of r with column set to v.
func (r Record) With(column string, v model.Value) Record {
	out := make(Record, len(r)+1)
	for k, val := range r {
		out[k] = val
	}
	out[column] = v
	return out
}

// Without returns a copy of r with column missing.
func (r Record) Without(column string) Record {
	return r.With(column, model.Missing())
}

// Row returns r as a standalone row view.
func (r Record) Row() model.Row {
	return model.RowOf(r)
}

// RecordBuilder accumulates records into a dataset with the standard columns.
type RecordBuilder struct {
	t       *testing.T
	columns []string
	records []Record
}

// NewRecords starts a builder over model.RecordColumns.
func NewRecords(t *testing.T) *RecordBuilder {
	t.Helper()
	return &RecordBuilder{t: t, columns: model.RecordColumns}
}

// WithColumns overrides the dataset's column list.
func (b *RecordBuilder) WithColumns(columns ...string) *RecordBuilder {
	b.columns = columns
	return b
}

// Add appends records.
func (b *RecordBuilder) Add(records ...Record) *RecordBuilder {
	b.records = append(b.records, records...)
	return b
}

// Build creates the dataset or fails the test.
func (b *RecordBuilder) Build() *model.Dataset {
	b.t.Helper()
	ds, err := model.NewDataset(b.columns...)
	if err != nil {
		b.t.Fatalf("failed to create dataset: %v", err)
	}
	for i, r := range b.records {
		row := make(map[string]model.Value, len(b.columns))
		for _, col := range b.columns {
			row[col] = r[col]
		}
		if err := ds.AppendRecord(row); err != nil {
			b.t.Fatalf("failed to append record %d: %v", i, err)
		}
	}
	return ds
}

// Day parses a YYYY-MM-DD date or panics.
func Day(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// StandardPrices is a small reference price table matching ValidRecord.
func StandardPrices() model.PriceTable {
	return model.PriceTable{
		{Item: "Item_1_FOOD", Start: Day("2024-01-01"), End: Day("2024-01-31"), Price: 10},
		{Item: "Item_1_FOOD", Start: Day("2024-02-01"), End: Day("2024-02-29"), Price: 12},
		{Item: "Item_12_PAT", Start: Day("2024-01-01"), End: Day("2024-12-31"), Price: 5},
		{Item: "Item_3_BEV", Start: Day("2024-01-01"), End: Day("2024-12-31"), Price: 2.5},
	}
}

// PriceDataset lays out a price table with the reference price columns.
func PriceDataset(t *testing.T, table model.PriceTable) *model.Dataset {
	t.Helper()
	ds := model.MustDataset(model.PriceColumnItem, model.PriceColumnStartDate, model.PriceColumnEndDate, model.PriceColumnPrice)
	for _, p := range table {
		if err := ds.AppendRow(
			model.String(p.Item),
			model.String(p.Start.Format(model.DateLayout)),
			model.String(p.End.Format(model.DateLayout)),
			model.Number(p.Price),
		); err != nil {
			t.Fatalf("failed to append price for %s: %v", p.Item, err)
		}
	}
	return ds
}
