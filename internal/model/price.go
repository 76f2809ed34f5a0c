package model

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used throughout sales data.
const DateLayout = "2006-01-02"

// Reference price table columns.
const (
	PriceColumnItem      = "Item"
	PriceColumnStartDate = "Start_date"
	PriceColumnEndDate   = "End_date"
	PriceColumnPrice     = "Price Per Unit"
)

// ErrEmptyReferenceTable is returned when a price check is requested against
// a reference table with no rows.
var ErrEmptyReferenceTable = errors.New("reference price table is empty")

// PriceInterval is the authoritative unit price of an item between two dates,
// both inclusive.
type PriceInterval struct {
	Start time.Time
	End   time.Time
	Item  string
	Price float64
}

// Contains reports whether day falls inside the interval.
func (p PriceInterval) Contains(day time.Time) bool {
	return !day.Before(p.Start) && !day.After(p.End)
}

// Validate checks that the interval is well formed.
func (p PriceInterval) Validate() error {
	if p.Item == "" {
		return fmt.Errorf("item is required")
	}
	if p.End.Before(p.Start) {
		return fmt.Errorf("end date %s is before start date %s", p.End.Format(DateLayout), p.Start.Format(DateLayout))
	}
	return nil
}

// PriceTable is the reference price list. Intervals for one item may overlap.
type PriceTable []PriceInterval

// PriceIndex groups a price table by item so per-row lookups do not scan the
// whole table.
type PriceIndex struct {
	byItem map[string][]PriceInterval
}

// NewPriceIndex indexes the table by item.
func NewPriceIndex(table PriceTable) (*PriceIndex, error) {
	if len(table) == 0 {
		return nil, ErrEmptyReferenceTable
	}
	idx := &PriceIndex{byItem: make(map[string][]PriceInterval)}
	for _, p := range table {
		idx.byItem[p.Item] = append(idx.byItem[p.Item], p)
	}
	return idx, nil
}

// HasItem reports whether the item has any reference rows.
func (x *PriceIndex) HasItem(item string) bool {
	_, ok := x.byItem[item]
	return ok
}

// PricesOn returns every reference price for the item whose interval
// contains day, in table order.
func (x *PriceIndex) PricesOn(item string, day time.Time) []float64 {
	var prices []float64
	for _, p := range x.byItem[item] {
		if p.Contains(day) {
			prices = append(prices, p.Price)
		}
	}
	return prices
}
