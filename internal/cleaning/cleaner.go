// Package cleaning fills missing values in sales records with deterministic
// fallback rules.
package cleaning

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/salesprep/internal/model"
)

// RequiredColumns lists the attributes Clean reads or fills.
var RequiredColumns = []string{
	model.ColumnPricePerUnit,
	model.ColumnTotalSpent,
	model.ColumnQuantity,
	model.ColumnItem,
	model.ColumnDiscountApplied,
}

// Clean returns an imputed copy of ds. The steps run in a fixed order and
// each one sees the values filled by the previous step:
//
//  1. missing Price Per Unit = Total Spent / Quantity
//  2. missing Item = first Item seen at the same Price Per Unit
//  3. missing Quantity = mean Quantity of rows with the same Item
//  4. Total Spent = Price Per Unit * Quantity for every row
//  5. missing Discount Applied = false
func Clean(ds *model.Dataset) (*model.Dataset, error) {
	if err := ds.Require(RequiredColumns...); err != nil {
		return nil, err
	}
	out := ds.Clone()
	cols := columnsOf(out)

	filled := fillPrice(out, cols)
	slog.Debug("Filled prices", "rows", filled)

	filled = fillItem(out, cols)
	slog.Debug("Filled items", "rows", filled)

	filled = fillQuantity(out, cols)
	slog.Debug("Filled quantities", "rows", filled)

	recomputeTotal(out, cols)

	filled = fillDiscount(out, cols)
	slog.Debug("Filled discounts", "rows", filled)

	return out, nil
}

type columns struct {
	price, total, qty, item, discount int
}

func columnsOf(ds *model.Dataset) columns {
	idx := func(name string) int {
		j, ok := ds.ColumnIndex(name)
		if !ok {
			// Clean checks RequiredColumns before resolving positions.
			panic(fmt.Sprintf("cleaning: column %q not found", name))
		}
		return j
	}
	return columns{
		price:    idx(model.ColumnPricePerUnit),
		total:    idx(model.ColumnTotalSpent),
		qty:      idx(model.ColumnQuantity),
		item:     idx(model.ColumnItem),
		discount: idx(model.ColumnDiscountApplied),
	}
}

// fillPrice divides Total Spent by Quantity. Division by zero yields ±Inf or
// NaN like any float division; NaN leaves the price missing.
func fillPrice(ds *model.Dataset, c columns) int {
	n := 0
	for i := 0; i < ds.Len(); i++ {
		if !ds.At(i, c.price).IsMissing() {
			continue
		}
		total, okTotal := ds.At(i, c.total).Float()
		qty, okQty := ds.At(i, c.qty).Float()
		if !okTotal || !okQty {
			continue
		}
		ds.Set(i, c.price, model.Number(total/qty))
		n++
	}
	return n
}

// fillItem maps each price to the first non-missing item seen at it.
func fillItem(ds *model.Dataset, c columns) int {
	byPrice := make(map[string]model.Value)
	for i := 0; i < ds.Len(); i++ {
		price, item := ds.At(i, c.price), ds.At(i, c.item)
		if price.IsMissing() || item.IsMissing() {
			continue
		}
		if _, seen := byPrice[price.Key()]; !seen {
			byPrice[price.Key()] = item
		}
	}

	n := 0
	for i := 0; i < ds.Len(); i++ {
		price := ds.At(i, c.price)
		if !ds.At(i, c.item).IsMissing() || price.IsMissing() {
			continue
		}
		if item, ok := byPrice[price.Key()]; ok {
			ds.Set(i, c.item, item)
			n++
		}
	}
	return n
}

// fillQuantity uses the mean of the present numeric quantities sharing the
// row's item. Rows without an item, or whose item has no known quantity, stay
// missing.
func fillQuantity(ds *model.Dataset, c columns) int {
	type acc struct {
		sum   float64
		count int
	}
	byItem := make(map[string]*acc)
	for i := 0; i < ds.Len(); i++ {
		item := ds.At(i, c.item)
		qty, ok := ds.At(i, c.qty).Float()
		if item.IsMissing() || !ok {
			continue
		}
		a := byItem[item.Key()]
		if a == nil {
			a = &acc{}
			byItem[item.Key()] = a
		}
		a.sum += qty
		a.count++
	}

	n := 0
	for i := 0; i < ds.Len(); i++ {
		item := ds.At(i, c.item)
		if !ds.At(i, c.qty).IsMissing() || item.IsMissing() {
			continue
		}
		if a := byItem[item.Key()]; a != nil {
			ds.Set(i, c.qty, model.Number(a.sum/float64(a.count)))
			n++
		}
	}
	return n
}

// recomputeTotal overwrites Total Spent on every row.
func recomputeTotal(ds *model.Dataset, c columns) {
	for i := 0; i < ds.Len(); i++ {
		price, okPrice := ds.At(i, c.price).Float()
		qty, okQty := ds.At(i, c.qty).Float()
		if !okPrice || !okQty {
			ds.Set(i, c.total, model.Missing())
			continue
		}
		ds.Set(i, c.total, model.Number(price*qty))
	}
}

func fillDiscount(ds *model.Dataset, c columns) int {
	n := 0
	for i := 0; i < ds.Len(); i++ {
		if ds.At(i, c.discount).IsMissing() {
			ds.Set(i, c.discount, model.Bool(false))
			n++
		}
	}
	return n
}
