package features

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Veraticus/salesprep/internal/model"
)

// Weekly table columns.
const (
	ColumnWeekKey                = "Year_Week"
	ColumnAvgRepeatPurchases     = "weekly_avg_repeat_purchases"
	ColumnTotalSales             = "total_sales"
	ColumnUniqueTransactions     = "unique_transactions"
	ColumnUniqueCustomers        = "unique_customers"
	ColumnDiscountedTransactions = "discounted_transactions"
)

// ErrColumnConflict is returned when a pivoted value would reuse the name of
// another weekly column.
var ErrColumnConflict = errors.New("pivot column name conflicts with an existing column")

// InputColumns lists the attributes BuildWeekly reads.
var InputColumns = []string{
	model.ColumnTransactionDate,
	model.ColumnDiscountApplied,
	model.ColumnTotalSpent,
	model.ColumnTransactionID,
	model.ColumnCustomerID,
	model.ColumnCategory,
	model.ColumnPaymentMethod,
	model.ColumnLocation,
}

var baseColumns = []string{
	ColumnWeekKey,
	ColumnAvgRepeatPurchases,
	ColumnTotalSales,
	ColumnUniqueTransactions,
	ColumnUniqueCustomers,
	ColumnDiscountedTransactions,
}

// pivot holds per-week cells for one pivoted attribute. weeks without any
// row carrying the attribute have no entry.
type pivot struct {
	cells  map[string]map[string]float64 // week → value → cell
	values []string
}

func newPivot() *pivot {
	return &pivot{cells: make(map[string]map[string]float64)}
}

func (p *pivot) week(key string) map[string]float64 {
	w := p.cells[key]
	if w == nil {
		w = make(map[string]float64)
		p.cells[key] = w
	}
	return w
}

func (p *pivot) finish() {
	seen := make(map[string]struct{})
	for _, w := range p.cells {
		for v := range w {
			seen[v] = struct{}{}
		}
	}
	p.values = make([]string, 0, len(seen))
	for v := range seen {
		p.values = append(p.values, v)
	}
	sort.Strings(p.values)
}

// cell returns the pivot cell for a week, 0 when the week has other values
// of the attribute, and Missing when the week has none at all.
func (p *pivot) cell(week, value string) model.Value {
	w, ok := p.cells[week]
	if !ok {
		return model.Missing()
	}
	return model.Number(w[value])
}

// distinctCounter counts distinct non-missing keys per (week, value).
type distinctCounter map[string]map[string]map[string]struct{}

func (d distinctCounter) add(week, value, key string) {
	if d[week] == nil {
		d[week] = make(map[string]map[string]struct{})
	}
	if d[week][value] == nil {
		d[week][value] = make(map[string]struct{})
	}
	if key != "" {
		d[week][value][key] = struct{}{}
	}
}

func (d distinctCounter) into(p *pivot) {
	for week, byValue := range d {
		w := p.week(week)
		for value, keys := range byValue {
			w[value] = float64(len(keys))
		}
	}
	p.finish()
}

type weekAgg struct {
	customers    map[string]struct{}
	transactions map[string]struct{}
	rows         int
	repeats      int
	sales        float64
	discounted   float64
}

// BuildWeekly aggregates cleaned records into one row per week, ordered by
// week key. Rows without a Transaction Date are left out.
func BuildWeekly(ds *model.Dataset) (*model.Dataset, error) {
	if err := ds.Require(InputColumns...); err != nil {
		return nil, err
	}

	weeks := make(map[string]*weekAgg)
	categories := newPivot()
	payments := make(distinctCounter)
	locations := make(distinctCounter)
	skipped := 0

	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		date := row.Get(model.ColumnTransactionDate)
		if date.IsMissing() {
			skipped++
			continue
		}
		t, err := ParseDate(date.String())
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		key := WeekKey(t)

		w := weeks[key]
		if w == nil {
			w = &weekAgg{
				customers:    make(map[string]struct{}),
				transactions: make(map[string]struct{}),
			}
			weeks[key] = w
		}

		w.rows++
		// repeat detection treats a missing customer as a value of its own
		customer := row.Get(model.ColumnCustomerID)
		if _, seen := w.customers[customer.Key()]; seen {
			w.repeats++
		}
		w.customers[customer.Key()] = struct{}{}

		txnKey := ""
		if txn := row.Get(model.ColumnTransactionID); !txn.IsMissing() {
			txnKey = txn.Key()
			w.transactions[txnKey] = struct{}{}
		}

		spent, hasSpent := row.Get(model.ColumnTotalSpent).Float()
		if hasSpent {
			w.sales += spent
		}
		w.discounted += discountIndicator(row.Get(model.ColumnDiscountApplied))

		if cat := row.Get(model.ColumnCategory); !cat.IsMissing() {
			// spent is 0 when Total Spent is absent, which still registers the category
			categories.week(key)[cat.String()] += spent
		}
		if pm := row.Get(model.ColumnPaymentMethod); !pm.IsMissing() {
			payments.add(key, pm.String(), txnKey)
		}
		if loc := row.Get(model.ColumnLocation); !loc.IsMissing() {
			locations.add(key, loc.String(), txnKey)
		}
	}

	categories.finish()
	paymentPivot := newPivot()
	payments.into(paymentPivot)
	locationPivot := newPivot()
	locations.into(locationPivot)

	columns := append([]string{}, baseColumns...)
	for _, p := range []*pivot{categories, paymentPivot, locationPivot} {
		columns = append(columns, p.values...)
	}
	table, err := model.NewDataset(columns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrColumnConflict, err)
	}

	keys := make([]string, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		w := weeks[key]
		// the key set is the customer count: missing customers are keyed too
		uniqueCustomers := len(w.customers)
		if _, ok := w.customers[model.Missing().Key()]; ok {
			uniqueCustomers--
		}
		row := []model.Value{
			model.String(key),
			model.Number(float64(w.repeats) / float64(w.rows)),
			model.Number(w.sales),
			model.Number(float64(len(w.transactions))),
			model.Number(float64(uniqueCustomers)),
			model.Number(w.discounted),
		}
		for _, p := range []*pivot{categories, paymentPivot, locationPivot} {
			for _, v := range p.values {
				row = append(row, p.cell(key, v))
			}
		}
		if err := table.AppendRow(row...); err != nil {
			return nil, err
		}
	}

	slog.Debug("Built weekly table", "weeks", table.Len(), "columns", len(columns), "skipped_rows", skipped)
	return table, nil
}

// discountIndicator coerces Discount Applied to 0 or 1. Missing is 0.
func discountIndicator(v model.Value) float64 {
	if b, ok := v.Flag(); ok && b {
		return 1
	}
	if f, ok := v.Float(); ok && f != 0 {
		return 1
	}
	return 0
}
