package features

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Veraticus/salesprep/internal/model"
)

// Default feature depths.
const (
	DefaultLags    = 6
	DefaultHorizon = 1
)

// ErrInvalidOption is returned for negative lag or horizon settings.
var ErrInvalidOption = errors.New("invalid feature option")

// Options controls lag depth, target horizon and the output week range.
type Options struct {
	// Start and End bound the output by week key, inclusive, compared as
	// strings. Empty means unbounded.
	Start   string
	End     string
	Lags    int
	Horizon int
}

// DefaultOptions returns six weeks of lags and a one-week target.
func DefaultOptions() Options {
	return Options{Lags: DefaultLags, Horizon: DefaultHorizon}
}

// Validate checks the option values.
func (o Options) Validate() error {
	if o.Lags < 0 {
		return fmt.Errorf("%w: lags must be >= 0, got %d", ErrInvalidOption, o.Lags)
	}
	if o.Horizon < 0 {
		return fmt.Errorf("%w: horizon must be >= 0, got %d", ErrInvalidOption, o.Horizon)
	}
	return nil
}

// LagColumn names the lag-i copy of a feature column.
func LagColumn(column string, i int) string {
	return column + "_t-" + strconv.Itoa(i)
}

// TargetColumn names the total_sales target i weeks ahead.
func TargetColumn(i int) string {
	return "y_" + strconv.Itoa(i)
}

// Augment returns a copy of the weekly table with lag and target columns,
// filtered to the options' week range. Lags and targets are shifts by row
// position over the full table, so rows at the edge of the range keep the
// context of weeks outside it. Missing calendar weeks are not synthesized.
func Augment(table *model.Dataset, opts Options) (*model.Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := table.Require(ColumnWeekKey, ColumnTotalSales); err != nil {
		return nil, err
	}

	base := table.Columns()
	var featureCols []int
	for j, name := range base {
		if name != ColumnWeekKey {
			featureCols = append(featureCols, j)
		}
	}
	salesCol, _ := table.ColumnIndex(ColumnTotalSales)
	keyCol, _ := table.ColumnIndex(ColumnWeekKey)

	columns := append([]string{}, base...)
	for _, j := range featureCols {
		for i := 1; i <= opts.Lags; i++ {
			columns = append(columns, LagColumn(base[j], i))
		}
	}
	for i := 1; i <= opts.Horizon; i++ {
		columns = append(columns, TargetColumn(i))
	}
	out, err := model.NewDataset(columns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrColumnConflict, err)
	}

	n := table.Len()
	shifted := func(r, j int) model.Value {
		if r < 0 || r >= n {
			return model.Missing()
		}
		return table.At(r, j)
	}

	for r := 0; r < n; r++ {
		key := table.At(r, keyCol).String()
		if opts.Start != "" && key < opts.Start {
			continue
		}
		if opts.End != "" && key > opts.End {
			continue
		}

		row := make([]model.Value, 0, len(columns))
		for j := range base {
			row = append(row, table.At(r, j))
		}
		for _, j := range featureCols {
			for i := 1; i <= opts.Lags; i++ {
				row = append(row, shifted(r-i, j))
			}
		}
		for i := 1; i <= opts.Horizon; i++ {
			row = append(row, shifted(r+i, salesCol))
		}
		if err := out.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Build aggregates cleaned records by week and augments the result.
func Build(ds *model.Dataset, opts Options) (*model.Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	weekly, err := BuildWeekly(ds)
	if err != nil {
		return nil, fmt.Errorf("weekly aggregation: %w", err)
	}
	return Augment(weekly, opts)
}
