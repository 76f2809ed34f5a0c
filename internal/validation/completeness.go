package validation

import (
	"github.com/Veraticus/salesprep/internal/model"
)

// AddMissingIndicators returns a copy of ds with a {column}_completeness
// column for every column except uniqueness_flag. An indicator is true when
// the cell is present.
func AddMissingIndicators(ds *model.Dataset) (*model.Dataset, error) {
	out := ds
	for _, name := range ds.Columns() {
		if name == model.ColumnUniqueness {
			continue
		}
		values, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		present := make([]model.Value, len(values))
		for i, v := range values {
			present[i] = model.Bool(!v.IsMissing())
		}
		if out, err = out.WithColumn(model.CompletenessColumn(name), present); err != nil {
			return nil, err
		}
	}
	if out == ds {
		out = ds.Clone()
	}
	return out, nil
}

// UniquenessFlags marks the first occurrence of every distinct full row true
// and every later duplicate false. Missing cells compare equal to each other.
func UniquenessFlags(ds *model.Dataset) []model.Value {
	var cols []int
	for _, name := range ds.Columns() {
		if name == model.ColumnUniqueness {
			continue
		}
		j, _ := ds.ColumnIndex(name)
		cols = append(cols, j)
	}

	seen := make(map[string]struct{}, ds.Len())
	flags := make([]model.Value, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		key := ds.Row(i).Key(cols)
		_, dup := seen[key]
		if !dup {
			seen[key] = struct{}{}
		}
		flags[i] = model.Bool(!dup)
	}
	return flags
}

// AddUniquenessFlag returns a copy of ds with a uniqueness_flag column.
func AddUniquenessFlag(ds *model.Dataset) (*model.Dataset, error) {
	return ds.WithColumn(model.ColumnUniqueness, UniquenessFlags(ds))
}
