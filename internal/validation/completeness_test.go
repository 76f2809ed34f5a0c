package validation

import (
	"testing"

	"github.com/Veraticus/salesprep/internal/model"
	"github.com/Veraticus/salesprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flags(t *testing.T, ds *model.Dataset, column string) []bool {
	t.Helper()
	values, err := ds.Column(column)
	require.NoError(t, err)
	out := make([]bool, len(values))
	for i, v := range values {
		b, ok := v.Flag()
		require.True(t, ok, "row %d of %s is not a bool", i, column)
		out[i] = b
	}
	return out
}

func TestAddMissingIndicators(t *testing.T) {
	ds := testutil.NewRecords(t).
		WithColumns(model.ColumnItem, model.ColumnQuantity, model.ColumnUniqueness).
		Add(
			testutil.Record{model.ColumnItem: model.String("Item_1_FOOD"), model.ColumnQuantity: model.Number(1)},
			testutil.Record{model.ColumnQuantity: model.Number(2)},
			testutil.Record{model.ColumnItem: model.String(""), model.ColumnQuantity: model.Missing()},
		).
		Build()

	out, err := AddMissingIndicators(ds)
	require.NoError(t, err)

	assert.Equal(t, []string{
		model.ColumnItem, model.ColumnQuantity, model.ColumnUniqueness,
		"Item_completeness", "Quantity_completeness",
	}, out.Columns())
	assert.Equal(t, []bool{true, false, true}, flags(t, out, "Item_completeness"))
	assert.Equal(t, []bool{true, true, false}, flags(t, out, "Quantity_completeness"))
	assert.Len(t, ds.Columns(), 3)
}

func TestUniquenessFlags(t *testing.T) {
	a := testutil.ValidRecord()
	b := a.With(model.ColumnQuantity, model.Number(5))
	c := a.Without(model.ColumnItem)

	ds := testutil.NewRecords(t).Add(a, b, a, c, c, b, a).Build()

	out, err := AddUniquenessFlag(ds)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, false, true, false, false, false}, flags(t, out, model.ColumnUniqueness))
}

func TestUniquenessFlags_IgnoresExistingFlagColumn(t *testing.T) {
	ds := model.MustDataset("a", model.ColumnUniqueness)
	require.NoError(t, ds.AppendRow(model.Number(1), model.Bool(true)))
	require.NoError(t, ds.AppendRow(model.Number(1), model.Bool(false)))

	got := UniquenessFlags(ds)
	assert.Equal(t, []model.Value{model.Bool(true), model.Bool(false)}, got)
}

func TestUniquenessFlags_SeparatorInsideCells(t *testing.T) {
	ds := model.MustDataset("a", "b")
	require.NoError(t, ds.AppendRow(model.String("x\x1f1y"), model.String("z")))
	require.NoError(t, ds.AppendRow(model.String("x"), model.String("y\x1f1z")))
	require.NoError(t, ds.AppendRow(model.String("x:1"), model.String("")))
	require.NoError(t, ds.AppendRow(model.String("x"), model.String("1:")))

	got := UniquenessFlags(ds)
	assert.Equal(t, []model.Value{model.Bool(true), model.Bool(true), model.Bool(true), model.Bool(true)}, got,
		"rows whose cells differ are never duplicates, whatever bytes the cells hold")
}
