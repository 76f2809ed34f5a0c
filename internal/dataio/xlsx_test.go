package dataio

import (
	"path/filepath"
	"testing"

	"github.com/Veraticus/salesprep/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXLSX_WriteThenRead(t *testing.T) {
	ds := model.MustDataset(model.ColumnItem, model.ColumnPricePerUnit, model.ColumnDiscountApplied, "note")
	require.NoError(t, ds.AppendRow(model.String("Item_1_FOOD"), model.Number(10.25), model.Bool(true), model.Missing()))
	require.NoError(t, ds.AppendRow(model.Missing(), model.String("n/a"), model.Bool(false), model.String("x")))

	path := filepath.Join(t.TempDir(), "records.xlsx")
	require.NoError(t, WriteXLSX(path, "Sales", ds))

	out, err := ReadXLSX(path, "Sales", RecordSchema())
	require.NoError(t, err)
	require.Equal(t, ds.Columns(), out.Columns())
	require.Equal(t, 2, out.Len())

	price, ok := out.Get(0, model.ColumnPricePerUnit).Float()
	require.True(t, ok)
	assert.Equal(t, 10.25, price)
	disc, ok := out.Get(0, model.ColumnDiscountApplied).Flag()
	require.True(t, ok)
	assert.True(t, disc)
	assert.True(t, out.Get(0, "note").IsMissing())

	assert.True(t, out.Get(1, model.ColumnItem).IsMissing())
	assert.Equal(t, "n/a", out.Get(1, model.ColumnPricePerUnit).String())
	assert.Equal(t, "x", out.Get(1, "note").String())
}

func TestXLSX_FirstSheetByDefault(t *testing.T) {
	ds := model.MustDataset("a")
	require.NoError(t, ds.AppendRow(model.Number(1)))

	path := filepath.Join(t.TempDir(), "a.xlsx")
	require.NoError(t, Write(path, ds))

	out, err := Read(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", out.Get(0, "a").String())
}

func TestReadXLSX_MissingFile(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
