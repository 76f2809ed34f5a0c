package validation

import (
	"testing"

	"github.com/Veraticus/salesprep/internal/model"
	"github.com/Veraticus/salesprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTotalSpent(t *testing.T) {
	base := testutil.Record{
		model.ColumnTotalSpent:   model.Number(20),
		model.ColumnPricePerUnit: model.Number(5),
		model.ColumnQuantity:     model.Number(4),
	}

	tests := []struct {
		name   string
		record testutil.Record
		want   model.Verdict
	}{
		{name: "matches product", record: base, want: model.VerdictValid},
		{name: "does not match product", record: base.With(model.ColumnTotalSpent, model.Number(21)), want: model.VerdictInvalid},
		{name: "price missing", record: base.Without(model.ColumnPricePerUnit), want: model.VerdictCantCheck},
		{name: "quantity missing", record: base.Without(model.ColumnQuantity), want: model.VerdictCantCheck},
		{name: "total missing", record: base.Without(model.ColumnTotalSpent), want: model.VerdictMissing},
		{name: "total missing wins over missing price", record: base.Without(model.ColumnTotalSpent).Without(model.ColumnPricePerUnit), want: model.VerdictMissing},
		{name: "total not numeric", record: base.With(model.ColumnTotalSpent, model.String("twenty")), want: model.VerdictInvalid},
		{name: "price not numeric", record: base.With(model.ColumnPricePerUnit, model.String("5")), want: model.VerdictCantCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckTotalSpent(tt.record.Row()))
		})
	}
}

func TestCheckItemValidity(t *testing.T) {
	abbrev := model.DefaultCatalog().CategoryAbbrev

	tests := []struct {
		name   string
		record testutil.Record
		want   model.Verdict
	}{
		{
			name:   "abbreviation matches category",
			record: testutil.Record{model.ColumnItem: model.String("Item_12_PAT"), model.ColumnCategory: model.String("Patisserie")},
			want:   model.VerdictValid,
		},
		{
			name:   "abbreviation of another category",
			record: testutil.Record{model.ColumnItem: model.String("Item_12_PAT"), model.ColumnCategory: model.String("Food")},
			want:   model.VerdictInvalid,
		},
		{
			name:   "malformed item code",
			record: testutil.Record{model.ColumnItem: model.String("ITEM12"), model.ColumnCategory: model.String("Food")},
			want:   model.VerdictInvalid,
		},
		{
			name:   "malformed item with missing category",
			record: testutil.Record{model.ColumnItem: model.String("Item_12_"), model.ColumnCategory: model.Missing()},
			want:   model.VerdictInvalid,
		},
		{
			name:   "category missing",
			record: testutil.Record{model.ColumnItem: model.String("Item_12_PAT"), model.ColumnCategory: model.Missing()},
			want:   model.VerdictCantCheck,
		},
		{
			name:   "category without abbreviation",
			record: testutil.Record{model.ColumnItem: model.String("Item_12_PAT"), model.ColumnCategory: model.String("Toys")},
			want:   model.VerdictCantCheck,
		},
		{
			name:   "abbreviation must match whole suffix",
			record: testutil.Record{model.ColumnItem: model.String("Item_12_PATX"), model.ColumnCategory: model.String("Patisserie")},
			want:   model.VerdictInvalid,
		},
		{
			name:   "item missing",
			record: testutil.Record{model.ColumnItem: model.Missing(), model.ColumnCategory: model.String("Food")},
			want:   model.VerdictMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckItemValidity(tt.record.Row(), abbrev))
		})
	}
}

func TestCheckPriceValidity(t *testing.T) {
	index, err := model.NewPriceIndex(model.PriceTable{
		{Item: "Item_1_FOOD", Start: testutil.Day("2024-01-01"), End: testutil.Day("2024-01-31"), Price: 10},
	})
	require.NoError(t, err)

	dateValidity := model.ValidityColumn(model.ColumnTransactionDate)
	base := testutil.Record{
		model.ColumnItem:            model.String("Item_1_FOOD"),
		model.ColumnTransactionDate: model.String("2024-01-15"),
		model.ColumnPricePerUnit:    model.Number(10),
		dateValidity:                model.VerdictValue(model.VerdictValid),
	}

	tests := []struct {
		name   string
		record testutil.Record
		want   model.Verdict
	}{
		{name: "price matches reference", record: base, want: model.VerdictValid},
		{name: "price differs from reference", record: base.With(model.ColumnPricePerUnit, model.Number(12)), want: model.VerdictInvalid},
		{name: "date outside every interval", record: base.With(model.ColumnTransactionDate, model.String("2024-02-15")), want: model.VerdictCantCheck},
		{name: "interval start is inclusive", record: base.With(model.ColumnTransactionDate, model.String("2024-01-01")), want: model.VerdictValid},
		{name: "interval end is inclusive", record: base.With(model.ColumnTransactionDate, model.String("2024-01-31")), want: model.VerdictValid},
		{name: "price missing", record: base.Without(model.ColumnPricePerUnit), want: model.VerdictMissing},
		{name: "price zero", record: base.With(model.ColumnPricePerUnit, model.Number(0)), want: model.VerdictInvalid},
		{name: "price negative", record: base.With(model.ColumnPricePerUnit, model.Number(-10)), want: model.VerdictInvalid},
		{name: "price not numeric", record: base.With(model.ColumnPricePerUnit, model.String("10")), want: model.VerdictInvalid},
		{name: "item missing", record: base.Without(model.ColumnItem), want: model.VerdictCantCheck},
		{name: "date missing", record: base.Without(model.ColumnTransactionDate), want: model.VerdictCantCheck},
		{name: "date verdict invalid", record: base.With(dateValidity, model.VerdictValue(model.VerdictInvalid)), want: model.VerdictCantCheck},
		{name: "date verdict absent", record: base.Without(dateValidity), want: model.VerdictCantCheck},
		{name: "item not in reference table", record: base.With(model.ColumnItem, model.String("Item_2_FOOD")), want: model.VerdictCantCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPriceValidity(tt.record.Row(), index))
		})
	}
}

func TestCheckPriceValidity_OverlappingIntervals(t *testing.T) {
	index, err := model.NewPriceIndex(model.PriceTable{
		{Item: "Item_1_FOOD", Start: testutil.Day("2024-01-01"), End: testutil.Day("2024-01-31"), Price: 10},
		{Item: "Item_1_FOOD", Start: testutil.Day("2024-01-20"), End: testutil.Day("2024-02-10"), Price: 11},
	})
	require.NoError(t, err)

	row := testutil.Record{
		model.ColumnItem:            model.String("Item_1_FOOD"),
		model.ColumnTransactionDate: model.String("2024-01-25"),
		model.ColumnPricePerUnit:    model.Number(11),
		model.ValidityColumn(model.ColumnTransactionDate): model.VerdictValue(model.VerdictValid),
	}

	assert.Equal(t, model.VerdictValid, CheckPriceValidity(row.Row(), index))
}
