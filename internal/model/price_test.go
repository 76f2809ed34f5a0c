package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewPriceIndex_Empty(t *testing.T) {
	_, err := NewPriceIndex(nil)
	require.ErrorIs(t, err, ErrEmptyReferenceTable)
}

func TestPriceIndex_PricesOn(t *testing.T) {
	idx, err := NewPriceIndex(PriceTable{
		{Item: "Item_1_FOOD", Start: day("2024-01-01"), End: day("2024-01-31"), Price: 10},
		{Item: "Item_1_FOOD", Start: day("2024-01-15"), End: day("2024-02-15"), Price: 11},
		{Item: "Item_2_BEV", Start: day("2024-01-01"), End: day("2024-12-31"), Price: 3.5},
	})
	require.NoError(t, err)

	assert.True(t, idx.HasItem("Item_1_FOOD"))
	assert.False(t, idx.HasItem("Item_9_FUR"))

	assert.Equal(t, []float64{10}, idx.PricesOn("Item_1_FOOD", day("2024-01-01")))
	assert.Equal(t, []float64{10, 11}, idx.PricesOn("Item_1_FOOD", day("2024-01-31")))
	assert.Equal(t, []float64{11}, idx.PricesOn("Item_1_FOOD", day("2024-02-15")))
	assert.Empty(t, idx.PricesOn("Item_1_FOOD", day("2024-02-16")))
	assert.Empty(t, idx.PricesOn("Item_9_FUR", day("2024-01-10")))
}

func TestPriceInterval_Validate(t *testing.T) {
	tests := []struct {
		name     string
		errMsg   string
		interval PriceInterval
		wantErr  bool
	}{
		{
			name:     "valid single day",
			interval: PriceInterval{Item: "Item_1_FOOD", Start: day("2024-01-01"), End: day("2024-01-01"), Price: 1},
		},
		{
			name:     "missing item",
			interval: PriceInterval{Start: day("2024-01-01"), End: day("2024-01-02")},
			wantErr:  true,
			errMsg:   "item is required",
		},
		{
			name:     "reversed range",
			interval: PriceInterval{Item: "Item_1_FOOD", Start: day("2024-02-01"), End: day("2024-01-01")},
			wantErr:  true,
			errMsg:   "end date 2024-01-01 is before start date 2024-02-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.interval.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}
