package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/salesprep/internal/model"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"Item", "Price"}, [][]string{
		{"Item_1_FOOD", "10"},
		{"Item_12_PAT"},
	})

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Item")
	assert.Contains(t, out, "Item_1_FOOD")
	assert.Contains(t, out, "Item_12_PAT")
	// Columns are padded to the widest cell.
	assert.Equal(t, strings.Index(lines[len(lines)-2], "10"), strings.Index(lines[0], "Price"))
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(model.RunSummary{
		Source:     "records.csv",
		Rows:       4,
		Duplicates: 1,
		Attributes: []model.AttributeQuality{
			{Attribute: model.ColumnQuantity, Present: 3, Verdicts: &model.VerdictCounts{Valid: 2, Invalid: 1, Missing: 1}},
			{Attribute: model.ColumnItem, Present: 4},
		},
	})

	assert.Contains(t, out, "Data quality: records.csv")
	assert.Contains(t, out, "Duplicate rows:")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, model.ColumnQuantity)
}

func TestStyleHelpers(t *testing.T) {
	tests := []struct {
		render func(string) string
		name   string
	}{
		{name: "warning", render: StyleWarning},
		{name: "error", render: StyleError},
		{name: "format warning", render: FormatWarning},
		{name: "format error", render: FormatError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.render("3 rows"), "3 rows")
		})
	}
}

func TestRenderSummary_HighlightsProblems(t *testing.T) {
	out := RenderSummary(model.RunSummary{
		Rows:       2,
		Duplicates: 1,
		Attributes: []model.AttributeQuality{
			{Attribute: model.ColumnTotalSpent, Present: 2, Verdicts: &model.VerdictCounts{Valid: 1, Invalid: 1}},
		},
	})

	assert.Contains(t, out, "Data quality")
	assert.NotContains(t, out, "Data quality:", "no source means no suffix")
	assert.Contains(t, out, model.ColumnTotalSpent)
	assert.Contains(t, out, "50.0%")
}

func TestRenderRuns(t *testing.T) {
	assert.Contains(t, RenderRuns(nil), "No validation runs recorded.")

	out := RenderRuns([]model.RunSummary{{
		ID:        "0b8f9a52-1111-2222-3333-444455556666",
		Source:    "records.csv",
		Rows:      12,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Attributes: []model.AttributeQuality{
			{Attribute: model.ColumnQuantity, Verdicts: &model.VerdictCounts{Invalid: 2}},
			{Attribute: model.ColumnLocation, Verdicts: &model.VerdictCounts{Invalid: 3}},
		},
	}})
	assert.Contains(t, out, "0b8f9a52")
	assert.NotContains(t, out, "0b8f9a52-1111")
	assert.Contains(t, out, "records.csv")
	assert.Contains(t, out, "5")
}

func TestRenderPrices(t *testing.T) {
	assert.Contains(t, RenderPrices(nil), "No reference prices stored.")

	out := RenderPrices(model.PriceTable{{
		Item:  "Item_3_BEV",
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Price: 2.5,
	}})
	assert.Contains(t, out, "Item_3_BEV")
	assert.Contains(t, out, "2024-12-31")
	assert.Contains(t, out, "2.5")
}

func TestStepProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewStepProgress(&buf, 3, "Validating")
	p.Step("completeness")
	p.Step("Quantity")
	p.Finish()

	assert.Equal(t, 2, p.Done())
	assert.NotEmpty(t, buf.String())
}
