package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/salesprep/internal/model"
)

// RenderTable lays out rows under a bold header with padded columns.
func RenderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for j, h := range header {
		widths[j] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if j < len(widths) && lipgloss.Width(cell) > widths[j] {
				widths[j] = lipgloss.Width(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	headCells := make([]string, len(header))
	for j, h := range header {
		headCells[j] = TableCellStyle.Width(widths[j] + 2).Render(h)
	}
	lines = append(lines, TableHeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, headCells...)))

	for _, row := range rows {
		cells := make([]string, len(header))
		for j := range header {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			cells[j] = TableCellStyle.Width(widths[j] + 2).Render(cell)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderSummary renders the data quality report of one validation run.
func RenderSummary(run model.RunSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Rows:"), strconv.Itoa(run.Rows))
	dup := fmt.Sprintf("%d", run.Duplicates)
	if run.Duplicates > 0 {
		dup = StyleWarning(dup)
	}
	fmt.Fprintf(&b, "%s %s\n\n", BoldStyle.Render("Duplicate rows:"), dup)

	rows := make([][]string, 0, len(run.Attributes))
	for _, attr := range run.Attributes {
		row := []string{attr.Attribute, percent(attr.Present, run.Rows)}
		if attr.Verdicts == nil {
			row = append(row, "-", "-", "-", "-")
		} else {
			v := attr.Verdicts
			invalid := strconv.Itoa(v.Invalid)
			if v.Invalid > 0 {
				invalid = StyleError(invalid)
			}
			row = append(row,
				strconv.Itoa(v.Valid),
				invalid,
				strconv.Itoa(v.CantCheck),
				strconv.Itoa(v.Missing),
			)
		}
		rows = append(rows, row)
	}
	b.WriteString(RenderTable(
		[]string{"Attribute", "Complete", "Valid", "Invalid", "Can't check", "Missing"},
		rows,
	))

	title := "Data quality"
	if run.Source != "" {
		title += ": " + run.Source
	}
	return RenderBox(title, b.String())
}

// RenderRuns renders stored validation runs, one line per run.
func RenderRuns(runs []model.RunSummary) string {
	if len(runs) == 0 {
		return SubtleStyle.Render("No validation runs recorded.")
	}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		invalid := 0
		for _, attr := range run.Attributes {
			if attr.Verdicts != nil {
				invalid += attr.Verdicts.Invalid
			}
		}
		rows = append(rows, []string{
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			shortID(run.ID),
			run.Source,
			strconv.Itoa(run.Rows),
			strconv.Itoa(run.Duplicates),
			strconv.Itoa(invalid),
		})
	}
	return RenderTable([]string{"When", "ID", "Source", "Rows", "Duplicates", "Invalid cells"}, rows)
}

// RenderPrices renders a reference price table.
func RenderPrices(table model.PriceTable) string {
	if len(table) == 0 {
		return SubtleStyle.Render("No reference prices stored.")
	}
	rows := make([][]string, 0, len(table))
	for _, p := range table {
		rows = append(rows, []string{
			p.Item,
			p.Start.Format(model.DateLayout),
			p.End.Format(model.DateLayout),
			model.FormatNumber(p.Price),
		})
	}
	return RenderTable([]string{"Item", "From", "To", "Price"}, rows)
}

func percent(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
