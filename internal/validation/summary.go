package validation

import (
	"strings"

	"github.com/Veraticus/salesprep/internal/model"
)

// Summarize tallies a validated dataset: presence per attribute, verdict
// counts per checked attribute and the number of duplicate rows. The returned
// summary has no ID or timestamp; callers persisting it assign those.
func Summarize(validated *model.Dataset) model.RunSummary {
	summary := model.RunSummary{Rows: validated.Len()}

	for _, name := range validated.Columns() {
		attr, ok := strings.CutSuffix(name, model.CompletenessSuffix)
		if !ok {
			continue
		}
		q := model.AttributeQuality{Attribute: attr}
		present, _ := validated.Column(name)
		for _, v := range present {
			if b, _ := v.Flag(); b {
				q.Present++
			}
		}
		if verdicts, err := validated.Column(model.ValidityColumn(attr)); err == nil {
			counts := &model.VerdictCounts{}
			for _, v := range verdicts {
				verdict, _ := v.Verdict()
				counts.Add(verdict)
			}
			q.Verdicts = counts
		}
		summary.Attributes = append(summary.Attributes, q)
	}

	if flags, err := validated.Column(model.ColumnUniqueness); err == nil {
		for _, v := range flags {
			if unique, ok := v.Flag(); ok && !unique {
				summary.Duplicates++
			}
		}
	}
	return summary
}
