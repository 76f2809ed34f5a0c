// Package validation checks sales records column by column and across
// columns, producing one verdict column per checked attribute.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/Veraticus/salesprep/internal/common"
	"github.com/Veraticus/salesprep/internal/model"
)

// Rule is a single-column validity rule. The set of rules is closed: every
// implementation lives in this package and is handled by Evaluate.
type Rule interface {
	// Name describes the rule in reports.
	Name() string
	rule()
}

// PatternRule requires the text form of a value to match a regular
// expression in full.
type PatternRule struct {
	re   *regexp.Regexp
	expr string
}

// NewPatternRule compiles expr so that it only matches whole strings.
func NewPatternRule(expr string) (PatternRule, error) {
	re, err := common.CompileFull(expr)
	if err != nil {
		return PatternRule{}, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return PatternRule{re: re, expr: expr}, nil
}

// MustPatternRule is NewPatternRule for fixed patterns.
func MustPatternRule(expr string) PatternRule {
	r, err := NewPatternRule(expr)
	if err != nil {
		panic(err)
	}
	return r
}

// Name implements Rule.
func (r PatternRule) Name() string { return "pattern " + r.expr }

// SetRule requires a value to be one of an enumerated set.
type SetRule struct {
	allowed map[string]struct{}
	size    int
}

// NewSetRule builds a membership rule over the given values.
func NewSetRule(allowed ...model.Value) SetRule {
	r := SetRule{allowed: make(map[string]struct{}, len(allowed)), size: len(allowed)}
	for _, v := range allowed {
		r.allowed[v.Key()] = struct{}{}
	}
	return r
}

// NewStringSetRule builds a membership rule over text values.
func NewStringSetRule(allowed ...string) SetRule {
	vals := make([]model.Value, len(allowed))
	for i, s := range allowed {
		vals[i] = model.String(s)
	}
	return NewSetRule(vals...)
}

// Name implements Rule.
func (r SetRule) Name() string { return fmt.Sprintf("one of %d values", r.size) }

// IntegerNonNegativeRule requires a whole number that is zero or more.
type IntegerNonNegativeRule struct{}

// Name implements Rule.
func (IntegerNonNegativeRule) Name() string { return "integer >= 0" }

// FloatNonNegativeRule requires a number that is zero or more.
type FloatNonNegativeRule struct{}

// Name implements Rule.
func (FloatNonNegativeRule) Name() string { return "number >= 0" }

// DateFormatRule requires a YYYY-MM-DD string naming a real calendar date.
type DateFormatRule struct{}

// Name implements Rule.
func (DateFormatRule) Name() string { return "date YYYY-MM-DD" }

func (PatternRule) rule()            {}
func (SetRule) rule()                {}
func (IntegerNonNegativeRule) rule() {}
func (FloatNonNegativeRule) rule()   {}
func (DateFormatRule) rule()         {}

var dateShape = common.MustCompileFull(`\d{4}-\d{2}-\d{2}`)

// Evaluate applies rule to one value. Every rule answers Missing for a
// missing value.
func Evaluate(rule Rule, v model.Value) model.Verdict {
	if v.IsMissing() {
		return model.VerdictMissing
	}

	switch r := rule.(type) {
	case PatternRule:
		return model.VerdictOf(r.re.MatchString(v.String()))

	case SetRule:
		_, ok := r.allowed[v.Key()]
		return model.VerdictOf(ok)

	case IntegerNonNegativeRule:
		f, ok := v.Float()
		if !ok || math.IsInf(f, 0) {
			return model.VerdictInvalid
		}
		return model.VerdictOf(f == math.Trunc(f) && f >= 0)

	case FloatNonNegativeRule:
		f, ok := v.Float()
		if !ok {
			return model.VerdictInvalid
		}
		return model.VerdictOf(f >= 0)

	case DateFormatRule:
		s := v.String()
		return model.VerdictOf(dateShape.MatchString(s) && isCalendarDate(s))

	default:
		panic(fmt.Sprintf("validation: unhandled rule type %T", rule))
	}
}

func isCalendarDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}

// ApplyRule returns a copy of ds with a {column}_validity column holding the
// rule's verdict for each row.
func ApplyRule(ds *model.Dataset, column string, rule Rule) (*model.Dataset, error) {
	values, err := ds.Column(column)
	if err != nil {
		return nil, err
	}
	verdicts := make([]model.Value, len(values))
	for i, v := range values {
		verdicts[i] = model.VerdictValue(Evaluate(rule, v))
	}
	return ds.WithColumn(model.ValidityColumn(column), verdicts)
}
