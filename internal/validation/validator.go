package validation

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/salesprep/internal/model"
)

// ColumnRule binds a single-column rule to the attribute it checks.
type ColumnRule struct {
	Rule   Rule
	Column string
}

// DefaultRules returns the fixed rule table for sales records, in the order
// the verdict columns are appended. Price Per Unit has no single-column rule;
// its verdict comes from the reference price check.
func DefaultRules(cat model.Catalog) []ColumnRule {
	return []ColumnRule{
		{Column: model.ColumnTransactionID, Rule: MustPatternRule(`TXN_\d{7}`)},
		{Column: model.ColumnCustomerID, Rule: MustPatternRule(`^CUST_\d+$`)},
		{Column: model.ColumnCategory, Rule: NewStringSetRule(cat.Categories...)},
		{Column: model.ColumnPaymentMethod, Rule: NewStringSetRule(cat.PaymentMethods...)},
		{Column: model.ColumnLocation, Rule: NewStringSetRule(cat.Locations...)},
		{Column: model.ColumnDiscountApplied, Rule: NewSetRule(model.Bool(true), model.Bool(false))},
		{Column: model.ColumnQuantity, Rule: IntegerNonNegativeRule{}},
		{Column: model.ColumnTransactionDate, Rule: DateFormatRule{}},
	}
}

// Validator runs the completeness, single-column and cross-column checks.
type Validator struct {
	items  *ItemChecker
	onStep func(step string)
	rules  []ColumnRule
}

// Option configures a Validator.
type Option func(*Validator)

// WithCatalog replaces the reference configuration used for the rule table
// and the item code check.
func WithCatalog(cat model.Catalog) Option {
	return func(v *Validator) {
		v.rules = DefaultRules(cat)
		v.items = NewItemChecker(cat.CategoryAbbrev)
	}
}

// WithStepHook registers a callback invoked after each validation step.
func WithStepHook(fn func(step string)) Option {
	return func(v *Validator) {
		v.onStep = fn
	}
}

// NewValidator creates a validator over the default catalog.
func NewValidator(opts ...Option) *Validator {
	cat := model.DefaultCatalog()
	v := &Validator{
		rules: DefaultRules(cat),
		items: NewItemChecker(cat.CategoryAbbrev),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Steps returns how many times the step hook fires during Validate.
func (v *Validator) Steps() int {
	// completeness, rules, three cross-column checks, uniqueness
	return 1 + len(v.rules) + 3 + 1
}

// RequiredColumns lists the attributes Validate needs.
func (v *Validator) RequiredColumns() []string {
	cols := make([]string, 0, len(v.rules)+4)
	for _, r := range v.rules {
		cols = append(cols, r.Column)
	}
	return append(cols,
		model.ColumnItem,
		model.ColumnCategory,
		model.ColumnPricePerUnit,
		model.ColumnTotalSpent,
	)
}

// Validate returns a copy of ds with completeness indicators, verdict columns
// and the uniqueness flag appended. ds is not modified and no rows are
// dropped or reordered.
func (v *Validator) Validate(ds *model.Dataset, prices model.PriceTable) (*model.Dataset, error) {
	if err := ds.Require(v.RequiredColumns()...); err != nil {
		return nil, err
	}
	index, err := model.NewPriceIndex(prices)
	if err != nil {
		return nil, err
	}

	out, err := AddMissingIndicators(ds)
	if err != nil {
		return nil, fmt.Errorf("completeness: %w", err)
	}
	v.step("completeness")

	for _, r := range v.rules {
		if out, err = ApplyRule(out, r.Column, r.Rule); err != nil {
			return nil, fmt.Errorf("rule for %s: %w", r.Column, err)
		}
		v.step(model.ValidityColumn(r.Column))
	}

	cross := []struct {
		check  func(model.Row) model.Verdict
		column string
	}{
		{column: model.ColumnItem, check: v.items.Check},
		{column: model.ColumnPricePerUnit, check: func(row model.Row) model.Verdict {
			return CheckPriceValidity(row, index)
		}},
		{column: model.ColumnTotalSpent, check: CheckTotalSpent},
	}
	for _, c := range cross {
		verdicts := make([]model.Value, out.Len())
		for i := range verdicts {
			verdicts[i] = model.VerdictValue(c.check(out.Row(i)))
		}
		if out, err = out.WithColumn(model.ValidityColumn(c.column), verdicts); err != nil {
			return nil, fmt.Errorf("cross check for %s: %w", c.column, err)
		}
		v.step(model.ValidityColumn(c.column))
	}

	if out, err = out.WithColumn(model.ColumnUniqueness, UniquenessFlags(ds)); err != nil {
		return nil, fmt.Errorf("uniqueness: %w", err)
	}
	v.step(model.ColumnUniqueness)

	slog.Debug("Validated dataset", "rows", out.Len(), "columns", len(out.Columns()))
	return out, nil
}

func (v *Validator) step(name string) {
	slog.Debug("Validation step complete", "step", name)
	if v.onStep != nil {
		v.onStep(name)
	}
}

// CheckDataValidity validates ds against the default catalog and rule table.
func CheckDataValidity(ds *model.Dataset, prices model.PriceTable) (*model.Dataset, error) {
	return NewValidator().Validate(ds, prices)
}
