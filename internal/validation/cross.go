package validation

import (
	"regexp"
	"time"

	"github.com/Veraticus/salesprep/internal/common"
	"github.com/Veraticus/salesprep/internal/model"
)

// CheckTotalSpent verifies Total Spent = Price Per Unit × Quantity exactly.
func CheckTotalSpent(row model.Row) model.Verdict {
	totalVal := row.Get(model.ColumnTotalSpent)
	if totalVal.IsMissing() {
		return model.VerdictMissing
	}
	total, ok := totalVal.Float()
	if !ok {
		return model.VerdictInvalid
	}

	price, priceOK := row.Get(model.ColumnPricePerUnit).Float()
	qty, qtyOK := row.Get(model.ColumnQuantity).Float()
	if !priceOK || !qtyOK {
		return model.VerdictCantCheck
	}

	return model.VerdictOf(total == price*qty)
}

// CheckPriceValidity verifies Price Per Unit against the reference prices for
// the row's item on its transaction date. The row must already carry a
// Transaction Date_validity verdict; anything other than Valid there makes
// the price uncheckable.
func CheckPriceValidity(row model.Row, prices *model.PriceIndex) model.Verdict {
	priceVal := row.Get(model.ColumnPricePerUnit)
	if priceVal.IsMissing() {
		return model.VerdictMissing
	}
	price, ok := priceVal.Float()
	if !ok || price <= 0 {
		return model.VerdictInvalid
	}

	item := row.Get(model.ColumnItem)
	date := row.Get(model.ColumnTransactionDate)
	dateVerdict, _ := row.Get(model.ValidityColumn(model.ColumnTransactionDate)).Verdict()
	if item.IsMissing() || date.IsMissing() || dateVerdict != model.VerdictValid {
		return model.VerdictCantCheck
	}

	if prices == nil || !prices.HasItem(item.String()) {
		return model.VerdictCantCheck
	}

	day, err := time.Parse(model.DateLayout, date.String())
	if err != nil {
		return model.VerdictCantCheck
	}

	matching := prices.PricesOn(item.String(), day)
	if len(matching) == 0 {
		return model.VerdictCantCheck
	}
	for _, p := range matching {
		if p == price {
			return model.VerdictValid
		}
	}
	return model.VerdictInvalid
}

var itemShape = common.MustCompileFull(`Item_\d+_[A-Za-z]+`)

// ItemChecker verifies that an item code carries its category's abbreviation.
type ItemChecker struct {
	byCategory map[string]*regexp.Regexp
}

// NewItemChecker compiles one item pattern per category abbreviation.
func NewItemChecker(abbrev map[string]string) *ItemChecker {
	c := &ItemChecker{byCategory: make(map[string]*regexp.Regexp, len(abbrev))}
	for category, code := range abbrev {
		c.byCategory[category] = common.MustCompileFull(`Item_\d+_` + regexp.QuoteMeta(code))
	}
	return c
}

// Check returns the item verdict for one row.
func (c *ItemChecker) Check(row model.Row) model.Verdict {
	itemVal := row.Get(model.ColumnItem)
	if itemVal.IsMissing() {
		return model.VerdictMissing
	}
	item := itemVal.String()
	if !itemShape.MatchString(item) {
		return model.VerdictInvalid
	}

	category := row.Get(model.ColumnCategory)
	if category.IsMissing() {
		return model.VerdictCantCheck
	}
	re, ok := c.byCategory[category.String()]
	if !ok {
		return model.VerdictCantCheck
	}
	return model.VerdictOf(re.MatchString(item))
}

// CheckItemValidity is a one-off ItemChecker check.
func CheckItemValidity(row model.Row, abbrev map[string]string) model.Verdict {
	return NewItemChecker(abbrev).Check(row)
}
