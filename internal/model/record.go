// Package model defines the tabular data types shared by the validator,
// cleaner and feature builder.
package model

// Record attributes as they appear in sales datasets.
const (
	ColumnTransactionID   = "Transaction ID"
	ColumnCustomerID      = "Customer ID"
	ColumnItem            = "Item"
	ColumnCategory        = "Category"
	ColumnPricePerUnit    = "Price Per Unit"
	ColumnQuantity        = "Quantity"
	ColumnTotalSpent      = "Total Spent"
	ColumnDiscountApplied = "Discount Applied"
	ColumnPaymentMethod   = "Payment Method"
	ColumnLocation        = "Location"
	ColumnTransactionDate = "Transaction Date"
)

// Derived column naming.
const (
	ValiditySuffix     = "_validity"
	CompletenessSuffix = "_completeness"
	ColumnUniqueness   = "uniqueness_flag"
)

// RecordColumns lists the record attributes in their canonical order.
var RecordColumns = []string{
	ColumnTransactionID,
	ColumnCustomerID,
	ColumnCategory,
	ColumnItem,
	ColumnPricePerUnit,
	ColumnQuantity,
	ColumnTotalSpent,
	ColumnPaymentMethod,
	ColumnLocation,
	ColumnTransactionDate,
	ColumnDiscountApplied,
}

// ValidityColumn returns the verdict column name for an attribute.
func ValidityColumn(attr string) string {
	return attr + ValiditySuffix
}

// CompletenessColumn returns the missingness indicator column name for an attribute.
func CompletenessColumn(attr string) string {
	return attr + CompletenessSuffix
}

// ColumnType describes how a record attribute is parsed from text.
type ColumnType uint8

// Column types.
const (
	ColumnTypeText ColumnType = iota
	ColumnTypeNumber
	ColumnTypeBool
)

// RecordSchema maps record attributes to their expected type. Attributes not
// listed are text.
var RecordSchema = map[string]ColumnType{
	ColumnPricePerUnit:    ColumnTypeNumber,
	ColumnQuantity:        ColumnTypeNumber,
	ColumnTotalSpent:      ColumnTypeNumber,
	ColumnDiscountApplied: ColumnTypeBool,
}

// Catalog is the fixed reference configuration for sales records.
type Catalog struct {
	CategoryAbbrev map[string]string
	Categories     []string
	PaymentMethods []string
	Locations      []string
}

// DefaultCatalog returns the store's categories, payment methods, locations
// and category abbreviations.
func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []string{
			"Patisserie",
			"Milk Products",
			"Butchers",
			"Beverages",
			"Food",
			"Furniture",
			"Electric household essentials",
			"Computers and electric accessories",
		},
		PaymentMethods: []string{"Digital Wallet", "Credit Card", "Cash"},
		Locations:      []string{"Online", "In-store"},
		CategoryAbbrev: map[string]string{
			"Patisserie":                         "PAT",
			"Milk Products":                      "MILK",
			"Butchers":                           "BUT",
			"Beverages":                          "BEV",
			"Food":                               "FOOD",
			"Furniture":                          "FUR",
			"Electric household essentials":      "EHE",
			"Computers and electric accessories": "CEA",
		},
	}
}
