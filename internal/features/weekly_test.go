package features

import (
	"testing"

	"github.com/Veraticus/salesprep/internal/model"
	"github.com/Veraticus/salesprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sale(txn, cust, date, category, payment, location string, total float64, discount bool) testutil.Record {
	return testutil.ValidRecord().
		With(model.ColumnTransactionID, model.String(txn)).
		With(model.ColumnCustomerID, model.String(cust)).
		With(model.ColumnTransactionDate, model.String(date)).
		With(model.ColumnCategory, model.String(category)).
		With(model.ColumnPaymentMethod, model.String(payment)).
		With(model.ColumnLocation, model.String(location)).
		With(model.ColumnTotalSpent, model.Number(total)).
		With(model.ColumnDiscountApplied, model.Bool(discount))
}

func cellFloat(t *testing.T, ds *model.Dataset, row int, column string) float64 {
	t.Helper()
	f, ok := ds.Get(row, column).Float()
	require.True(t, ok, "row %d %s: %v", row, column, ds.Get(row, column))
	return f
}

func TestBuildWeekly_Aggregates(t *testing.T) {
	ds := testutil.NewRecords(t).Add(
		sale("TXN_0000001", "CUST_1", "2024-01-08", "Food", "Cash", "Online", 10, true),
		sale("TXN_0000002", "CUST_1", "2024-01-10", "Food", "Cash", "In-store", 20, false),
		sale("TXN_0000003", "CUST_2", "2024-01-13", "Beverages", "Credit Card", "Online", 5, true),
		sale("TXN_0000003", "CUST_2", "2024-01-13", "Beverages", "Credit Card", "Online", 5, false),
		sale("TXN_0000004", "CUST_3", "2024-01-02", "Food", "Cash", "Online", 7, false),
	).Build()

	table, err := BuildWeekly(ds)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, []string{
		ColumnWeekKey, ColumnAvgRepeatPurchases, ColumnTotalSales,
		ColumnUniqueTransactions, ColumnUniqueCustomers, ColumnDiscountedTransactions,
		"Beverages", "Food",
		"Cash", "Credit Card",
		"In-store", "Online",
	}, table.Columns())

	assert.Equal(t, "2023-12-31", table.Get(0, ColumnWeekKey).String())
	assert.Equal(t, "2024-01-07", table.Get(1, ColumnWeekKey).String())

	assert.Equal(t, 40.0, cellFloat(t, table, 1, ColumnTotalSales))
	assert.Equal(t, 3.0, cellFloat(t, table, 1, ColumnUniqueTransactions))
	assert.Equal(t, 2.0, cellFloat(t, table, 1, ColumnUniqueCustomers))
	assert.Equal(t, 2.0, cellFloat(t, table, 1, ColumnDiscountedTransactions))
	assert.Equal(t, 0.5, cellFloat(t, table, 1, ColumnAvgRepeatPurchases))

	assert.Equal(t, 10.0, cellFloat(t, table, 1, "Beverages"))
	assert.Equal(t, 30.0, cellFloat(t, table, 1, "Food"))
	assert.Equal(t, 0.0, cellFloat(t, table, 0, "Beverages"), "pivot fills unseen values with 0")
	assert.Equal(t, 2.0, cellFloat(t, table, 1, "Cash"))
	assert.Equal(t, 1.0, cellFloat(t, table, 1, "Credit Card"), "distinct transaction count")
	assert.Equal(t, 2.0, cellFloat(t, table, 1, "Online"))
	assert.Equal(t, 1.0, cellFloat(t, table, 1, "In-store"))

	assert.Equal(t, 7.0, cellFloat(t, table, 0, ColumnTotalSales))
	assert.Equal(t, 0.0, cellFloat(t, table, 0, ColumnAvgRepeatPurchases))
}

func TestBuildWeekly_JoinLeavesMissing(t *testing.T) {
	ds := testutil.NewRecords(t).Add(
		sale("TXN_0000001", "CUST_1", "2024-01-08", "Food", "Cash", "Online", 10, false),
		sale("TXN_0000002", "CUST_2", "2024-01-15", "Food", "Cash", "Online", 10, false).
			Without(model.ColumnCategory),
	).Build()

	table, err := BuildWeekly(ds)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, 10.0, cellFloat(t, table, 0, "Food"))
	assert.True(t, table.Get(1, "Food").IsMissing(), "week with no categorized rows has no pivot row")
	assert.Equal(t, 1.0, cellFloat(t, table, 1, "Cash"))
}

func TestBuildWeekly_MissingValues(t *testing.T) {
	ds := testutil.NewRecords(t).Add(
		sale("TXN_0000001", "CUST_1", "2024-01-08", "Food", "Cash", "Online", 10, false).
			Without(model.ColumnCustomerID).
			Without(model.ColumnDiscountApplied),
		sale("TXN_0000002", "CUST_1", "2024-01-09", "Food", "Cash", "Online", 10, false).
			Without(model.ColumnCustomerID),
		sale("TXN_0000003", "CUST_1", "2024-01-09", "Food", "Cash", "Online", 10, false).
			Without(model.ColumnTransactionDate),
	).Build()

	table, err := BuildWeekly(ds)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len(), "rows without a date are left out")

	assert.Equal(t, 20.0, cellFloat(t, table, 0, ColumnTotalSales))
	assert.Equal(t, 0.0, cellFloat(t, table, 0, ColumnUniqueCustomers))
	assert.Equal(t, 0.5, cellFloat(t, table, 0, ColumnAvgRepeatPurchases), "a repeated missing customer counts as a repeat")
	assert.Equal(t, 0.0, cellFloat(t, table, 0, ColumnDiscountedTransactions))
}

func TestBuildWeekly_Errors(t *testing.T) {
	t.Run("unparseable date", func(t *testing.T) {
		ds := testutil.NewRecords(t).Add(
			testutil.ValidRecord().With(model.ColumnTransactionDate, model.String("someday")),
		).Build()
		_, err := BuildWeekly(ds)
		require.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("missing column", func(t *testing.T) {
		ds := testutil.NewRecords(t).WithColumns(model.ColumnTransactionDate).Add(testutil.ValidRecord()).Build()
		_, err := BuildWeekly(ds)
		require.ErrorIs(t, err, model.ErrMissingColumn)
	})

	t.Run("pivot value reuses a column name", func(t *testing.T) {
		ds := testutil.NewRecords(t).Add(
			testutil.ValidRecord().With(model.ColumnCategory, model.String(ColumnTotalSales)),
		).Build()
		_, err := BuildWeekly(ds)
		require.ErrorIs(t, err, ErrColumnConflict)
	})
}
