package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/salesprep/internal/model"
	"github.com/Veraticus/salesprep/internal/service"
	"github.com/Veraticus/salesprep/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage service.Storage
	Prices  model.PriceTable
	t       *testing.T
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup func(context.Context, service.Storage) error
	Prices      model.PriceTable
	Runs        []model.RunSummary
}

// SetupTestDB creates a new in-memory test database seeded with prices.
// It automatically handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.StandardPrices())
func SetupTestDB(t *testing.T, prices model.PriceTable) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{Prices: prices})
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	// Create in-memory SQLite storage
	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(opts.Prices) > 0 {
		if err := store.SavePriceTable(ctx, opts.Prices); err != nil {
			t.Fatalf("failed to seed prices: %v", err)
		}
	}

	for i := range opts.Runs {
		if err := store.SaveRun(ctx, &opts.Runs[i]); err != nil {
			t.Fatalf("failed to seed run %d: %v", i, err)
		}
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return &TestDB{
		Storage: store,
		Prices:  opts.Prices,
		t:       t,
	}
}

// MustRuns returns the stored runs, newest first, or fails the test.
func (db *TestDB) MustRuns() []model.RunSummary {
	db.t.Helper()
	runs, err := db.Storage.ListRuns(context.Background(), 0)
	if err != nil {
		db.t.Fatalf("failed to list runs: %v", err)
	}
	return runs
}
