package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/salesprep/internal/common"
	"github.com/Veraticus/salesprep/internal/config"
	"github.com/Veraticus/salesprep/internal/dataio"
	"github.com/Veraticus/salesprep/internal/model"
	"github.com/Veraticus/salesprep/internal/service"
	"github.com/Veraticus/salesprep/internal/storage"
)

// envKeyReplacer maps nested keys such as features.lags to SALESPREP_FEATURES_LAGS.
var envKeyReplacer = strings.NewReplacer(".", "_")

// loadPipeline reads the validated pipeline settings from the global viper.
func loadPipeline() (*config.Pipeline, error) {
	config.SetDefaults(viper.GetViper())
	p, err := config.LoadPipeline(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("invalid settings", err)
	}
	return p, nil
}

// initStorage opens the configured database and applies migrations.
func initStorage(ctx context.Context, p *config.Pipeline) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(p.DatabasePath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// readRecords reads a sales record file and rejects empty ones.
func readRecords(path string) (*model.Dataset, error) {
	ds, err := dataio.Read(path, dataio.RecordSchema())
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not read records from %s", path), err)
	}
	if ds.Len() == 0 {
		return nil, common.NewUserError(path, common.ErrNoRecords)
	}
	common.LogDebug("Read records", common.Fields{"path": path, "rows": ds.Len(), "columns": len(ds.Columns())})
	return ds, nil
}

// loadInputs reads the records and the reference prices concurrently. Prices
// come from pricesPath when set and from the database otherwise.
func loadInputs(ctx context.Context, store service.Storage, recordsPath, pricesPath string) (*model.Dataset, model.PriceTable, error) {
	var (
		records *model.Dataset
		prices  model.PriceTable
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ds, err := readRecords(recordsPath)
		if err != nil {
			return err
		}
		records = ds
		return nil
	})
	g.Go(func() error {
		if pricesPath != "" {
			table, err := dataio.LoadPriceTable(pricesPath)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not read prices from %s", pricesPath), err)
			}
			prices = table
			return nil
		}
		table, err := store.GetPriceTable(ctx)
		if err != nil {
			return fmt.Errorf("failed to load stored prices: %w", err)
		}
		if len(table) == 0 {
			return common.NewUserError("no reference prices stored; run 'salesprep prices import <file>' or pass --prices", common.ErrNoReferencePrices)
		}
		prices = table
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return records, prices, nil
}

// writeDataset writes ds to path, or as CSV to w when path is empty.
func writeDataset(w io.Writer, path string, ds *model.Dataset) error {
	if path == "" {
		return dataio.WriteCSV(w, ds)
	}
	if err := dataio.Write(path, ds); err != nil {
		return common.NewUserError(fmt.Sprintf("could not write %s", path), err)
	}
	common.LogInfo("Wrote dataset", common.Fields{"path": path, "rows": ds.Len()})
	return nil
}

func sourceName(path string) string {
	return filepath.Base(path)
}
