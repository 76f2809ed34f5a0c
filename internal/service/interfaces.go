// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/salesprep/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Reference price operations
	SavePriceTable(ctx context.Context, table model.PriceTable) error
	GetPriceTable(ctx context.Context) (model.PriceTable, error)

	// Validation run history
	SaveRun(ctx context.Context, run *model.RunSummary) error
	GetRun(ctx context.Context, id string) (*model.RunSummary, error)
	ListRuns(ctx context.Context, limit int) ([]model.RunSummary, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
