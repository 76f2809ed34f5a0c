// Package storage provides the persistence layer for reference prices and
// validation run history.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/salesprep/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidPriceRow  = errors.New("invalid price interval")
	ErrInvalidRun       = errors.New("invalid run summary")
	ErrInvalidListLimit = errors.New("limit must not be negative")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validatePriceTable checks every interval of a price table before it is
// persisted. An empty table is allowed; it clears the stored prices.
func validatePriceTable(table model.PriceTable) error {
	for i, p := range table {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrInvalidPriceRow, i, err)
		}
	}
	return nil
}

// validateRun validates a run summary.
func validateRun(run *model.RunSummary) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if run.Source == "" {
		return fmt.Errorf("%w: source is required", ErrInvalidRun)
	}
	if run.Rows < 0 || run.Duplicates < 0 {
		return fmt.Errorf("%w: counts must not be negative", ErrInvalidRun)
	}
	if run.Duplicates > run.Rows {
		return fmt.Errorf("%w: %d duplicates exceed %d rows", ErrInvalidRun, run.Duplicates, run.Rows)
	}
	return nil
}
