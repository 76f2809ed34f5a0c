package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Veraticus/salesprep/internal/model"
)

// SavePriceTable replaces the stored reference prices with table.
func (s *SQLiteStorage) SavePriceTable(ctx context.Context, table model.PriceTable) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePriceTable(table); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reference_prices`); err != nil {
			return fmt.Errorf("failed to clear reference prices: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO reference_prices (item, start_date, end_date, price)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, p := range table {
			if _, err := stmt.ExecContext(ctx,
				p.Item,
				p.Start.Format(model.DateLayout),
				p.End.Format(model.DateLayout),
				p.Price,
			); err != nil {
				return fmt.Errorf("failed to save price for %s: %w", p.Item, err)
			}
		}
		return nil
	})
}

// GetPriceTable returns the stored reference prices ordered by item and start date.
func (s *SQLiteStorage) GetPriceTable(ctx context.Context) (model.PriceTable, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT item, start_date, end_date, price
		FROM reference_prices
		ORDER BY item, start_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reference prices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var table model.PriceTable
	for rows.Next() {
		var p model.PriceInterval
		var start, end string
		if err := rows.Scan(&p.Item, &start, &end, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan reference price: %w", err)
		}
		if p.Start, err = time.Parse(model.DateLayout, start); err != nil {
			return nil, fmt.Errorf("stored start date for %s: %w", p.Item, err)
		}
		if p.End, err = time.Parse(model.DateLayout, end); err != nil {
			return nil, fmt.Errorf("stored end date for %s: %w", p.Item, err)
		}
		table = append(table, p)
	}
	return table, rows.Err()
}
