package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

// ledgerTimeLayout is fixed-width so lexicographic ordering in SQL
// matches chronological ordering.
const ledgerTimeLayout = "2006-01-02T15:04:05.000000000Z"

// ListLedger returns the global transaction ledger, newest first.
func (s *SQLiteStorage) ListLedger(ctx context.Context) ([]model.LedgerEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, time, user_name, amount FROM ledger ORDER BY time DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LedgerEntry
	for rows.Next() {
		var entry model.LedgerEntry
		var ts, amount string
		if err := rows.Scan(&entry.ID, &ts, &entry.UserName, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entry.Time, err = time.Parse(ledgerTimeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("invalid stored timestamp %q: %w", ts, err)
		}
		entry.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger: %w", err)
	}

	return entries, nil
}
