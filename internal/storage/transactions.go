package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlekhyaVemuri/FinClarify/internal/common"
)

// ExecuteTransaction debits the user's balance by exactly amount,
// prepends one history entry dated today and appends one global ledger
// entry. All three writes happen in a single database transaction so a
// failure leaves no partial state.
func (s *SQLiteStorage) ExecuteTransaction(ctx context.Context, userID, merchant string, amount decimal.Decimal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(merchant, "merchant"); err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative: %s", amount.String())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var name, balanceStr string
	row := tx.QueryRowContext(ctx, `SELECT name, balance FROM users WHERE id = ?`, userID)
	if err := row.Scan(&name, &balanceStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return fmt.Errorf("invalid stored balance %q: %w", balanceStr, err)
	}

	if amount.GreaterThan(balance) {
		return common.ErrInsufficientFunds
	}

	now := time.Now()
	newBalance := balance.Sub(amount)

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET balance = ? WHERE id = ?`, newBalance.String(), userID); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO history (user_id, date, merchant, amount) VALUES (?, ?, ?, ?)`,
		userID, now.Format("2006-01-02"), merchant, amount.String()); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ledger (id, time, user_name, amount) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), now.UTC().Format(ledgerTimeLayout), name, amount.String()); err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
