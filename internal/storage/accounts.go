package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AlekhyaVemuri/FinClarify/internal/common"
	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

// Authenticate verifies a username/password pair. Demo credentials are
// stored in plaintext; this is not an authentication system.
func (s *SQLiteStorage) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(username, "username"); err != nil {
		return nil, err
	}

	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.getUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password != password {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser fetches a user by id.
func (s *SQLiteStorage) GetUser(ctx context.Context, id string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, name, profile, balance FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (s *SQLiteStorage) getUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, name, profile, balance FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var user model.User
	var balance string

	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Name, &user.Profile, &balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("invalid stored balance %q: %w", balance, err)
	}

	return &user, nil
}

// GetAccount returns a read-only snapshot of the user's account. History
// is ordered most-recent-first.
func (s *SQLiteStorage) GetAccount(ctx context.Context, userID string) (*model.AccountSnapshot, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, merchant, amount FROM history WHERE user_id = ? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var history []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var amount string
		if err := rows.Scan(&entry.Date, &entry.Merchant, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return &model.AccountSnapshot{
		Name:    user.Name,
		Profile: user.Profile,
		Balance: user.Balance,
		History: history,
	}, nil
}
