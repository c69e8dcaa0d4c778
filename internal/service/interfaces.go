// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

// Storage defines the contract for the persistence layer. Every balance
// mutation goes through ExecuteTransaction, which runs in a single
// database transaction.
type Storage interface {
	// Authenticate verifies demo credentials. The username is trimmed
	// and lowercased before lookup.
	Authenticate(ctx context.Context, username, password string) (*model.User, error)

	// GetUser fetches a user by id.
	GetUser(ctx context.Context, id string) (*model.User, error)

	// GetAccount returns a read-only snapshot of the user's account with
	// history ordered most-recent-first.
	GetAccount(ctx context.Context, userID string) (*model.AccountSnapshot, error)

	// ExecuteTransaction debits the balance by exactly amount, prepends
	// one history entry dated today and appends one global ledger entry,
	// all atomically.
	ExecuteTransaction(ctx context.Context, userID, merchant string, amount decimal.Decimal) error

	// ListLedger returns the global transaction ledger, newest first.
	ListLedger(ctx context.Context) ([]model.LedgerEntry, error)

	// Database management.
	Migrate(ctx context.Context) error
	Seed(ctx context.Context) error
	Close() error
}
