package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

type seedUser struct {
	id       string
	password string
	name     string
	profile  model.Profile
	balance  string
	history  []seedHistory
}

type seedHistory struct {
	date     string
	merchant string
	amount   string
}

// demoUsers are the fixed demonstration accounts.
var demoUsers = []seedUser{
	{
		id: "bob", password: "123", name: "Bob (Memory)",
		profile: model.ProfileMemory, balance: "850",
		history: []seedHistory{{date: "2024-01-15", merchant: "Electric Co", amount: "120"}},
	},
	{
		id: "alice", password: "123", name: "Alice (ADHD)",
		profile: model.ProfileAttention, balance: "2500",
	},
	{
		id: "charlie", password: "123", name: "Charlie (Dyslexia)",
		profile: model.ProfileCognitive, balance: "45",
	},
	{
		id: "diana", password: "123", name: "Diana (Visual)",
		profile: model.ProfileVisual, balance: "1200",
	},
	{
		id: "admin", password: "admin", name: "System Admin",
		profile: model.ProfileAdmin, balance: "0",
	},
}

// Seed installs the demo users and their starting history. Existing rows
// are left untouched, so seeding an already-populated database is a
// no-op.
func (s *SQLiteStorage) Seed(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range demoUsers {
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (id, username, password, name, profile, balance) VALUES (?, ?, ?, ?, ?, ?)`,
			u.id, u.id, u.password, u.name, string(u.profile), u.balance)
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.id, err)
		}

		inserted, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check seed result for %q: %w", u.id, err)
		}
		if inserted == 0 {
			continue
		}

		for _, h := range u.history {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO history (user_id, date, merchant, amount) VALUES (?, ?, ?, ?)`,
				u.id, h.date, h.merchant, h.amount); err != nil {
				return fmt.Errorf("failed to seed history for %q: %w", u.id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("Seeded demo users", "count", len(demoUsers))
	return nil
}
