package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionRequest describes a payment a user is proposing to make.
// It is immutable once constructed; the late-night flag is supplied by
// the caller, never derived from a clock.
type TransactionRequest struct {
	UserID      string          `json:"user_id"`
	Merchant    string          `json:"merchant"`
	Amount      decimal.Decimal `json:"amount"`
	IsLateNight bool            `json:"is_late_night"`
}

// HistoryEntry is one past transaction on an account.
type HistoryEntry struct {
	Date     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
}

// Matches reports whether the entry matches the given merchant and amount.
// Merchant comparison is case-insensitive and whitespace-trimmed; the
// amount comparison is exact.
func (h HistoryEntry) Matches(merchant string, amount decimal.Decimal) bool {
	return strings.EqualFold(strings.TrimSpace(h.Merchant), strings.TrimSpace(merchant)) &&
		h.Amount.Equal(amount)
}

// AccountSnapshot is a read-only copy of an account as the backend stores
// it. History is ordered most-recent-first.
type AccountSnapshot struct {
	Name    string          `json:"name"`
	Profile Profile         `json:"profile"`
	Balance decimal.Decimal `json:"balance"`
	History []HistoryEntry  `json:"history"`
}
