package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a backend account holder. The password is a plaintext demo
// credential; hardening authentication is out of scope.
type User struct {
	ID       string          `json:"user_id"`
	Username string          `json:"username"`
	Password string          `json:"-"`
	Name     string          `json:"name"`
	Profile  Profile         `json:"profile"`
	Balance  decimal.Decimal `json:"balance"`
}

// Role returns the login role for the user.
func (u User) Role() string {
	if u.Profile == ProfileAdmin {
		return "admin"
	}
	return "user"
}

// LedgerEntry is one row of the global audit ledger, appended whenever a
// transaction executes.
type LedgerEntry struct {
	ID       string          `json:"id"`
	Time     time.Time       `json:"time"`
	UserName string          `json:"user"`
	Amount   decimal.Decimal `json:"amount"`
}
