// Package risk implements the deterministic risk facts service. Findings
// come from exact rule evaluation over the stored balance and history;
// no language model is involved and no account state is mutated.
package risk

import (
	"github.com/shopspring/decimal"

	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

// largeAmount is the illustrative threshold above which a payment counts
// as high value.
var largeAmount = decimal.NewFromInt(100)

// Analyze classifies a proposed transaction against an account snapshot.
// Rules apply in precedence order; the first match wins. Safe to call any
// number of times.
func Analyze(account model.AccountSnapshot, req model.TransactionRequest) model.RiskFinding {
	if req.Amount.GreaterThan(account.Balance) {
		return model.RiskFinding{Classification: model.RiskCritical, Code: model.CodeInsufficientFunds}
	}

	if req.Amount.Equal(account.Balance) {
		return model.RiskFinding{Classification: model.RiskCritical, Code: model.CodeExactBalanceDrain}
	}

	for _, entry := range account.History {
		if entry.Matches(req.Merchant, req.Amount) {
			return model.RiskFinding{Classification: model.RiskCritical, Code: model.CodeDuplicateTransaction}
		}
	}

	if req.Amount.GreaterThan(largeAmount) {
		if req.IsLateNight {
			return model.RiskFinding{Classification: model.RiskHigh, Code: model.CodeLateNightImpulse}
		}
		return model.RiskFinding{Classification: model.RiskModerate, Code: model.CodeLargeAmount}
	}

	return model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK}
}
