package model

// RiskLevel is the coarse classification of a proposed transaction's
// danger, computed by exact rule evaluation with no model involvement.
type RiskLevel string

// Risk classifications, from harmless to blocking.
const (
	RiskSafe     RiskLevel = "SAFE"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Machine-readable reason codes attached to risk findings.
const (
	CodeInsufficientFunds    = "insufficient-funds"
	CodeExactBalanceDrain    = "exact-balance-drain"
	CodeDuplicateTransaction = "duplicate-transaction"
	CodeLateNightImpulse     = "late-night-impulse"
	CodeLargeAmount          = "large-amount"
	CodeOK                   = "ok"
)

// RiskFinding pairs a classification with its reason code. It is computed
// once per request and never mutated afterward.
type RiskFinding struct {
	Classification RiskLevel `json:"risk"`
	Code           string    `json:"code"`
}
