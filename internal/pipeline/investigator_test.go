package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

func TestInvestigatorPassesReportThrough(t *testing.T) {
	client := &stubClient{responses: []string{"Overdraft risk: amount exceeds balance."}}
	inv := NewInvestigator(client)

	st := NewState(model.ProfileStandard, testRequest("Shop", "100", false), testAccount("45"),
		model.RiskFinding{Classification: model.RiskCritical, Code: model.CodeInsufficientFunds})

	out, err := inv.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, "Overdraft risk: amount exceeds balance.", out.InvestigationReport)
}

func TestInvestigatorAcceptsEmptyReport(t *testing.T) {
	client := &stubClient{responses: []string{""}}
	inv := NewInvestigator(client)

	st := NewState(model.ProfileStandard, testRequest("Shop", "50", false), testAccount("1200"),
		model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK})

	out, err := inv.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Empty(t, out.InvestigationReport)
}

func TestInvestigatorCompletionErrorIsFatal(t *testing.T) {
	client := &stubClient{errs: []error{errors.New("timeout")}}
	inv := NewInvestigator(client)

	st := NewState(model.ProfileStandard, testRequest("Shop", "50", false), testAccount("1200"),
		model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK})

	_, err := inv.Run(context.Background(), st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "investigator stage")
}

func TestInvestigatorEvidenceContents(t *testing.T) {
	client := &stubClient{responses: []string{"report"}}
	inv := NewInvestigator(client)

	acct := testAccount("850",
		model.HistoryEntry{Date: "2024-01-15", Merchant: "Electric Co", Amount: decimal.RequireFromString("120")})
	st := NewState(model.ProfileMemory, testRequest("Electric Co", "120", true), acct,
		model.RiskFinding{Classification: model.RiskCritical, Code: model.CodeDuplicateTransaction})

	_, err := inv.Run(context.Background(), st)
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	prompt := client.requests[0].Prompt
	assert.Contains(t, prompt, "REQUEST: Pay $120 to 'Electric Co' (Late Night: true)")
	assert.Contains(t, prompt, "CURRENT BALANCE: $850")
	assert.Contains(t, prompt, "2024-01-15: $120 to 'Electric Co'")
	assert.Contains(t, prompt, "SERVER FLAGS: risk=CRITICAL code=duplicate-transaction")
	assert.Contains(t, client.requests[0].System, "Transaction Investigator")
}

func TestInvestigatorHistoryWindow(t *testing.T) {
	client := &stubClient{responses: []string{"report"}}
	inv := NewInvestigator(client)

	acct := testAccount("5000",
		model.HistoryEntry{Date: "2024-04-04", Merchant: "Fourth", Amount: decimal.RequireFromString("4")},
		model.HistoryEntry{Date: "2024-03-03", Merchant: "Third", Amount: decimal.RequireFromString("3")},
		model.HistoryEntry{Date: "2024-02-02", Merchant: "Second", Amount: decimal.RequireFromString("2")},
		model.HistoryEntry{Date: "2024-01-01", Merchant: "First", Amount: decimal.RequireFromString("1")},
	)
	st := NewState(model.ProfileStandard, testRequest("Shop", "10", false), acct,
		model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK})

	_, err := inv.Run(context.Background(), st)
	require.NoError(t, err)

	prompt := client.requests[0].Prompt
	assert.Contains(t, prompt, "Fourth")
	assert.Contains(t, prompt, "Third")
	assert.Contains(t, prompt, "Second")
	assert.NotContains(t, prompt, "First")
}

func TestInvestigatorEmptyHistoryPlaceholder(t *testing.T) {
	client := &stubClient{responses: []string{"report"}}
	inv := NewInvestigator(client)

	st := NewState(model.ProfileStandard, testRequest("Shop", "10", false), testAccount("5000"),
		model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK})

	_, err := inv.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Contains(t, client.requests[0].Prompt, "(none)")
}
