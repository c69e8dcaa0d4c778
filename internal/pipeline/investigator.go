package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekhyaVemuri/FinClarify/internal/llm"
)

// historyWindow limits how many recent transactions the investigator sees.
const historyWindow = 3

const investigatorSystemPrompt = `You are the Transaction Investigator. Analyze the data for specific triggers.

INVESTIGATION CHECKLIST:
1. Zero Balance Risk: Does Balance - Amount == 0? (Strictly True/False).
2. Overdraft Risk: Is Amount > Balance?
3. High Value Risk: Is Amount > $100?
4. Duplicate Risk: Does Merchant/Amount match exactly in history?

Output a concise factual report summary. Do not decide or recommend an action.`

// Investigator produces a free-text evidentiary summary of the proposed
// transaction. Its output is opaque: any text the model returns, empty
// included, is forwarded unchanged.
type Investigator struct {
	client llm.Client
}

// NewInvestigator creates the first pipeline stage.
func NewInvestigator(client llm.Client) *Investigator {
	return &Investigator{client: client}
}

// Run executes the stage. A failed completion call is fatal for the whole
// pipeline; there is no retry.
func (i *Investigator) Run(ctx context.Context, st State) (State, error) {
	report, err := i.client.Complete(ctx, llm.CompletionRequest{
		System: investigatorSystemPrompt,
		Prompt: i.buildEvidence(st),
	})
	if err != nil {
		return st, fmt.Errorf("investigator stage: %w", err)
	}

	st.InvestigationReport = report
	return st, nil
}

// buildEvidence formats the request, balance, recent history and the
// deterministic risk finding into the evidence context for the model.
func (i *Investigator) buildEvidence(st State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "REQUEST: Pay $%s to '%s' (Late Night: %t)\n", st.Request.Amount.String(), st.Request.Merchant, st.Request.IsLateNight)
	fmt.Fprintf(&b, "CURRENT BALANCE: $%s\n", st.Account.Balance.String())

	b.WriteString("PREVIOUS TRANSACTIONS:\n")
	history := st.Account.History
	if len(history) > historyWindow {
		history = history[:historyWindow]
	}
	if len(history) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, entry := range history {
		fmt.Fprintf(&b, "  - %s: $%s to '%s'\n", entry.Date, entry.Amount.String(), entry.Merchant)
	}

	fmt.Fprintf(&b, "SERVER FLAGS: risk=%s code=%s\n", st.Risk.Classification, st.Risk.Code)

	return b.String()
}
