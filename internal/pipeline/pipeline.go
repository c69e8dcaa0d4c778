package pipeline

import (
	"context"
	"log/slog"

	"github.com/AlekhyaVemuri/FinClarify/internal/llm"
	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

// Pipeline is the fixed three-node path: Investigator -> Compliance ->
// Designer. No branching, no loops, no retries; a request either
// completes all three stages or fails on the first transport error.
type Pipeline struct {
	investigator *Investigator
	compliance   *Compliance
	designer     *Designer
}

// New wires the three stages to a single completion client.
func New(client llm.Client) *Pipeline {
	return &Pipeline{
		investigator: NewInvestigator(client),
		compliance:   NewCompliance(client),
		designer:     NewDesigner(client),
	}
}

// Run executes the pipeline for one proposed transaction and returns the
// completed state with the decision and UI payload populated.
func (p *Pipeline) Run(ctx context.Context, profile model.Profile, req model.TransactionRequest, account model.AccountSnapshot, finding model.RiskFinding) (State, error) {
	st := NewState(profile, req, account, finding)

	st, err := p.investigator.Run(ctx, st)
	if err != nil {
		return st, err
	}

	st, err = p.compliance.Run(ctx, st)
	if err != nil {
		return st, err
	}

	st, err = p.designer.Run(ctx, st)
	if err != nil {
		return st, err
	}

	slog.Info("pipeline completed",
		"user", req.UserID,
		"merchant", req.Merchant,
		"amount", req.Amount.String(),
		"risk", finding.Classification,
		"action", st.Decision.Action)

	return st, nil
}
