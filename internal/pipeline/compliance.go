package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlekhyaVemuri/FinClarify/internal/llm"
	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

// reasonUnparseable is the reason code attached when the model's decision
// cannot be parsed and the action falls back to STOP.
const reasonUnparseable = "unparseable-decision"

const complianceSystemPrompt = `You are the Safety Compliance Manager. Decide the Action based on findings.

STRICT POLICY RULES:
1. ZERO BALANCE: If the transaction results in exactly $0.00 left -> ACTION: STOP.
   (Reason: Prevent total funds drain).
2. OVERDRAFT: If Amount > Balance -> ACTION: STOP.
3. DUPLICATE: If duplicate found -> ACTION: STOP.
4. HIGH VALUE ($100+): If Amount > 100 -> ACTION: CAUTION (require confirmation).
   EXCEPTION: If the profile is an attention/impulse type AND it is late night -> ACTION: STOP.
5. DEFAULT: If no risks -> ACTION: GO.

Respond with ONLY a JSON object: {"action": "STOP/CAUTION/GO", "reason_code": "..."}`

// Compliance turns the investigation report into a decision. The parsed
// model output is advisory only: the deterministic risk finding is
// authoritative, so the final action is always the one the finding
// implies. On any parse failure the action is STOP, never GO.
type Compliance struct {
	client llm.Client
}

// NewCompliance creates the second pipeline stage.
func NewCompliance(client llm.Client) *Compliance {
	return &Compliance{client: client}
}

// Run executes the stage. Transport failure escalates; parse failure is
// recovered in-stage with the fail-safe default.
func (c *Compliance) Run(ctx context.Context, st State) (State, error) {
	content, err := c.client.Complete(ctx, llm.CompletionRequest{
		System: complianceSystemPrompt,
		Prompt: c.buildPrompt(st),
	})
	if err != nil {
		return st, fmt.Errorf("compliance stage: %w", err)
	}

	st.Decision = c.decide(content, st)
	return st, nil
}

func (c *Compliance) buildPrompt(st State) string {
	return fmt.Sprintf("User Profile: %s\nInvestigator Report:\n%s", st.Profile, st.InvestigationReport)
}

// decide parses the model output defensively and reconciles it with the
// deterministic risk finding.
func (c *Compliance) decide(content string, st State) model.Decision {
	var parsed struct {
		Action     string `json:"action"`
		ReasonCode string `json:"reason_code"`
	}

	if err := llm.DecodeObject(content, &parsed); err != nil {
		slog.Warn("compliance decision unparseable, failing closed", "error", err)
		return model.Decision{Action: model.ActionStop, ReasonCode: reasonUnparseable}
	}

	action, ok := model.ParseAction(parsed.Action)
	if !ok {
		slog.Warn("compliance decision outside action enum, failing closed", "action", parsed.Action)
		return model.Decision{Action: model.ActionStop, ReasonCode: reasonUnparseable}
	}

	required := requiredAction(st.Risk, st.Profile, st.Request.IsLateNight)
	if action != required {
		slog.Warn("model decision overridden by risk finding",
			"model_action", action,
			"required_action", required,
			"risk", st.Risk.Classification,
			"code", st.Risk.Code)
		action = required
	}

	reason := parsed.ReasonCode
	if reason == "" {
		reason = st.Risk.Code
	}

	return model.Decision{Action: action, ReasonCode: reason}
}

// requiredAction maps a risk finding onto the action the policy demands.
// CRITICAL findings always stop; HIGH findings stop for attention/impulse
// profiles late at night and warn otherwise; MODERATE findings warn;
// SAFE findings pass.
func requiredAction(finding model.RiskFinding, profile model.Profile, lateNight bool) model.Action {
	switch finding.Classification {
	case model.RiskCritical:
		return model.ActionStop
	case model.RiskHigh:
		if profile.IsAttentionImpulse() && lateNight {
			return model.ActionStop
		}
		return model.ActionCaution
	case model.RiskModerate:
		return model.ActionCaution
	default:
		return model.ActionGo
	}
}
