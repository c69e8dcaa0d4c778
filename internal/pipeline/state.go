// Package pipeline implements the three-stage safety pipeline:
// investigate, decide, render. Stages run strictly in sequence and each
// writes exactly one field of the shared state.
package pipeline

import "github.com/AlekhyaVemuri/FinClarify/internal/model"

// State is the record threaded through the stages. It is passed by
// value: each stage receives a copy, fills in only its own field and
// returns the result, so no stage can mutate a field owned by an earlier
// one.
type State struct {
	// Inputs, fixed before the first stage runs.
	Profile model.Profile
	Request model.TransactionRequest
	Account model.AccountSnapshot
	Risk    model.RiskFinding

	// Filled by the investigator stage.
	InvestigationReport string

	// Filled by the compliance stage.
	Decision model.Decision

	// Filled by the designer stage.
	UI model.UIPayload
}

// NewState builds the initial state with the four top-level inputs and
// empty placeholder fields.
func NewState(profile model.Profile, req model.TransactionRequest, account model.AccountSnapshot, finding model.RiskFinding) State {
	return State{
		Profile: profile,
		Request: req,
		Account: account,
		Risk:    finding,
	}
}
