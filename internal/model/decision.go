package model

import "strings"

// Action is the gate the pipeline places on a proposed payment.
type Action string

// The three possible actions.
const (
	ActionStop    Action = "STOP"
	ActionCaution Action = "CAUTION"
	ActionGo      Action = "GO"
)

// ParseAction maps free text onto the action enum. The second return is
// false for anything outside the three-member set.
func ParseAction(s string) (Action, bool) {
	switch Action(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionStop:
		return ActionStop, true
	case ActionCaution:
		return ActionCaution, true
	case ActionGo:
		return ActionGo, true
	default:
		return "", false
	}
}

// Decision is the compliance outcome. Once set it is final for the rest
// of the pipeline and for the caller.
type Decision struct {
	Action     Action `json:"action"`
	ReasonCode string `json:"reason_code"`
}

// UIPayload is the presentational content rendered to the user. The three
// text fields are always non-empty; AudioScript may be empty for profiles
// that opt out of spoken content.
type UIPayload struct {
	Headline          string `json:"headline"`
	SimpleExplanation string `json:"simple_explanation"`
	FinancialTip      string `json:"financial_tip"`
	AudioScript       string `json:"audio_script"`
}
