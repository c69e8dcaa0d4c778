package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlekhyaVemuri/FinClarify/internal/llm"
	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

// designerTemperature is higher than the decision stages: copy writing
// benefits from some variety, judgment does not.
const designerTemperature = 0.4

const designerSystemPrompt = `You are FinClarify, an Inclusive UI Designer.
Create UI content for the given Action, Profile and Amount.

DESIGN REQUIREMENTS:
1. headline:
   - If STOP because of zero balance: "EMPTY WALLET PROTECT"
   - If CAUTION because of a high amount: "HIGH AMOUNT ALERT"
   - If STOP because of a duplicate: "DOUBLE PAY ALERT"
   - Max 3-4 words. Uppercase. Emojis allowed.
2. audio_script:
   - If the profile has a hearing accommodation: "" (empty).
   - Else: MAX 12 WORDS. Conversational warning.
   - Example: "Wait. This will leave you with zero dollars."
3. financial_tip: Educational, grade 5 reading level.

Respond with ONLY a JSON object:
{"headline": "...", "simple_explanation": "...", "financial_tip": "...", "audio_script": "..."}`

// Designer renders the decision into accessibility-tailored UI copy.
type Designer struct {
	client llm.Client
}

// NewDesigner creates the third pipeline stage.
func NewDesigner(client llm.Client) *Designer {
	return &Designer{client: client}
}

// Run executes the stage. Transport failure escalates; anything the model
// returns that does not parse is replaced by the fixed fallback payload,
// never surfaced to the caller as an error.
func (d *Designer) Run(ctx context.Context, st State) (State, error) {
	content, err := d.client.Complete(ctx, llm.CompletionRequest{
		System:      designerSystemPrompt,
		Prompt:      d.buildPrompt(st),
		Temperature: designerTemperature,
	})
	if err != nil {
		return st, fmt.Errorf("designer stage: %w", err)
	}

	st.UI = d.render(content, st.Profile)
	return st, nil
}

func (d *Designer) buildPrompt(st State) string {
	prompt := fmt.Sprintf("Action: %s\nProfile: %s\nAmount: $%s\nReason: %s",
		st.Decision.Action, st.Profile, st.Request.Amount.String(), st.Decision.ReasonCode)
	if st.Profile.SuppressesAudio() {
		prompt += "\nThis profile has a hearing accommodation: audio_script MUST be an empty string."
	}
	return prompt
}

// render parses the model output, substituting the fallback payload on
// any failure.
func (d *Designer) render(content string, profile model.Profile) model.UIPayload {
	var parsed model.UIPayload
	if err := llm.DecodeObject(content, &parsed); err != nil {
		slog.Warn("designer payload unparseable, using fallback", "error", err)
		return FallbackPayload()
	}

	if parsed.Headline == "" || parsed.SimpleExplanation == "" || parsed.FinancialTip == "" {
		slog.Warn("designer payload missing required fields, using fallback")
		return FallbackPayload()
	}

	if profile.SuppressesAudio() {
		parsed.AudioScript = ""
	}

	return parsed
}

// FallbackPayload is the fixed UI content substituted when the designer
// output cannot be parsed.
func FallbackPayload() model.UIPayload {
	return model.UIPayload{
		Headline:          "SAFETY CHECK",
		SimpleExplanation: "We detected a risk.",
		FinancialTip:      "Always check details.",
		AudioScript:       "Please review details.",
	}
}
