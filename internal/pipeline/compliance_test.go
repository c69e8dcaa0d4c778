package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlekhyaVemuri/FinClarify/internal/model"
)

func complianceState(profile model.Profile, req model.TransactionRequest, finding model.RiskFinding) State {
	st := NewState(profile, req, testAccount("2500"), finding)
	st.InvestigationReport = "report"
	return st
}

func TestComplianceParsesDecision(t *testing.T) {
	client := &stubClient{responses: []string{`{"action": "STOP", "reason_code": "overdraft"}`}}
	c := NewCompliance(client)

	st := complianceState(model.ProfileStandard, testRequest("Shop", "100", false),
		model.RiskFinding{Classification: model.RiskCritical, Code: model.CodeInsufficientFunds})

	out, err := c.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, model.ActionStop, out.Decision.Action)
	assert.Equal(t, "overdraft", out.Decision.ReasonCode)
}

func TestComplianceFailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "prose instead of JSON", content: "The payment seems risky, better not to allow it."},
		{name: "fenced garbage", content: "```json\nnot json at all\n```"},
		{name: "missing action field", content: `{"reason_code": "overdraft"}`},
		{name: "action outside the enum", content: `{"action": "MAYBE", "reason_code": "overdraft"}`},
		{name: "empty response", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{responses: []string{tt.content}}
			c := NewCompliance(client)

			// SAFE finding: the fail-closed STOP must win even when the
			// deterministic rules saw nothing wrong.
			st := complianceState(model.ProfileStandard, testRequest("Shop", "50", false),
				model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK})

			out, err := c.Run(context.Background(), st)
			require.NoError(t, err)
			assert.Equal(t, model.ActionStop, out.Decision.Action)
			assert.Equal(t, "unparseable-decision", out.Decision.ReasonCode)
		})
	}
}

func TestComplianceOverridesModelAction(t *testing.T) {
	tests := []struct {
		name       string
		profile    model.Profile
		req        model.TransactionRequest
		finding    model.RiskFinding
		modelReply string
		wantAction model.Action
	}{
		{
			name:       "critical finding forces STOP over model GO",
			profile:    model.ProfileMemory,
			req:        testRequest("Shop", "850", false),
			finding:    model.RiskFinding{Classification: model.RiskCritical, Code: model.CodeExactBalanceDrain},
			modelReply: `{"action": "GO", "reason_code": "looks-fine"}`,
			wantAction: model.ActionStop,
		},
		{
			name:       "high finding with impulse profile late at night forces STOP",
			profile:    model.ProfileAttention,
			req:        testRequest("Shop", "150", true),
			finding:    model.RiskFinding{Classification: model.RiskHigh, Code: model.CodeLateNightImpulse},
			modelReply: `{"action": "CAUTION", "reason_code": "late-night-impulse"}`,
			wantAction: model.ActionStop,
		},
		{
			name:       "high finding with standard profile is CAUTION",
			profile:    model.ProfileStandard,
			req:        testRequest("Shop", "150", true),
			finding:    model.RiskFinding{Classification: model.RiskHigh, Code: model.CodeLateNightImpulse},
			modelReply: `{"action": "STOP", "reason_code": "late-night-impulse"}`,
			wantAction: model.ActionCaution,
		},
		{
			name:       "moderate finding is CAUTION over model GO",
			profile:    model.ProfileStandard,
			req:        testRequest("Shop", "150", false),
			finding:    model.RiskFinding{Classification: model.RiskModerate, Code: model.CodeLargeAmount},
			modelReply: `{"action": "GO", "reason_code": "ok"}`,
			wantAction: model.ActionCaution,
		},
		{
			name:       "safe finding is GO over model STOP",
			profile:    model.ProfileVisual,
			req:        testRequest("Shop", "50", false),
			finding:    model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK},
			modelReply: `{"action": "STOP", "reason_code": "paranoia"}`,
			wantAction: model.ActionGo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{responses: []string{tt.modelReply}}
			c := NewCompliance(client)

			out, err := c.Run(context.Background(), complianceState(tt.profile, tt.req, tt.finding))
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, out.Decision.Action)
		})
	}
}

func TestComplianceEmptyReasonFallsBackToFindingCode(t *testing.T) {
	client := &stubClient{responses: []string{`{"action": "CAUTION", "reason_code": ""}`}}
	c := NewCompliance(client)

	st := complianceState(model.ProfileStandard, testRequest("Shop", "150", false),
		model.RiskFinding{Classification: model.RiskModerate, Code: model.CodeLargeAmount})

	out, err := c.Run(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, model.CodeLargeAmount, out.Decision.ReasonCode)
}

func TestComplianceTransportErrorEscalates(t *testing.T) {
	client := &stubClient{errs: []error{errors.New("boom")}}
	c := NewCompliance(client)

	st := complianceState(model.ProfileStandard, testRequest("Shop", "50", false),
		model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK})

	_, err := c.Run(context.Background(), st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compliance stage")
}

func TestCompliancePromptIncludesProfileAndReport(t *testing.T) {
	client := &stubClient{responses: []string{`{"action": "GO", "reason_code": "ok"}`}}
	c := NewCompliance(client)

	st := complianceState(model.ProfileMemory, testRequest("Shop", "50", false),
		model.RiskFinding{Classification: model.RiskSafe, Code: model.CodeOK})
	st.InvestigationReport = "nothing suspicious found"

	_, err := c.Run(context.Background(), st)
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].Prompt, string(model.ProfileMemory))
	assert.Contains(t, client.requests[0].Prompt, "nothing suspicious found")
}
