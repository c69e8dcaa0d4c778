package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlekhyaVemuri/FinClarify/internal/common"
	"github.com/AlekhyaVemuri/FinClarify/internal/model"
	"github.com/AlekhyaVemuri/FinClarify/internal/pipeline"
	"github.com/AlekhyaVemuri/FinClarify/internal/risk"
	"github.com/AlekhyaVemuri/FinClarify/internal/service"
)

type handlers struct {
	storage  service.Storage
	pipeline *pipeline.Pipeline
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type transactionRequest struct {
	UserID      string          `json:"user_id" binding:"required"`
	Merchant    string          `json:"merchant"`
	Amount      decimal.Decimal `json:"amount"`
	IsLateNight bool            `json:"is_late_night"`
}

func (t transactionRequest) toModel() model.TransactionRequest {
	return model.TransactionRequest{
		UserID:      t.UserID,
		Merchant:    t.Merchant,
		Amount:      t.Amount,
		IsLateNight: t.IsLateNight,
	}
}

func (h *handlers) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "msg": "FinClarify server is running"})
}

func (h *handlers) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.storage.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":    user.Role(),
		"user_id": user.ID,
		"name":    user.Name,
	})
}

func (h *handlers) handleAccount(c *gin.Context) {
	account, err := h.storage.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *handlers) handleAnalyzeRisk(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.storage.GetAccount(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	finding := risk.Analyze(*account, req.toModel())
	c.JSON(http.StatusOK, finding)
}

func (h *handlers) handleExecute(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.storage.ExecuteTransaction(c.Request.Context(), req.UserID, req.Merchant, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		case errors.Is(err, common.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "insufficient funds"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "SUCCESS"})
}

func (h *handlers) handleAdminLogs(c *gin.Context) {
	entries, err := h.storage.ListLedger(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.LedgerEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// handleReview runs the deterministic risk analysis and the full
// three-stage pipeline for a proposed transaction. A completion
// transport failure surfaces as 502: fatal, no partial result.
func (h *handlers) handleReview(c *gin.Context) {
	if h.pipeline == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pipeline not configured"})
		return
	}

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	account, err := h.storage.GetAccount(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	modelReq := req.toModel()
	finding := risk.Analyze(*account, modelReq)

	st, err := h.pipeline.Run(ctx, account.Profile, modelReq, *account, finding)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trace_id":           uuid.NewString(),
		"risk":               finding.Classification,
		"code":               finding.Code,
		"action":             st.Decision.Action,
		"reason_code":        st.Decision.ReasonCode,
		"headline":           st.UI.Headline,
		"simple_explanation": st.UI.SimpleExplanation,
		"financial_tip":      st.UI.FinancialTip,
		"audio_script":       st.UI.AudioScript,
		"report":             st.InvestigationReport,
	})
}
