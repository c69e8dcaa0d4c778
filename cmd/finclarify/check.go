package main

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/AlekhyaVemuri/FinClarify/internal/common"
	"github.com/AlekhyaVemuri/FinClarify/internal/model"
	"github.com/AlekhyaVemuri/FinClarify/internal/pipeline"
	"github.com/AlekhyaVemuri/FinClarify/internal/risk"
)

func checkCmd() *cobra.Command {
	var (
		userID    string
		merchant  string
		amountStr string
		lateNight bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the safety pipeline for a proposed payment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}
			if amount.IsNegative() {
				return fmt.Errorf("amount cannot be negative: %s", amountStr)
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Seed(ctx); err != nil {
				return err
			}

			account, err := store.GetAccount(ctx, userID)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("failed to load account %q", userID), err)
			}

			client, err := buildLLMClient()
			if err != nil {
				return err
			}

			req := model.TransactionRequest{
				UserID:      userID,
				Merchant:    merchant,
				Amount:      amount,
				IsLateNight: lateNight,
			}
			finding := risk.Analyze(*account, req)

			st, err := pipeline.New(client).Run(ctx, account.Profile, req, *account, finding)
			if err != nil {
				return err
			}

			if asJSON {
				out, marshalErr := json.MarshalIndent(map[string]any{
					"risk":     finding,
					"decision": st.Decision,
					"ui":       st.UI,
					"report":   st.InvestigationReport,
				}, "", "  ")
				if marshalErr != nil {
					return marshalErr
				}
				cmd.Println(string(out))
				return nil
			}

			cmd.Printf("Risk:     %s (%s)\n", finding.Classification, finding.Code)
			cmd.Printf("Action:   %s (%s)\n", st.Decision.Action, st.Decision.ReasonCode)
			cmd.Printf("Headline: %s\n", st.UI.Headline)
			cmd.Printf("Details:  %s\n", st.UI.SimpleExplanation)
			cmd.Printf("Tip:      %s\n", st.UI.FinancialTip)
			if st.UI.AudioScript != "" {
				cmd.Printf("Audio:    %s\n", st.UI.AudioScript)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (e.g. bob)")
	cmd.Flags().StringVar(&merchant, "merchant", "", "merchant name")
	cmd.Flags().StringVar(&amountStr, "amount", "", "payment amount")
	cmd.Flags().BoolVar(&lateNight, "late-night", false, "treat the payment as a late-night request")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print machine-readable output")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("merchant")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
