package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AlekhyaVemuri/FinClarify/internal/common"
	"github.com/AlekhyaVemuri/FinClarify/internal/pipeline"
	"github.com/AlekhyaVemuri/FinClarify/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the banking backend and pipeline HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Seed(ctx); err != nil {
				common.LogError(err, "failed to seed demo users", common.Fields{"path": cfg.Database.Path})
				return err
			}

			client, err := buildLLMClient()
			if err != nil {
				return err
			}

			srv, err := server.NewServer(server.Config{
				Addr:     cfg.Server.Addr,
				Storage:  store,
				Pipeline: pipeline.New(client),
			})
			if err != nil {
				return err
			}

			return srv.Start(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8000)")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
