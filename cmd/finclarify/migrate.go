package main

import (
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if seed {
				if err := store.Seed(ctx); err != nil {
					return err
				}
			}

			cmd.Println("Database is up to date.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "seed demo users after migrating")

	return cmd
}
