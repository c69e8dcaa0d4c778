package main

import (
	"context"
	"fmt"

	"github.com/AlekhyaVemuri/FinClarify/internal/llm"
	"github.com/AlekhyaVemuri/FinClarify/internal/storage"
)

// openStorage opens the configured SQLite database and brings the schema
// up to date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}

	return store, nil
}

// buildLLMClient constructs the configured completion client.
func buildLLMClient() (llm.Client, error) {
	client, err := llm.NewClient(cfg.LLM.ClientConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
