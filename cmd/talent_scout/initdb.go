package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-scout/internal/store"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the candidates and interview_log tables",
	RunE:  runInitDB,
}

var initDBDatabaseURL string

func init() {
	initDBCmd.Flags().StringVar(&initDBDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(_ *cobra.Command, _ []string) error {
	databaseURL := initDBDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url)")
	}

	ctx := context.Background()
	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close()

	if err := st.InitSchema(ctx); err != nil {
		return err
	}

	fmt.Println("Database schema initialized")
	return nil
}
