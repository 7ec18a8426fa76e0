package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-scout/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export candidates and interview log as JSON",
	Long:  "Export stored candidate profiles and the interview log as a single JSON document for recruiter review.",
	RunE:  runExport,
}

var (
	exportDatabaseURL string
	exportEmail       string
	exportOutputFile  string
)

func init() {
	exportCmd.Flags().StringVar(&exportDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	exportCmd.Flags().StringVar(&exportEmail, "email", "", "Only export the interview log for this candidate email")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

// exportDocument is the shape of the exported JSON.
type exportDocument struct {
	Candidates   []store.Candidate `json:"candidates"`
	InterviewLog []store.Exchange  `json:"interview_log"`
}

func runExport(_ *cobra.Command, _ []string) error {
	databaseURL := exportDatabaseURL
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

	var doc exportDocument
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc.Candidates, err = st.ListCandidates(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		doc.InterviewLog, err = st.ListExchanges(gCtx, exportEmail)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if exportOutputFile == "" {
		_, err = os.Stdout.Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(exportOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Exported %d candidates and %d interview rows to %s\n",
		len(doc.Candidates), len(doc.InterviewLog), exportOutputFile)
	return nil
}
