package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/observability"
	"github.com/jonathan/talent-scout/internal/session"
	"github.com/jonathan/talent-scout/internal/store"
	"github.com/jonathan/talent-scout/internal/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive intake conversation",
	Long:  "Run one intake conversation on stdin/stdout: greeting, profile collection, generated technical questions, close-out. Collected data is persisted to the database.",
	RunE:  runChat,
}

var (
	chatConfigFile  string
	chatAPIKey      string
	chatDatabaseURL string
	chatModel       string
	chatQuestions   int
	chatConsent     bool
	chatVerbose     bool
)

func init() {
	chatCmd.Flags().StringVarP(&chatConfigFile, "config", "c", "", "Path to JSON config file")
	chatCmd.Flags().StringVar(&chatAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	chatCmd.Flags().StringVar(&chatDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Override the standard-tier model name")
	// Zero means "not set": a non-zero default here would always win the
	// config merge and make question_count in a config file unreachable.
	chatCmd.Flags().IntVar(&chatQuestions, "questions", 0, fmt.Sprintf("Number of technical questions to generate (default %d)", session.DefaultQuestionCount))
	chatCmd.Flags().BoolVar(&chatConsent, "consent", true, "Record candidate consent on the stored profile")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print session state after each turn")

	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		APIKey:        chatAPIKey,
		DatabaseURL:   chatDatabaseURL,
		Model:         chatModel,
		QuestionCount: chatQuestions,
		Consent:       chatConsent,
		Verbose:       chatVerbose,
	}
	if chatConfigFile != "" {
		fileCfg, err := config.LoadConfig(chatConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key)")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url)")
	}

	ctx := context.Background()

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close()
	if err := st.InitSchema(ctx); err != nil {
		return err
	}

	sess := session.New()
	ctrl := session.NewController(client, st, session.Options{
		QuestionCount: cfg.QuestionCount,
		Consent:       cfg.Consent,
	})
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("TalentScout Hiring Assistant (session %s)\n", sess.ID)
	fmt.Println("Type your message, or 'exit' to end.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		before := len(sess.Messages)
		ctrl.HandleTurn(ctx, sess, input)

		for _, m := range sess.Messages[before:] {
			if m.Role == types.RoleAssistant {
				fmt.Printf("\n%s\n\n", m.Content)
			}
		}

		if cfg.Verbose {
			printer.PrintCandidateProfile(&sess.Profile)
			printer.PrintQuestionProgress(sess.Questions, sess.Answers)
		}

		if sess.Phase == session.PhaseComplete {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if cfg.Verbose {
		printer.PrintTranscript(sess.Messages)
	}

	return nil
}
