package cmd

import (
	"fmt"

	"github.com/abhisek/lingoleap/internal/app"
	"github.com/abhisek/lingoleap/internal/certificate"
	"github.com/abhisek/lingoleap/internal/llm"
	"github.com/abhisek/lingoleap/internal/store"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start a learning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
// Every view delegates content generation to the LLM, so a configured
// provider is required up front.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	return app.Run(app.Options{
		Provider:  provider,
		Events:    eventRepo,
		ExportDir: certificate.DefaultExportDir(),
	})
}
