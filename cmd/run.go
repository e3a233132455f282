package cmd

import (
	"fmt"
	"os"

	"github.com/ankitn/skillforge/internal/app"
	"github.com/ankitn/skillforge/internal/llm"
	"github.com/ankitn/skillforge/internal/questions"
	"github.com/ankitn/skillforge/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
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

	repo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	opts := app.Options{
		StudentID: resolveStudentID(),
		Repo:      repo,
	}

	// The generator is optional; banked skills work without it.
	provider, err := llm.NewProviderFromEnv(ctx, repo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generated questions will be unavailable.")
	} else {
		opts.Generator = questions.NewGenerator(provider, questions.DefaultGenConfig())
	}

	return app.Run(opts)
}
