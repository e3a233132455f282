package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ankitn/skillforge/internal/llm"
	"github.com/ankitn/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		repo, closeStore, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		events, err := repo.RecentLLMEvents(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeStore, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		stats, err := repo.LLMUsageByPurpose(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %6s  %10s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
		fmt.Println(strings.Repeat("─", 72))

		var totalCalls, totalIn, totalOut int
		for _, st := range stats {
			total := st.InputTokens + st.OutputTokens
			fmt.Printf("%-16s  %6d  %10d  %10d  %10d  %8d\n",
				st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, total, st.AvgLatencyMs)
			totalCalls += st.Calls
			totalIn += st.InputTokens
			totalOut += st.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n",
			"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)
		return nil
	},
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured LLM provider responds",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeStore, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		provider, err := llm.NewProviderFromEnv(ctx, repo)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		fmt.Printf("Checking %s...\n", provider.ModelID())
		start := time.Now()
		resp, err := provider.Generate(llm.WithPurpose(ctx, "connectivity-check"), llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: ok"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("provider check failed: %w", err)
		}

		fmt.Printf("OK (%s, %d input / %d output tokens, %dms)\n",
			resp.Model,
			resp.Usage.InputTokens,
			resp.Usage.OutputTokens,
			time.Since(start).Milliseconds(),
		)
		return nil
	},
}

// openRepo opens the store and returns the repo plus a close func.
func openRepo(cmd *cobra.Command) (store.EventRepo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	repo, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("open event repo: %w", err)
	}
	return repo, func() { st.Close() }, nil
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. question-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
	llmCmd.AddCommand(llmCheckCmd)
}
