package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/scoring"
	"github.com/ankitn/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show skill progress and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("sessions")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		ctx := context.Background()
		studentID := resolveStudentID()
		threshold := scoring.SettingsFromEnv().MasteryThreshold

		progress, err := repo.AllSkillProgress(ctx, studentID, threshold)
		if err != nil {
			return fmt.Errorf("query progress: %w", err)
		}

		fmt.Printf("Student: %s\n\n", studentID)
		if len(progress) == 0 {
			fmt.Println("No practice recorded yet.")
		} else {
			fmt.Printf("%-28s  %8s  %8s  %8s  %s\n", "Skill", "Points", "Correct", "Attempts", "Mastered")
			fmt.Println(strings.Repeat("─", 72))
			for _, p := range progress {
				name := p.SkillID
				if sk, err := curriculum.GetSkill(p.SkillID); err == nil {
					name = sk.Name
				}
				mastered := ""
				if p.Mastered {
					mastered = "★"
				}
				fmt.Printf("%-28s  %8d  %8d  %8d  %s\n", name, p.Points, p.Correct, p.Attempts, mastered)
			}
		}

		sessions, err := repo.SessionSummaries(ctx, studentID, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-28s  %5s  %7s  %7s  %s\n", "Date", "Skill", "Qs", "Correct", "Points", "Duration")
		fmt.Println(strings.Repeat("─", 84))
		for _, rec := range sessions {
			name := rec.SkillID
			if sk, err := curriculum.GetSkill(rec.SkillID); err == nil {
				name = sk.Name
			}
			fmt.Printf("%-19s  %-28s  %5d  %7d  %+7d  %s\n",
				rec.StartedAt.Local().Format("2006-01-02 15:04"),
				name,
				rec.QuestionsServed,
				rec.CorrectAnswers,
				rec.SessionPoints,
				time.Duration(rec.DurationSecs)*time.Second,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("sessions", "n", 10, "Number of recent sessions to show")
}
