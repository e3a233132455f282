package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/router"
	"github.com/ankitn/skillforge/internal/screen"
	"github.com/ankitn/skillforge/internal/scoring"
	"github.com/ankitn/skillforge/internal/store"
	"github.com/ankitn/skillforge/internal/ui/components"
	"github.com/ankitn/skillforge/internal/ui/layout"
	"github.com/ankitn/skillforge/internal/ui/theme"
)

const sessionHistoryLimit = 8

type loadedMsg struct {
	Progress []*store.SkillProgress
	Sessions []store.SessionSummaryRecord
	Err      error
}

// StatsScreen shows per-skill progress and recent session history.
type StatsScreen struct {
	repo      store.EventRepo
	studentID string
	threshold int

	progress []*store.SkillProgress
	sessions []store.SessionSummaryRecord
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen.
func New(repo store.EventRepo, studentID string) *StatsScreen {
	return &StatsScreen{
		repo:      repo,
		studentID: studentID,
		threshold: scoring.SettingsFromEnv().MasteryThreshold,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.progress = msg.Progress
		s.sessions = msg.Sessions
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Skills"))
	b.WriteString("\n\n")

	if len(s.progress) == 0 {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("No practice recorded yet."))
		b.WriteString("\n")
	}
	for _, p := range s.progress {
		name := p.SkillID
		if sk, err := curriculum.GetSkill(p.SkillID); err == nil {
			name = sk.Name
		}
		pct := 0.0
		if s.threshold > 0 {
			pct = float64(p.Points) / float64(s.threshold)
			if pct > 1 {
				pct = 1
			}
		}
		bar := components.NewProgressBar(fmt.Sprintf("%-28s", name), pct, true, width-20)
		b.WriteString("  " + bar.View())
		b.WriteString("\n")
		detail := fmt.Sprintf("%d pts · %d/%d correct", p.Points, p.Correct, p.Attempts)
		if p.Mastered {
			detail += " · " + lipgloss.NewStyle().Foreground(theme.Success).Render("mastered")
		}
		b.WriteString("      " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Recent sessions"))
	b.WriteString("\n\n")
	if len(s.sessions) == 0 {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("No sessions recorded yet."))
		b.WriteString("\n")
	}
	for _, rec := range s.sessions {
		name := rec.SkillID
		if sk, err := curriculum.GetSkill(rec.SkillID); err == nil {
			name = sk.Name
		}
		dur := time.Duration(rec.DurationSecs) * time.Second
		line := fmt.Sprintf("%-20s  %-28s  %2d questions  %2d correct  %+d pts  %s",
			rec.StartedAt.Local().Format("2006-01-02 15:04"),
			name, rec.QuestionsServed, rec.CorrectAnswers, rec.SessionPoints, dur)
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *StatsScreen) load() tea.Cmd {
	repo := s.repo
	studentID := s.studentID
	threshold := s.threshold
	return func() tea.Msg {
		ctx := context.Background()
		progress, err := repo.AllSkillProgress(ctx, studentID, threshold)
		if err != nil {
			return loadedMsg{Err: err}
		}
		sessions, err := repo.SessionSummaries(ctx, studentID, sessionHistoryLimit)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Progress: progress, Sessions: sessions}
	}
}
