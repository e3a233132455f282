package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitn/skillforge/internal/router"
	"github.com/ankitn/skillforge/internal/screen"
	"github.com/ankitn/skillforge/internal/ui/layout"
	"github.com/ankitn/skillforge/internal/ui/theme"
)

// Data is what the summary screen displays about a finished session.
type Data struct {
	SkillName     string
	Duration      time.Duration
	Questions     int
	Correct       int
	SessionPoints int
	SkillPoints   int
	Mastered      bool
}

// Accuracy returns the correct-answer ratio, zero when nothing was
// attempted.
func (d Data) Accuracy() float64 {
	if d.Questions == 0 {
		return 0
	}
	return float64(d.Correct) / float64(d.Questions)
}

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	data Data
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(data Data) *SummaryScreen {
	return &SummaryScreen{data: data}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	d := s.data

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(d.SkillName))
	b.WriteString("\n\n")

	mins := int(d.Duration.Minutes())
	secs := int(d.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		d.Questions, d.Correct, d.Accuracy()*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	pointsStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if d.SessionPoints < 0 {
		pointsStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		pointsStyle.Render(fmt.Sprintf("%+d session points", d.SessionPoints))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("Skill total: %d", d.SkillPoints))))
	b.WriteString("\n")

	if d.Mastered {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("★ Skill mastered this session! ★")))
		b.WriteString("\n")
	}

	return b.String()
}
