package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ankitn/skillforge/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.quitConfirm:
		return renderQuitConfirm(width)
	case s.celebrating:
		return s.renderCelebration(width)
	case s.question == nil:
		return renderLoading(width)
	case s.feedback != nil:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Loading question...")
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n  " + msg + "\n\n  Press any key to go back.")
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\n  End this session?\n\n  [Y]es   [N]o")
}

func (s *SessionScreen) renderQuestion(width int) string {
	var b strings.Builder

	state := s.engine.State()
	info := fmt.Sprintf("Q %d   Correct %d   Skill %d pts", s.served, s.correct, s.skillPoints)
	if state.Paused {
		info += "   " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("PAUSED")
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.question.Text))
	b.WriteString("\n\n")

	if s.choiceMode {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	var b strings.Builder
	sub := s.feedback

	b.WriteString(s.renderQuestion(width))
	b.WriteString("\n\n")

	if sub.Correct {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")))
	} else {
		miss := "Not quite — the answer is " + s.question.Answer
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(miss)))
		if s.question.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(s.question.Explanation))
		}
	}
	b.WriteString("\n\n")

	for _, entry := range sub.Base.Breakdown {
		line := fmt.Sprintf("%-18s %+d", entry.Label, entry.Points)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	for _, applied := range sub.Rules.Applied {
		style := lipgloss.NewStyle().Foreground(theme.Secondary)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(applied.Message)))
		b.WriteString("\n")
	}

	totalStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if sub.Total < 0 {
		totalStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		totalStyle.Render(fmt.Sprintf("%+d points this round", sub.Total))))

	return b.String()
}

func (s *SessionScreen) renderCelebration(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("★  SKILL MASTERED  ★"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(s.skill.Name))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d points — threshold crossed", s.skillPoints)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Press Enter to keep practicing, Esc to finish."))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
