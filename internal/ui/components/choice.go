package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitn/skillforge/internal/ui/theme"
)

// ChoiceList is a multiple-choice selector.
type ChoiceList struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewChoiceList creates a selector over the given options.
func NewChoiceList(options []string, correctIndex int) ChoiceList {
	return ChoiceList{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation. Selection freezes once submitted.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Choose marks the option at index as the submitted answer.
func (c *ChoiceList) Choose(index int) {
	if index < 0 || index >= len(c.Options) {
		return
	}
	c.Submitted = true
	c.ChosenIndex = index
}

// Value returns the text of the currently selected option.
func (c ChoiceList) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the options, coloring correct/incorrect after submission.
func (c ChoiceList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	var s string

	for i, opt := range c.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case c.Submitted && i == c.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case c.Submitted && i == c.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
