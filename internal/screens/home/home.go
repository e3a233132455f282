package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/questions"
	"github.com/ankitn/skillforge/internal/router"
	"github.com/ankitn/skillforge/internal/screen"
	"github.com/ankitn/skillforge/internal/screens/session"
	"github.com/ankitn/skillforge/internal/screens/stats"
	"github.com/ankitn/skillforge/internal/scoring"
	"github.com/ankitn/skillforge/internal/store"
	"github.com/ankitn/skillforge/internal/ui/components"
	"github.com/ankitn/skillforge/internal/ui/theme"
)

// Deps are the app-level dependencies the home screen hands to the
// screens it spawns.
type Deps struct {
	StudentID string
	Repo      store.EventRepo
	Generator questions.Generator
}

// progressLoadedMsg carries per-skill progress for the menu details.
type progressLoadedMsg struct {
	Progress map[string]*store.SkillProgress
	Err      error
}

// HomeScreen is the skill picker and entry point.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	skills   []curriculum.Skill
	progress map[string]*store.SkillProgress
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the skill catalog.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:   deps,
		skills: curriculum.AllSkills(),
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadProgress()
}

func (h *HomeScreen) Title() string {
	return "Choose a skill"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err == nil {
			h.progress = msg.Progress
			selected := h.menu.Selected
			h.menu = components.NewMenu(h.menuItems())
			h.menu.Selected = selected
		}
		return h, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("What do you want to practice?"))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())
	return b.String()
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.skills)+1)
	for _, sk := range h.skills {
		sk := sk
		items = append(items, components.MenuItem{
			Label:  sk.Name,
			Detail: h.skillDetail(sk),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: session.New(session.Deps{
							StudentID: h.deps.StudentID,
							Repo:      h.deps.Repo,
							Generator: h.deps.Generator,
						}, sk),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Statistics",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: stats.New(h.deps.Repo, h.deps.StudentID),
				}
			}
		},
	})
	return items
}

func (h *HomeScreen) skillDetail(sk curriculum.Skill) string {
	detail := sk.Difficulty.Label()
	if p, ok := h.progress[sk.ID]; ok {
		detail = fmt.Sprintf("%s · %d pts", detail, p.Points)
		if p.Mastered {
			detail += " · mastered"
		}
	}
	return detail
}

func (h *HomeScreen) loadProgress() tea.Cmd {
	repo := h.deps.Repo
	studentID := h.deps.StudentID
	threshold := scoring.SettingsFromEnv().MasteryThreshold
	return func() tea.Msg {
		all, err := repo.AllSkillProgress(context.Background(), studentID, threshold)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		byID := make(map[string]*store.SkillProgress, len(all))
		for _, p := range all {
			byID[p.SkillID] = p
		}
		return progressLoadedMsg{Progress: byID}
	}
}
