package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func testData() Data {
	return Data{
		SkillName:     "Two-digit multiplication",
		Duration:      8 * time.Minute,
		Questions:     12,
		Correct:       9,
		SessionPoints: 140,
		SkillPoints:   215,
		Mastered:      true,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testData())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testData())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "mastered") {
		t.Error("expected mastery line for a mastered session")
	}
}

func TestSummaryScreen_NoMasteryLine(t *testing.T) {
	d := testData()
	d.Mastered = false
	view := New(d).View(80, 24)
	if strings.Contains(view, "mastered") {
		t.Error("unexpected mastery line")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	s := New(testData())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestAccuracy(t *testing.T) {
	if got := (Data{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy with no questions = %v, want 0", got)
	}
	if got := (Data{Questions: 4, Correct: 3}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}
