package questions

import (
	"math/rand/v2"
	"testing"

	"github.com/ankitn/skillforge/internal/curriculum"
)

func bankSkill() curriculum.Skill {
	return curriculum.Skill{
		ID:         "times-tables",
		Name:       "Times Tables",
		Difficulty: curriculum.DifficultyEasy,
		Bank: []curriculum.Question{
			{Text: "What is 6 x 7?", Answer: "42"},
			{Text: "What is 8 x 8?", Answer: "64"},
			{Text: "What is 9 x 6?", Answer: "54"},
		},
	}
}

func seededPicker() *BankPicker {
	return NewBankPicker(rand.New(rand.NewPCG(1, 2)))
}

func TestPickEmptyBank(t *testing.T) {
	_, ok := seededPicker().Pick(curriculum.Skill{ID: "empty"}, nil)
	if ok {
		t.Error("Pick returned ok for an empty bank")
	}
}

func TestPickExcludesCompleted(t *testing.T) {
	skill := bankSkill()
	completed := map[string]bool{
		curriculum.QuestionID(skill.Bank[0]): true,
		curriculum.QuestionID(skill.Bank[2]): true,
	}
	p := seededPicker()

	// Only one candidate remains, so every pick must return it.
	for range 20 {
		q, ok := p.Pick(skill, completed)
		if !ok {
			t.Fatal("Pick returned !ok for a non-empty bank")
		}
		if q.Text != skill.Bank[1].Text {
			t.Fatalf("picked completed question %q", q.Text)
		}
	}
}

func TestPickExhaustedBankFallsBack(t *testing.T) {
	skill := bankSkill()
	completed := make(map[string]bool)
	for _, q := range skill.Bank {
		completed[curriculum.QuestionID(q)] = true
	}

	q, ok := seededPicker().Pick(skill, completed)
	if !ok {
		t.Fatal("Pick returned !ok once the bank was exhausted")
	}
	found := false
	for _, b := range skill.Bank {
		if b.Text == q.Text {
			found = true
		}
	}
	if !found {
		t.Errorf("fallback pick %q is not a bank question", q.Text)
	}
}

func TestPickCoversWholeBank(t *testing.T) {
	skill := bankSkill()
	p := seededPicker()

	seen := make(map[string]bool)
	for range 200 {
		q, _ := p.Pick(skill, nil)
		seen[q.Text] = true
	}
	if len(seen) != len(skill.Bank) {
		t.Errorf("saw %d distinct questions over 200 picks, want %d", len(seen), len(skill.Bank))
	}
}
