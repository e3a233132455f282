package questions

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ankitn/skillforge/internal/curriculum"
)

type fakeGenerator struct {
	inputs []GenerateInput
	next   []*curriculum.Question
	err    error
}

func (g *fakeGenerator) Generate(_ context.Context, input GenerateInput) (*curriculum.Question, error) {
	g.inputs = append(g.inputs, input)
	if g.err != nil {
		return nil, g.err
	}
	q := g.next[0]
	g.next = g.next[1:]
	return q, nil
}

func banklessSkill() curriculum.Skill {
	return curriculum.Skill{
		ID:         "capitals",
		Name:       "World Capitals",
		Difficulty: curriculum.DifficultyMedium,
	}
}

func TestNextPrefersBank(t *testing.T) {
	gen := &fakeGenerator{}
	s := NewSource(gen, "student-1", rand.New(rand.NewPCG(1, 2)))

	q := s.Next(context.Background(), bankSkill(), nil)
	if q == nil || q.Text == Placeholder().Text {
		t.Fatalf("Next = %+v, want a bank question", q)
	}
	if len(gen.inputs) != 0 {
		t.Error("generator was called for a skill with a bank")
	}
}

func TestNextWithoutGeneratorFallsBack(t *testing.T) {
	s := NewSource(nil, "student-1", nil)

	q := s.Next(context.Background(), banklessSkill(), nil)
	if q.Text != Placeholder().Text {
		t.Errorf("Next = %q, want placeholder", q.Text)
	}
}

func TestNextGeneratorErrorFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider down")}
	s := NewSource(gen, "student-1", nil)

	q := s.Next(context.Background(), banklessSkill(), nil)
	if q.Text != Placeholder().Text {
		t.Errorf("Next = %q, want placeholder on generation failure", q.Text)
	}

	// Failed generations must not pollute the dedup history.
	gen.err = nil
	gen.next = []*curriculum.Question{{Text: "Capital of France?", Answer: "Paris"}}
	s.Next(context.Background(), banklessSkill(), nil)
	if got := gen.inputs[len(gen.inputs)-1].PriorQuestions; len(got) != 0 {
		t.Errorf("PriorQuestions = %v, want empty after a failed round", got)
	}
}

func TestNextTracksPriorQuestions(t *testing.T) {
	gen := &fakeGenerator{next: []*curriculum.Question{
		{Text: "Capital of France?", Answer: "Paris"},
		{Text: "Capital of Japan?", Answer: "Tokyo"},
	}}
	s := NewSource(gen, "student-1", nil)

	first := s.Next(context.Background(), banklessSkill(), nil)
	if first.Text != "Capital of France?" {
		t.Fatalf("first question = %q", first.Text)
	}

	s.Next(context.Background(), banklessSkill(), nil)
	if len(gen.inputs) != 2 {
		t.Fatalf("generator called %d times, want 2", len(gen.inputs))
	}
	second := gen.inputs[1]
	if second.StudentID != "student-1" {
		t.Errorf("StudentID = %q, want student-1", second.StudentID)
	}
	if len(second.PriorQuestions) != 1 || second.PriorQuestions[0] != "Capital of France?" {
		t.Errorf("PriorQuestions = %v, want the first question text", second.PriorQuestions)
	}
}

func TestPlaceholderIsAnswerable(t *testing.T) {
	p := Placeholder()
	if p.Text == "" || p.Answer == "" {
		t.Errorf("placeholder incomplete: %+v", p)
	}
}
