package questions

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/ankitn/skillforge/internal/curriculum"
)

// Placeholder returns the question substituted when retrieval fails.
// The session loop keeps going with this rather than crashing; the
// worst user-visible failure is one malformed round.
func Placeholder() *curriculum.Question {
	return &curriculum.Question{
		Text:        "Error loading question",
		Answer:      "Error",
		Explanation: "The question could not be loaded. Continue to the next question.",
	}
}

// Source supplies the next question for a practice round: drawn from the
// skill's bank when one exists, generated on demand otherwise.
type Source struct {
	picker    *BankPicker
	generator Generator
	studentID string

	// priorQuestions tracks generated prompts per skill for dedup.
	priorQuestions map[string][]string
}

// NewSource creates a Source. The generator may be nil when no LLM is
// configured; bankless skills then get the placeholder.
func NewSource(generator Generator, studentID string, rnd *rand.Rand) *Source {
	return &Source{
		picker:         NewBankPicker(rnd),
		generator:      generator,
		studentID:      studentID,
		priorQuestions: make(map[string][]string),
	}
}

// Next returns the next question for the skill. It never fails: any
// retrieval error is logged and replaced with the placeholder.
func (s *Source) Next(ctx context.Context, skill curriculum.Skill, completed map[string]bool) *curriculum.Question {
	if skill.HasBank() {
		q, ok := s.picker.Pick(skill, completed)
		if !ok {
			return Placeholder()
		}
		return &q
	}

	if s.generator == nil {
		fmt.Fprintf(os.Stderr, "warning: skill %s has no question bank and no generator is configured\n", skill.ID)
		return Placeholder()
	}

	q, err := s.generator.Generate(ctx, GenerateInput{
		StudentID:      s.studentID,
		Skill:          skill,
		PriorQuestions: s.priorQuestions[skill.ID],
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: question generation for %s: %v\n", skill.ID, err)
		return Placeholder()
	}

	s.priorQuestions[skill.ID] = append(s.priorQuestions[skill.ID], q.Text)
	return q
}
