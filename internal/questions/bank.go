package questions

import (
	"math/rand/v2"

	"github.com/ankitn/skillforge/internal/curriculum"
)

// BankPicker selects questions from a skill's fixed bank. The random
// source is injected so tests can make selection deterministic.
type BankPicker struct {
	rnd *rand.Rand
}

// NewBankPicker creates a picker with the given random source. A nil
// source falls back to the shared global generator.
func NewBankPicker(rnd *rand.Rand) *BankPicker {
	return &BankPicker{rnd: rnd}
}

// Pick draws uniformly from the bank entries whose identity is not in
// completed. Once every entry has been completed the filter would leave
// nothing, so the pick falls back to the entire bank and repeats become
// unavoidable. Returns false only for an empty bank.
func (p *BankPicker) Pick(skill curriculum.Skill, completed map[string]bool) (curriculum.Question, bool) {
	if len(skill.Bank) == 0 {
		return curriculum.Question{}, false
	}

	candidates := make([]curriculum.Question, 0, len(skill.Bank))
	for _, q := range skill.Bank {
		if !completed[curriculum.QuestionID(q)] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		candidates = skill.Bank
	}

	return candidates[p.intN(len(candidates))], true
}

func (p *BankPicker) intN(n int) int {
	if p.rnd != nil {
		return p.rnd.IntN(n)
	}
	return rand.IntN(n)
}
