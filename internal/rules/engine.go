package rules

import (
	"strconv"
	"strings"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/scoring"
)

// Score-trigger proxy values. Rules on the score trigger see a coarse
// correct/incorrect signal, not the computed XP.
const (
	scoreProxyCorrect   = 100
	scoreProxyIncorrect = 0
)

// Applied records one rule that fired, for user-facing feedback.
type Applied struct {
	Message string
	Points  int
	Effect  EffectType
}

// Outcome is the accumulated effect of one rules evaluation.
type Outcome struct {
	// Delta is the net adjustment: rewards add, penalties subtract.
	// It can push the round total negative.
	Delta int

	// Applied lists every fired rule in evaluation order.
	Applied []Applied
}

// Apply evaluates every rule against the submission, independently and
// in slice order. Evaluation never fails: a condition value that cannot
// be coerced simply does not match.
func Apply(rr []Rule, correct bool, streakAfter int, difficulty curriculum.Difficulty, s scoring.Settings) Outcome {
	var out Outcome
	for _, r := range rr {
		if !matches(r, correct, streakAfter, difficulty) {
			continue
		}

		switch r.Effect {
		case EffectPenalty:
			// Penalty magnitude is fixed by settings; the rule's own
			// points field is display-only.
			out.Delta -= s.StandardPenaltyPoints
		default:
			out.Delta += r.Points
		}

		out.Applied = append(out.Applied, Applied{
			Message: r.Message,
			Points:  r.Points,
			Effect:  r.Effect,
		})
	}
	return out
}

func matches(r Rule, correct bool, streakAfter int, difficulty curriculum.Difficulty) bool {
	switch r.Trigger {
	case TriggerScore:
		v := scoreProxyIncorrect
		if correct {
			v = scoreProxyCorrect
		}
		return compare(float64(v), r)

	case TriggerStreak:
		return compare(float64(streakAfter), r)

	case TriggerDifficulty:
		// Difficulty rules fire only on correct answers and use exact
		// value match; the operator is ignored.
		return correct && strings.EqualFold(strings.TrimSpace(r.ConditionValue), string(difficulty))

	default:
		return false
	}
}

func compare(v float64, r Rule) bool {
	want, err := strconv.ParseFloat(strings.TrimSpace(r.ConditionValue), 64)
	if err != nil {
		return false
	}
	switch r.Operator {
	case OpEquals:
		return v == want
	case OpGreaterThan:
		return v > want
	case OpLessThan:
		return v < want
	default:
		return false
	}
}
