package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/ankitn/skillforge/internal/curriculum"
)

// Timing bonus cutoffs. The two bonuses are mutually exclusive; the fast
// cutoff is checked first.
const (
	FastAnswerCutoff     = 5 * time.Second
	StandardAnswerCutoff = 10 * time.Second
)

// BreakdownEntry is one user-facing line of the score breakdown.
type BreakdownEntry struct {
	Label  string
	Points int
}

// Score is the result of scoring a single submission, before reward and
// penalty rules are applied.
type Score struct {
	Total int

	// Breakdown lists the awarded components in display order. It is
	// purely informational and never consumed downstream.
	Breakdown []BreakdownEntry
}

// Compute calculates the base XP for a submission. Incorrect answers
// score zero before rules; all bonuses apply only to correct answers.
//
// The difficulty multiplier scales the base award only. Streak and speed
// bonuses are additive on top of the multiplied base.
func Compute(correct bool, difficulty curriculum.Difficulty, streakAfter int, duration time.Duration, s Settings) Score {
	if !correct {
		return Score{}
	}

	points := s.BaseMasteryPoints
	breakdown := []BreakdownEntry{{Label: "Base", Points: s.BaseMasteryPoints}}

	if mult := multiplierFor(difficulty, s); mult > 1 {
		extra := int(math.Floor(float64(s.BaseMasteryPoints) * (mult - 1)))
		points += extra
		breakdown = append(breakdown, BreakdownEntry{
			Label:  difficulty.Label() + " bonus",
			Points: extra,
		})
	}

	if streakAfter > 1 && s.StreakBonus > 0 {
		bonus := s.StreakBonus * streakAfter
		points += bonus
		breakdown = append(breakdown, BreakdownEntry{
			Label:  fmt.Sprintf("Streak x%d", streakAfter),
			Points: bonus,
		})
	}

	switch {
	case duration < FastAnswerCutoff:
		points += s.SpeedBonusFast
		breakdown = append(breakdown, BreakdownEntry{
			Label:  "Speed",
			Points: s.SpeedBonusFast,
		})
	case duration < StandardAnswerCutoff:
		// The standard bonus counts toward the total but is not
		// surfaced in the breakdown; only the fast bonus is shown.
		points += s.SpeedBonusStandard
	}

	return Score{Total: points, Breakdown: breakdown}
}

func multiplierFor(d curriculum.Difficulty, s Settings) float64 {
	switch d {
	case curriculum.DifficultyMedium:
		return s.MediumMultiplier
	case curriculum.DifficultyHard:
		return s.HardMultiplier
	default:
		return 1.0
	}
}
