package scoring

import (
	"fmt"
	"os"
	"strconv"
)

// Settings holds the externally owned scoring configuration. The engine
// reads it fresh at session start and treats it as immutable for the
// duration of a round.
type Settings struct {
	// BaseMasteryPoints is the base award for a correct answer.
	BaseMasteryPoints int `json:"base_mastery_points"`

	// MediumMultiplier scales the base award for medium skills.
	MediumMultiplier float64 `json:"medium_multiplier"`

	// HardMultiplier scales the base award for hard skills.
	HardMultiplier float64 `json:"hard_multiplier"`

	// StreakBonus is awarded per consecutive correct answer once the
	// streak exceeds one. Zero disables the bonus.
	StreakBonus int `json:"streak_bonus"`

	// SpeedBonusFast is awarded for answers under the fast cutoff.
	SpeedBonusFast int `json:"speed_bonus_fast"`

	// SpeedBonusStandard is awarded for answers under the standard cutoff.
	SpeedBonusStandard int `json:"speed_bonus_standard"`

	// StandardPenaltyPoints is the fixed deduction applied by every
	// penalty rule, regardless of the rule's own points field.
	StandardPenaltyPoints int `json:"standard_penalty_points"`

	// MasteryThreshold is the cumulative point total at which a skill
	// counts as mastered.
	MasteryThreshold int `json:"mastery_threshold"`
}

// DefaultSettings returns the stock scoring configuration.
func DefaultSettings() Settings {
	return Settings{
		BaseMasteryPoints:     10,
		MediumMultiplier:      1.5,
		HardMultiplier:        2.0,
		StreakBonus:           2,
		SpeedBonusFast:        5,
		SpeedBonusStandard:    2,
		StandardPenaltyPoints: 5,
		MasteryThreshold:      100,
	}
}

// SettingsFromEnv builds Settings from SKILLFORGE_* environment
// variables, falling back to defaults for unset or malformed values.
func SettingsFromEnv() Settings {
	s := DefaultSettings()

	envInt("SKILLFORGE_BASE_POINTS", &s.BaseMasteryPoints)
	envFloat("SKILLFORGE_MEDIUM_MULTIPLIER", &s.MediumMultiplier)
	envFloat("SKILLFORGE_HARD_MULTIPLIER", &s.HardMultiplier)
	envInt("SKILLFORGE_STREAK_BONUS", &s.StreakBonus)
	envInt("SKILLFORGE_SPEED_BONUS_FAST", &s.SpeedBonusFast)
	envInt("SKILLFORGE_SPEED_BONUS_STANDARD", &s.SpeedBonusStandard)
	envInt("SKILLFORGE_PENALTY_POINTS", &s.StandardPenaltyPoints)
	envInt("SKILLFORGE_MASTERY_THRESHOLD", &s.MasteryThreshold)

	return s
}

// Validate checks the settings invariants: multipliers at least 1.0 and
// all point values non-negative.
func (s Settings) Validate() error {
	if s.MediumMultiplier < 1.0 {
		return fmt.Errorf("medium multiplier must be >= 1.0, got %g", s.MediumMultiplier)
	}
	if s.HardMultiplier < 1.0 {
		return fmt.Errorf("hard multiplier must be >= 1.0, got %g", s.HardMultiplier)
	}
	for name, v := range map[string]int{
		"base mastery points":     s.BaseMasteryPoints,
		"streak bonus":            s.StreakBonus,
		"speed bonus (fast)":      s.SpeedBonusFast,
		"speed bonus (standard)":  s.SpeedBonusStandard,
		"standard penalty points": s.StandardPenaltyPoints,
		"mastery threshold":       s.MasteryThreshold,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", name, v)
		}
	}
	return nil
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
