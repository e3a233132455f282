package curriculum

import "fmt"

// Difficulty represents how hard a skill's questions are.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all difficulties in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a string to a Difficulty, case-sensitively
// matching the canonical lowercase names.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

// Label returns a human-readable name for the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Skill represents a single curriculum unit a student practices until
// mastered. Skills are owned by curriculum storage and read-only to the
// practice engine.
type Skill struct {
	ID          string
	Name        string
	Description string
	Difficulty  Difficulty

	// Bank is the fixed pool of pre-authored questions for this skill.
	// When empty, questions are generated on demand.
	Bank []Question

	// GenerationHint is an optional instruction passed to the question
	// generator for bankless skills.
	GenerationHint string
}

// HasBank reports whether the skill draws from a fixed question bank.
func (s Skill) HasBank() bool {
	return len(s.Bank) > 0
}
