package rules

import (
	"os"
	"path/filepath"
	"testing"
)

const validRules = `[
	{
		"id": "streak-3",
		"trigger_type": "streak",
		"condition_operator": "equals",
		"condition_value": 3,
		"effect_type": "reward",
		"points": 5,
		"message": "Three in a row!"
	},
	{
		"id": "hard-win",
		"trigger_type": "difficulty",
		"condition_operator": "equals",
		"condition_value": "hard",
		"effect_type": "reward",
		"points": 4,
		"message": "Hard one down!"
	}
]`

func TestParse(t *testing.T) {
	got, err := Parse([]byte(validRules))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("parsed %d rules, want 2", len(got))
	}

	// Numeric condition values land as their literal form.
	if got[0].ConditionValue != "3" {
		t.Errorf("rules[0].ConditionValue = %q, want \"3\"", got[0].ConditionValue)
	}
	if got[1].ConditionValue != "hard" {
		t.Errorf("rules[1].ConditionValue = %q, want \"hard\"", got[1].ConditionValue)
	}
	if got[0].Trigger != TriggerStreak || got[0].Effect != EffectReward {
		t.Errorf("rules[0] = %+v, want streak reward", got[0])
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `{{`},
		{"not an array", `{"id": "x"}`},
		{"missing field", `[{"id": "x", "trigger_type": "score"}]`},
		{"unknown trigger", `[{"id": "x", "trigger_type": "weather", "condition_operator": "equals", "condition_value": 1, "effect_type": "reward", "points": 1, "message": "m"}]`},
		{"negative points", `[{"id": "x", "trigger_type": "score", "condition_operator": "equals", "condition_value": 1, "effect_type": "reward", "points": -1, "message": "m"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse accepted invalid input")
			}
		})
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("Load = %v, want nil for missing file", got)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(validRules), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("loaded %d rules, want 2", len(got))
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("SKILLFORGE_RULES", "/tmp/custom-rules.json")

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if got != "/tmp/custom-rules.json" {
		t.Errorf("DefaultPath = %q, want env override", got)
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("SKILLFORGE_RULES", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	want := filepath.Join("/xdg", "skillforge", "rules.json")
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}
