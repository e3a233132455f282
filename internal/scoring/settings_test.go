package scoring

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/ankitn/skillforge/internal/curriculum"
)

func TestSettingsFromEnvDefaults(t *testing.T) {
	got := SettingsFromEnv()
	if got != DefaultSettings() {
		t.Errorf("SettingsFromEnv() = %+v, want defaults", got)
	}
}

func TestSettingsFromEnvOverrides(t *testing.T) {
	t.Setenv("SKILLFORGE_BASE_POINTS", "20")
	t.Setenv("SKILLFORGE_MEDIUM_MULTIPLIER", "1.25")
	t.Setenv("SKILLFORGE_MASTERY_THRESHOLD", "50")

	got := SettingsFromEnv()
	if got.BaseMasteryPoints != 20 {
		t.Errorf("BaseMasteryPoints = %d, want 20", got.BaseMasteryPoints)
	}
	if got.MediumMultiplier != 1.25 {
		t.Errorf("MediumMultiplier = %g, want 1.25", got.MediumMultiplier)
	}
	if got.MasteryThreshold != 50 {
		t.Errorf("MasteryThreshold = %d, want 50", got.MasteryThreshold)
	}
	if got.HardMultiplier != 2.0 {
		t.Errorf("HardMultiplier = %g, want default 2.0", got.HardMultiplier)
	}
}

func TestSettingsFromEnvIgnoresMalformed(t *testing.T) {
	t.Setenv("SKILLFORGE_BASE_POINTS", "lots")
	t.Setenv("SKILLFORGE_HARD_MULTIPLIER", "")

	got := SettingsFromEnv()
	if got != DefaultSettings() {
		t.Errorf("SettingsFromEnv() = %+v, want defaults for malformed env", got)
	}
}

func TestSettingsJSONRoundTrip(t *testing.T) {
	orig := DefaultSettings()
	orig.BaseMasteryPoints = 12
	orig.MediumMultiplier = 1.75

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Settings
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != orig {
		t.Fatalf("round trip changed settings:\n got %+v\nwant %+v", decoded, orig)
	}

	// The restored settings must score identically.
	want := Compute(true, curriculum.DifficultyMedium, 3, 2*time.Second, orig)
	got := Compute(true, curriculum.DifficultyMedium, 3, 2*time.Second, decoded)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scoring diverged after round trip:\n got %+v\nwant %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}

	s := DefaultSettings()
	s.MediumMultiplier = 0.5
	if err := s.Validate(); err == nil {
		t.Error("multiplier below 1.0 passed validation")
	}

	s = DefaultSettings()
	s.HardMultiplier = 0
	if err := s.Validate(); err == nil {
		t.Error("zero hard multiplier passed validation")
	}

	s = DefaultSettings()
	s.StandardPenaltyPoints = -1
	if err := s.Validate(); err == nil {
		t.Error("negative penalty passed validation")
	}
}
