package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ruleFileSchema validates the reward-rule config file before decoding.
// A malformed rule would otherwise fail silently at evaluation time
// (conditions that never match), which is much harder to debug.
const ruleFileSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id":                 {"type": "string", "minLength": 1},
			"trigger_type":       {"enum": ["score", "streak", "difficulty"]},
			"condition_operator": {"enum": ["equals", "greater_than", "less_than"]},
			"condition_value":    {"type": ["string", "number"]},
			"effect_type":        {"enum": ["reward", "penalty"]},
			"points":             {"type": "integer", "minimum": 0},
			"message":            {"type": "string"}
		},
		"required": ["id", "trigger_type", "condition_operator", "condition_value", "effect_type", "points", "message"],
		"additionalProperties": false
	}
}`

// DefaultPath resolves the rule config file path in priority order:
// 1. SKILLFORGE_RULES environment variable
// 2. $XDG_CONFIG_HOME/skillforge/rules.json
// 3. ~/.config/skillforge/rules.json
func DefaultPath() (string, error) {
	if p := os.Getenv("SKILLFORGE_RULES"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "skillforge", "rules.json"), nil
}

// Load reads and validates the rule file at path. A missing file is not
// an error; it yields an empty rule set.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(data)
}

// Parse validates raw JSON against the rule file schema and decodes it.
func Parse(data []byte) ([]Rule, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledRuleSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("rules file failed validation: %w", err)
	}

	var raw []struct {
		Rule
		// condition_value may be a JSON number; decode either shape.
		ConditionValue json.RawMessage `json:"condition_value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}

	out := make([]Rule, 0, len(raw))
	for _, r := range raw {
		rule := r.Rule
		rule.ConditionValue = decodeConditionValue(r.ConditionValue)
		out = append(out, rule)
	}
	return out, nil
}

func decodeConditionValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// Not a string; keep the literal form ("3", "1.5").
	return string(bytes.TrimSpace(raw))
}

func compiledRuleSchema() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(ruleFileSchema), &doc); err != nil {
		return nil, fmt.Errorf("parse rule schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://reward-rules.json", doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://reward-rules.json")
	if err != nil {
		return nil, fmt.Errorf("compile rule schema: %w", err)
	}
	return compiled, nil
}
