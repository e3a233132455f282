package rules

// TriggerType selects which submission fact a rule's condition reads.
type TriggerType string

const (
	TriggerScore      TriggerType = "score"
	TriggerStreak     TriggerType = "streak"
	TriggerDifficulty TriggerType = "difficulty"
)

// Operator compares the trigger value against the rule's condition value.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
)

// EffectType says whether a matching rule adds or removes points.
type EffectType string

const (
	EffectReward  EffectType = "reward"
	EffectPenalty EffectType = "penalty"
)

// Rule is a single configurable score adjustment. Rules form a flat
// collection; every rule whose condition matches a submission fires
// independently, with no priority ordering and no short-circuiting.
type Rule struct {
	ID string `json:"id"`

	Trigger  TriggerType `json:"trigger_type"`
	Operator Operator    `json:"condition_operator"`

	// ConditionValue is the comparison operand. Numeric for score and
	// streak triggers, a difficulty name for difficulty triggers.
	ConditionValue string `json:"condition_value"`

	Effect EffectType `json:"effect_type"`

	// Points is the reward magnitude. Penalties ignore it and always
	// deduct the configured standard penalty; it remains on the rule
	// for display.
	Points int `json:"points"`

	// Message is shown to the student when the rule fires.
	Message string `json:"message"`
}
