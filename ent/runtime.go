// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ankitn/skillforge/ent/llmrequestevent"
	"github.com/ankitn/skillforge/ent/masteryevent"
	"github.com/ankitn/skillforge/ent/resultevent"
	"github.com/ankitn/skillforge/ent/schema"
	"github.com/ankitn/skillforge/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescStudentID is the schema descriptor for student_id field.
	masteryeventDescStudentID := masteryeventFields[0].Descriptor()
	// masteryevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masteryevent.StudentIDValidator = masteryeventDescStudentID.Validators[0].(func(string) error)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[1].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescResultID is the schema descriptor for result_id field.
	resulteventDescResultID := resulteventFields[0].Descriptor()
	// resultevent.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	resultevent.ResultIDValidator = resulteventDescResultID.Validators[0].(func(string) error)
	// resulteventDescStudentID is the schema descriptor for student_id field.
	resulteventDescStudentID := resulteventFields[1].Descriptor()
	// resultevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	resultevent.StudentIDValidator = resulteventDescStudentID.Validators[0].(func(string) error)
	// resulteventDescSkillID is the schema descriptor for skill_id field.
	resulteventDescSkillID := resulteventFields[2].Descriptor()
	// resultevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	resultevent.SkillIDValidator = resulteventDescSkillID.Validators[0].(func(string) error)
	// resulteventDescQuestionID is the schema descriptor for question_id field.
	resulteventDescQuestionID := resulteventFields[3].Descriptor()
	// resultevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	resultevent.QuestionIDValidator = resulteventDescQuestionID.Validators[0].(func(string) error)
	// resulteventDescSessionID is the schema descriptor for session_id field.
	resulteventDescSessionID := resulteventFields[4].Descriptor()
	// resultevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	resultevent.SessionIDValidator = resulteventDescSessionID.Validators[0].(func(string) error)
	// resulteventDescAttempts is the schema descriptor for attempts field.
	resulteventDescAttempts := resulteventFields[6].Descriptor()
	// resultevent.DefaultAttempts holds the default value on creation for the attempts field.
	resultevent.DefaultAttempts = resulteventDescAttempts.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescStudentID is the schema descriptor for student_id field.
	sessioneventDescStudentID := sessioneventFields[1].Descriptor()
	// sessionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	sessionevent.StudentIDValidator = sessioneventDescStudentID.Validators[0].(func(string) error)
	// sessioneventDescSkillID is the schema descriptor for skill_id field.
	sessioneventDescSkillID := sessioneventFields[2].Descriptor()
	// sessionevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	sessionevent.SkillIDValidator = sessioneventDescSkillID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescSessionPoints is the schema descriptor for session_points field.
	sessioneventDescSessionPoints := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultSessionPoints holds the default value on creation for the session_points field.
	sessionevent.DefaultSessionPoints = sessioneventDescSessionPoints.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
