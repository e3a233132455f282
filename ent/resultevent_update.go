// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitn/skillforge/ent/predicate"
	"github.com/ankitn/skillforge/ent/resultevent"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *ResultEventUpdate) SetResultID(v string) *ResultEventUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableResultID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ResultEventUpdate) SetStudentID(v string) *ResultEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableStudentID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ResultEventUpdate) SetSkillID(v string) *ResultEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSkillID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResultEventUpdate) SetQuestionID(v string) *ResultEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableQuestionID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultEventUpdate) SetSessionID(v string) *ResultEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSessionID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdate) SetScore(v int) *ResultEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableScore(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdate) AddScore(v int) *ResultEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ResultEventUpdate) SetAttempts(v int) *ResultEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableAttempts(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ResultEventUpdate) AddAttempts(v int) *ResultEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResultEventUpdate) SetCorrect(v bool) *ResultEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableCorrect(v *bool) *ResultEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ResultEventUpdate) SetDurationMs(v int) *ResultEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableDurationMs(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ResultEventUpdate) AddDurationMs(v int) *ResultEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := resultevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := resultevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := resultevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(resultevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(resultevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(resultevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(resultevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(resultevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(resultevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(resultevent.FieldDurationMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetResultID sets the "result_id" field.
func (_u *ResultEventUpdateOne) SetResultID(v string) *ResultEventUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableResultID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ResultEventUpdateOne) SetStudentID(v string) *ResultEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableStudentID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *ResultEventUpdateOne) SetSkillID(v string) *ResultEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSkillID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResultEventUpdateOne) SetQuestionID(v string) *ResultEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableQuestionID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultEventUpdateOne) SetSessionID(v string) *ResultEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSessionID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdateOne) SetScore(v int) *ResultEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableScore(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdateOne) AddScore(v int) *ResultEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ResultEventUpdateOne) SetAttempts(v int) *ResultEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableAttempts(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ResultEventUpdateOne) AddAttempts(v int) *ResultEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResultEventUpdateOne) SetCorrect(v bool) *ResultEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableCorrect(v *bool) *ResultEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ResultEventUpdateOne) SetDurationMs(v int) *ResultEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableDurationMs(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ResultEventUpdateOne) AddDurationMs(v int) *ResultEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := resultevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := resultevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := resultevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(resultevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(resultevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(resultevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(resultevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(resultevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(resultevent.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(resultevent.FieldDurationMs, field.TypeInt, value)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
