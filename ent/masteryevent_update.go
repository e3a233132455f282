// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ankitn/skillforge/ent/masteryevent"
	"github.com/ankitn/skillforge/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryEventUpdate) SetStudentID(v string) *MasteryEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableStudentID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdate) SetSkillID(v string) *MasteryEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSkillID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdate) SetSessionID(v string) *MasteryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSessionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdate) ClearSessionID() *MasteryEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPriorPoints sets the "prior_points" field.
func (_u *MasteryEventUpdate) SetPriorPoints(v int) *MasteryEventUpdate {
	_u.mutation.ResetPriorPoints()
	_u.mutation.SetPriorPoints(v)
	return _u
}

// SetNillablePriorPoints sets the "prior_points" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillablePriorPoints(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetPriorPoints(*v)
	}
	return _u
}

// AddPriorPoints adds value to the "prior_points" field.
func (_u *MasteryEventUpdate) AddPriorPoints(v int) *MasteryEventUpdate {
	_u.mutation.AddPriorPoints(v)
	return _u
}

// SetNewTotal sets the "new_total" field.
func (_u *MasteryEventUpdate) SetNewTotal(v int) *MasteryEventUpdate {
	_u.mutation.ResetNewTotal()
	_u.mutation.SetNewTotal(v)
	return _u
}

// SetNillableNewTotal sets the "new_total" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableNewTotal(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetNewTotal(*v)
	}
	return _u
}

// AddNewTotal adds value to the "new_total" field.
func (_u *MasteryEventUpdate) AddNewTotal(v int) *MasteryEventUpdate {
	_u.mutation.AddNewTotal(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *MasteryEventUpdate) SetThreshold(v int) *MasteryEventUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableThreshold(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *MasteryEventUpdate) AddThreshold(v int) *MasteryEventUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PriorPoints(); ok {
		_spec.SetField(masteryevent.FieldPriorPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorPoints(); ok {
		_spec.AddField(masteryevent.FieldPriorPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewTotal(); ok {
		_spec.SetField(masteryevent.FieldNewTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewTotal(); ok {
		_spec.AddField(masteryevent.FieldNewTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(masteryevent.FieldThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(masteryevent.FieldThreshold, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryEventUpdateOne) SetStudentID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableStudentID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdateOne) SetSkillID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSkillID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdateOne) SetSessionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSessionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdateOne) ClearSessionID() *MasteryEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPriorPoints sets the "prior_points" field.
func (_u *MasteryEventUpdateOne) SetPriorPoints(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetPriorPoints()
	_u.mutation.SetPriorPoints(v)
	return _u
}

// SetNillablePriorPoints sets the "prior_points" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillablePriorPoints(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetPriorPoints(*v)
	}
	return _u
}

// AddPriorPoints adds value to the "prior_points" field.
func (_u *MasteryEventUpdateOne) AddPriorPoints(v int) *MasteryEventUpdateOne {
	_u.mutation.AddPriorPoints(v)
	return _u
}

// SetNewTotal sets the "new_total" field.
func (_u *MasteryEventUpdateOne) SetNewTotal(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetNewTotal()
	_u.mutation.SetNewTotal(v)
	return _u
}

// SetNillableNewTotal sets the "new_total" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableNewTotal(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetNewTotal(*v)
	}
	return _u
}

// AddNewTotal adds value to the "new_total" field.
func (_u *MasteryEventUpdateOne) AddNewTotal(v int) *MasteryEventUpdateOne {
	_u.mutation.AddNewTotal(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *MasteryEventUpdateOne) SetThreshold(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableThreshold(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *MasteryEventUpdateOne) AddThreshold(v int) *MasteryEventUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masteryevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masteryevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.PriorPoints(); ok {
		_spec.SetField(masteryevent.FieldPriorPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorPoints(); ok {
		_spec.AddField(masteryevent.FieldPriorPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewTotal(); ok {
		_spec.SetField(masteryevent.FieldNewTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewTotal(); ok {
		_spec.AddField(masteryevent.FieldNewTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(masteryevent.FieldThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(masteryevent.FieldThreshold, field.TypeInt, value)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
