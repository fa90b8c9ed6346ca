// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/VoidLight00/lemon-protocol/ent/predicate"
	"github.com/VoidLight00/lemon-protocol/ent/testresult"
)

// TestResultUpdate is the builder for updating TestResult entities.
type TestResultUpdate struct {
	config
	hooks    []Hook
	mutation *TestResultMutation
}

// Where appends a list predicates to the TestResultUpdate builder.
func (_u *TestResultUpdate) Where(ps ...predicate.TestResult) *TestResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestResultUpdate) SetTestID(v string) *TestResultUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableTestID(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetTestTitle sets the "test_title" field.
func (_u *TestResultUpdate) SetTestTitle(v string) *TestResultUpdate {
	_u.mutation.SetTestTitle(v)
	return _u
}

// SetNillableTestTitle sets the "test_title" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableTestTitle(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetTestTitle(*v)
	}
	return _u
}

// SetResultType sets the "result_type" field.
func (_u *TestResultUpdate) SetResultType(v string) *TestResultUpdate {
	_u.mutation.SetResultType(v)
	return _u
}

// SetNillableResultType sets the "result_type" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableResultType(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetResultType(*v)
	}
	return _u
}

// SetResultTitle sets the "result_title" field.
func (_u *TestResultUpdate) SetResultTitle(v string) *TestResultUpdate {
	_u.mutation.SetResultTitle(v)
	return _u
}

// SetNillableResultTitle sets the "result_title" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableResultTitle(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetResultTitle(*v)
	}
	return _u
}

// SetResultEmoji sets the "result_emoji" field.
func (_u *TestResultUpdate) SetResultEmoji(v string) *TestResultUpdate {
	_u.mutation.SetResultEmoji(v)
	return _u
}

// SetNillableResultEmoji sets the "result_emoji" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableResultEmoji(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetResultEmoji(*v)
	}
	return _u
}

// SetTips sets the "tips" field.
func (_u *TestResultUpdate) SetTips(v []string) *TestResultUpdate {
	_u.mutation.SetTips(v)
	return _u
}

// AppendTips appends value to the "tips" field.
func (_u *TestResultUpdate) AppendTips(v []string) *TestResultUpdate {
	_u.mutation.AppendTips(v)
	return _u
}

// ClearTips clears the value of the "tips" field.
func (_u *TestResultUpdate) ClearTips() *TestResultUpdate {
	_u.mutation.ClearTips()
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *TestResultUpdate) SetTotalScore(v int) *TestResultUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableTotalScore(v *int) *TestResultUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *TestResultUpdate) AddTotalScore(v int) *TestResultUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// ClearTotalScore clears the value of the "total_score" field.
func (_u *TestResultUpdate) ClearTotalScore() *TestResultUpdate {
	_u.mutation.ClearTotalScore()
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *TestResultUpdate) SetCategoryScores(v map[string]int) *TestResultUpdate {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (_u *TestResultUpdate) ClearCategoryScores() *TestResultUpdate {
	_u.mutation.ClearCategoryScores()
	return _u
}

// SetDimensionScores sets the "dimension_scores" field.
func (_u *TestResultUpdate) SetDimensionScores(v map[string]int) *TestResultUpdate {
	_u.mutation.SetDimensionScores(v)
	return _u
}

// ClearDimensionScores clears the value of the "dimension_scores" field.
func (_u *TestResultUpdate) ClearDimensionScores() *TestResultUpdate {
	_u.mutation.ClearDimensionScores()
	return _u
}

// SetMainIssue sets the "main_issue" field.
func (_u *TestResultUpdate) SetMainIssue(v string) *TestResultUpdate {
	_u.mutation.SetMainIssue(v)
	return _u
}

// SetNillableMainIssue sets the "main_issue" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableMainIssue(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetMainIssue(*v)
	}
	return _u
}

// SetSynced sets the "synced" field.
func (_u *TestResultUpdate) SetSynced(v bool) *TestResultUpdate {
	_u.mutation.SetSynced(v)
	return _u
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableSynced(v *bool) *TestResultUpdate {
	if v != nil {
		_u.SetSynced(*v)
	}
	return _u
}

// Mutation returns the TestResultMutation object of the builder.
func (_u *TestResultUpdate) Mutation() *TestResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestResultUpdate) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := testresult.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestResult.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultType(); ok {
		if err := testresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "TestResult.result_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TestResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testresult.Table, testresult.Columns, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(testresult.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestTitle(); ok {
		_spec.SetField(testresult.FieldTestTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultType(); ok {
		_spec.SetField(testresult.FieldResultType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultTitle(); ok {
		_spec.SetField(testresult.FieldResultTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultEmoji(); ok {
		_spec.SetField(testresult.FieldResultEmoji, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tips(); ok {
		_spec.SetField(testresult.FieldTips, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTips(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testresult.FieldTips, value)
		})
	}
	if _u.mutation.TipsCleared() {
		_spec.ClearField(testresult.FieldTips, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(testresult.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(testresult.FieldTotalScore, field.TypeInt, value)
	}
	if _u.mutation.TotalScoreCleared() {
		_spec.ClearField(testresult.FieldTotalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(testresult.FieldCategoryScores, field.TypeJSON, value)
	}
	if _u.mutation.CategoryScoresCleared() {
		_spec.ClearField(testresult.FieldCategoryScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.DimensionScores(); ok {
		_spec.SetField(testresult.FieldDimensionScores, field.TypeJSON, value)
	}
	if _u.mutation.DimensionScoresCleared() {
		_spec.ClearField(testresult.FieldDimensionScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.MainIssue(); ok {
		_spec.SetField(testresult.FieldMainIssue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synced(); ok {
		_spec.SetField(testresult.FieldSynced, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestResultUpdateOne is the builder for updating a single TestResult entity.
type TestResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestResultMutation
}

// SetTestID sets the "test_id" field.
func (_u *TestResultUpdateOne) SetTestID(v string) *TestResultUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableTestID(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetTestTitle sets the "test_title" field.
func (_u *TestResultUpdateOne) SetTestTitle(v string) *TestResultUpdateOne {
	_u.mutation.SetTestTitle(v)
	return _u
}

// SetNillableTestTitle sets the "test_title" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableTestTitle(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetTestTitle(*v)
	}
	return _u
}

// SetResultType sets the "result_type" field.
func (_u *TestResultUpdateOne) SetResultType(v string) *TestResultUpdateOne {
	_u.mutation.SetResultType(v)
	return _u
}

// SetNillableResultType sets the "result_type" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableResultType(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetResultType(*v)
	}
	return _u
}

// SetResultTitle sets the "result_title" field.
func (_u *TestResultUpdateOne) SetResultTitle(v string) *TestResultUpdateOne {
	_u.mutation.SetResultTitle(v)
	return _u
}

// SetNillableResultTitle sets the "result_title" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableResultTitle(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetResultTitle(*v)
	}
	return _u
}

// SetResultEmoji sets the "result_emoji" field.
func (_u *TestResultUpdateOne) SetResultEmoji(v string) *TestResultUpdateOne {
	_u.mutation.SetResultEmoji(v)
	return _u
}

// SetNillableResultEmoji sets the "result_emoji" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableResultEmoji(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetResultEmoji(*v)
	}
	return _u
}

// SetTips sets the "tips" field.
func (_u *TestResultUpdateOne) SetTips(v []string) *TestResultUpdateOne {
	_u.mutation.SetTips(v)
	return _u
}

// AppendTips appends value to the "tips" field.
func (_u *TestResultUpdateOne) AppendTips(v []string) *TestResultUpdateOne {
	_u.mutation.AppendTips(v)
	return _u
}

// ClearTips clears the value of the "tips" field.
func (_u *TestResultUpdateOne) ClearTips() *TestResultUpdateOne {
	_u.mutation.ClearTips()
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *TestResultUpdateOne) SetTotalScore(v int) *TestResultUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableTotalScore(v *int) *TestResultUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *TestResultUpdateOne) AddTotalScore(v int) *TestResultUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// ClearTotalScore clears the value of the "total_score" field.
func (_u *TestResultUpdateOne) ClearTotalScore() *TestResultUpdateOne {
	_u.mutation.ClearTotalScore()
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *TestResultUpdateOne) SetCategoryScores(v map[string]int) *TestResultUpdateOne {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (_u *TestResultUpdateOne) ClearCategoryScores() *TestResultUpdateOne {
	_u.mutation.ClearCategoryScores()
	return _u
}

// SetDimensionScores sets the "dimension_scores" field.
func (_u *TestResultUpdateOne) SetDimensionScores(v map[string]int) *TestResultUpdateOne {
	_u.mutation.SetDimensionScores(v)
	return _u
}

// ClearDimensionScores clears the value of the "dimension_scores" field.
func (_u *TestResultUpdateOne) ClearDimensionScores() *TestResultUpdateOne {
	_u.mutation.ClearDimensionScores()
	return _u
}

// SetMainIssue sets the "main_issue" field.
func (_u *TestResultUpdateOne) SetMainIssue(v string) *TestResultUpdateOne {
	_u.mutation.SetMainIssue(v)
	return _u
}

// SetNillableMainIssue sets the "main_issue" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableMainIssue(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetMainIssue(*v)
	}
	return _u
}

// SetSynced sets the "synced" field.
func (_u *TestResultUpdateOne) SetSynced(v bool) *TestResultUpdateOne {
	_u.mutation.SetSynced(v)
	return _u
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableSynced(v *bool) *TestResultUpdateOne {
	if v != nil {
		_u.SetSynced(*v)
	}
	return _u
}

// Mutation returns the TestResultMutation object of the builder.
func (_u *TestResultUpdateOne) Mutation() *TestResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestResultUpdate builder.
func (_u *TestResultUpdateOne) Where(ps ...predicate.TestResult) *TestResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestResultUpdateOne) Select(field string, fields ...string) *TestResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestResult entity.
func (_u *TestResultUpdateOne) Save(ctx context.Context) (*TestResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestResultUpdateOne) SaveX(ctx context.Context) *TestResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestResultUpdateOne) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := testresult.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestResult.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultType(); ok {
		if err := testresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "TestResult.result_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TestResultUpdateOne) sqlSave(ctx context.Context) (_node *TestResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testresult.Table, testresult.Columns, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testresult.FieldID)
		for _, f := range fields {
			if !testresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testresult.FieldID {
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
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(testresult.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestTitle(); ok {
		_spec.SetField(testresult.FieldTestTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultType(); ok {
		_spec.SetField(testresult.FieldResultType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultTitle(); ok {
		_spec.SetField(testresult.FieldResultTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultEmoji(); ok {
		_spec.SetField(testresult.FieldResultEmoji, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tips(); ok {
		_spec.SetField(testresult.FieldTips, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTips(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testresult.FieldTips, value)
		})
	}
	if _u.mutation.TipsCleared() {
		_spec.ClearField(testresult.FieldTips, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(testresult.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(testresult.FieldTotalScore, field.TypeInt, value)
	}
	if _u.mutation.TotalScoreCleared() {
		_spec.ClearField(testresult.FieldTotalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(testresult.FieldCategoryScores, field.TypeJSON, value)
	}
	if _u.mutation.CategoryScoresCleared() {
		_spec.ClearField(testresult.FieldCategoryScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.DimensionScores(); ok {
		_spec.SetField(testresult.FieldDimensionScores, field.TypeJSON, value)
	}
	if _u.mutation.DimensionScoresCleared() {
		_spec.ClearField(testresult.FieldDimensionScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.MainIssue(); ok {
		_spec.SetField(testresult.FieldMainIssue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Synced(); ok {
		_spec.SetField(testresult.FieldSynced, field.TypeBool, value)
	}
	_node = &TestResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
