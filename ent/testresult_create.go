// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/VoidLight00/lemon-protocol/ent/testresult"
)

// TestResultCreate is the builder for creating a TestResult entity.
type TestResultCreate struct {
	config
	mutation *TestResultMutation
	hooks    []Hook
}

// SetTestID sets the "test_id" field.
func (_c *TestResultCreate) SetTestID(v string) *TestResultCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetTestTitle sets the "test_title" field.
func (_c *TestResultCreate) SetTestTitle(v string) *TestResultCreate {
	_c.mutation.SetTestTitle(v)
	return _c
}

// SetResultType sets the "result_type" field.
func (_c *TestResultCreate) SetResultType(v string) *TestResultCreate {
	_c.mutation.SetResultType(v)
	return _c
}

// SetResultTitle sets the "result_title" field.
func (_c *TestResultCreate) SetResultTitle(v string) *TestResultCreate {
	_c.mutation.SetResultTitle(v)
	return _c
}

// SetResultEmoji sets the "result_emoji" field.
func (_c *TestResultCreate) SetResultEmoji(v string) *TestResultCreate {
	_c.mutation.SetResultEmoji(v)
	return _c
}

// SetTips sets the "tips" field.
func (_c *TestResultCreate) SetTips(v []string) *TestResultCreate {
	_c.mutation.SetTips(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *TestResultCreate) SetTotalScore(v int) *TestResultCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableTotalScore(v *int) *TestResultCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetCategoryScores sets the "category_scores" field.
func (_c *TestResultCreate) SetCategoryScores(v map[string]int) *TestResultCreate {
	_c.mutation.SetCategoryScores(v)
	return _c
}

// SetDimensionScores sets the "dimension_scores" field.
func (_c *TestResultCreate) SetDimensionScores(v map[string]int) *TestResultCreate {
	_c.mutation.SetDimensionScores(v)
	return _c
}

// SetMainIssue sets the "main_issue" field.
func (_c *TestResultCreate) SetMainIssue(v string) *TestResultCreate {
	_c.mutation.SetMainIssue(v)
	return _c
}

// SetNillableMainIssue sets the "main_issue" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableMainIssue(v *string) *TestResultCreate {
	if v != nil {
		_c.SetMainIssue(*v)
	}
	return _c
}

// SetSynced sets the "synced" field.
func (_c *TestResultCreate) SetSynced(v bool) *TestResultCreate {
	_c.mutation.SetSynced(v)
	return _c
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableSynced(v *bool) *TestResultCreate {
	if v != nil {
		_c.SetSynced(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestResultCreate) SetCreatedAt(v time.Time) *TestResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableCreatedAt(v *time.Time) *TestResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TestResultMutation object of the builder.
func (_c *TestResultCreate) Mutation() *TestResultMutation {
	return _c.mutation
}

// Save creates the TestResult in the database.
func (_c *TestResultCreate) Save(ctx context.Context) (*TestResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestResultCreate) SaveX(ctx context.Context) *TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestResultCreate) defaults() {
	if _, ok := _c.mutation.MainIssue(); !ok {
		v := testresult.DefaultMainIssue
		_c.mutation.SetMainIssue(v)
	}
	if _, ok := _c.mutation.Synced(); !ok {
		v := testresult.DefaultSynced
		_c.mutation.SetSynced(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestResultCreate) check() error {
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "TestResult.test_id"`)}
	}
	if v, ok := _c.mutation.TestID(); ok {
		if err := testresult.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestResult.test_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestTitle(); !ok {
		return &ValidationError{Name: "test_title", err: errors.New(`ent: missing required field "TestResult.test_title"`)}
	}
	if _, ok := _c.mutation.ResultType(); !ok {
		return &ValidationError{Name: "result_type", err: errors.New(`ent: missing required field "TestResult.result_type"`)}
	}
	if v, ok := _c.mutation.ResultType(); ok {
		if err := testresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "TestResult.result_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResultTitle(); !ok {
		return &ValidationError{Name: "result_title", err: errors.New(`ent: missing required field "TestResult.result_title"`)}
	}
	if _, ok := _c.mutation.ResultEmoji(); !ok {
		return &ValidationError{Name: "result_emoji", err: errors.New(`ent: missing required field "TestResult.result_emoji"`)}
	}
	if _, ok := _c.mutation.MainIssue(); !ok {
		return &ValidationError{Name: "main_issue", err: errors.New(`ent: missing required field "TestResult.main_issue"`)}
	}
	if _, ok := _c.mutation.Synced(); !ok {
		return &ValidationError{Name: "synced", err: errors.New(`ent: missing required field "TestResult.synced"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestResult.created_at"`)}
	}
	return nil
}

func (_c *TestResultCreate) sqlSave(ctx context.Context) (*TestResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestResultCreate) createSpec() (*TestResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TestResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testresult.Table, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(testresult.FieldTestID, field.TypeString, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.TestTitle(); ok {
		_spec.SetField(testresult.FieldTestTitle, field.TypeString, value)
		_node.TestTitle = value
	}
	if value, ok := _c.mutation.ResultType(); ok {
		_spec.SetField(testresult.FieldResultType, field.TypeString, value)
		_node.ResultType = value
	}
	if value, ok := _c.mutation.ResultTitle(); ok {
		_spec.SetField(testresult.FieldResultTitle, field.TypeString, value)
		_node.ResultTitle = value
	}
	if value, ok := _c.mutation.ResultEmoji(); ok {
		_spec.SetField(testresult.FieldResultEmoji, field.TypeString, value)
		_node.ResultEmoji = value
	}
	if value, ok := _c.mutation.Tips(); ok {
		_spec.SetField(testresult.FieldTips, field.TypeJSON, value)
		_node.Tips = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(testresult.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.CategoryScores(); ok {
		_spec.SetField(testresult.FieldCategoryScores, field.TypeJSON, value)
		_node.CategoryScores = value
	}
	if value, ok := _c.mutation.DimensionScores(); ok {
		_spec.SetField(testresult.FieldDimensionScores, field.TypeJSON, value)
		_node.DimensionScores = value
	}
	if value, ok := _c.mutation.MainIssue(); ok {
		_spec.SetField(testresult.FieldMainIssue, field.TypeString, value)
		_node.MainIssue = value
	}
	if value, ok := _c.mutation.Synced(); ok {
		_spec.SetField(testresult.FieldSynced, field.TypeBool, value)
		_node.Synced = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TestResultCreateBulk is the builder for creating many TestResult entities in bulk.
type TestResultCreateBulk struct {
	config
	err      error
	builders []*TestResultCreate
}

// Save creates the TestResult entities in the database.
func (_c *TestResultCreateBulk) Save(ctx context.Context) ([]*TestResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestResultCreateBulk) SaveX(ctx context.Context) []*TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
