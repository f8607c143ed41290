// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/activesession"
)

// ActiveSessionCreate is the builder for creating a ActiveSession entity.
type ActiveSessionCreate struct {
	config
	mutation *ActiveSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ActiveSessionCreate) SetSessionID(v string) *ActiveSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ActiveSessionCreate) SetLearnerID(v string) *ActiveSessionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ActiveSessionCreate) SetLanguage(v string) *ActiveSessionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ActiveSessionCreate) SetCategory(v string) *ActiveSessionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *ActiveSessionCreate) SetDifficultyLevel(v string) *ActiveSessionCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ActiveSessionCreate) SetPayload(v []byte) *ActiveSessionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *ActiveSessionCreate) SetQuestionCount(v int) *ActiveSessionCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ActiveSessionCreate) SetExpiresAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ActiveSessionCreate) SetCompleted(v bool) *ActiveSessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableCompleted(v *bool) *ActiveSessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActiveSessionCreate) SetCreatedAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableCreatedAt(v *time.Time) *ActiveSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ActiveSessionCreate) SetCompletedAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableCompletedAt(v *time.Time) *ActiveSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_c *ActiveSessionCreate) Mutation() *ActiveSessionMutation {
	return _c.mutation
}

// Save creates the ActiveSession in the database.
func (_c *ActiveSessionCreate) Save(ctx context.Context) (*ActiveSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActiveSessionCreate) SaveX(ctx context.Context) *ActiveSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActiveSessionCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := activesession.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActiveSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ActiveSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := activesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActiveSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ActiveSession.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := activesession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ActiveSession.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "ActiveSession.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := activesession.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ActiveSession.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ActiveSession.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := activesession.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ActiveSession.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "ActiveSession.difficulty_level"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ActiveSession.payload"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "ActiveSession.question_count"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ActiveSession.expires_at"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ActiveSession.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActiveSession.created_at"`)}
	}
	return nil
}

func (_c *ActiveSessionCreate) sqlSave(ctx context.Context) (*ActiveSession, error) {
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

func (_c *ActiveSessionCreate) createSpec() (*ActiveSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ActiveSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activesession.Table, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(activesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(activesession.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(activesession.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(activesession.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(activesession.FieldDifficultyLevel, field.TypeString, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(activesession.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(activesession.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(activesession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(activesession.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(activesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ActiveSessionCreateBulk is the builder for creating many ActiveSession entities in bulk.
type ActiveSessionCreateBulk struct {
	config
	err      error
	builders []*ActiveSessionCreate
}

// Save creates the ActiveSession entities in the database.
func (_c *ActiveSessionCreateBulk) Save(ctx context.Context) ([]*ActiveSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActiveSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActiveSessionMutation)
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
func (_c *ActiveSessionCreateBulk) SaveX(ctx context.Context) []*ActiveSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
