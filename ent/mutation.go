// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/activesession"
	"github.com/abhisek/lingoflow/ent/attemptevent"
	"github.com/abhisek/lingoflow/ent/categoryprogress"
	"github.com/abhisek/lingoflow/ent/dailyxp"
	"github.com/abhisek/lingoflow/ent/itemprogress"
	"github.com/abhisek/lingoflow/ent/learnerprogress"
	"github.com/abhisek/lingoflow/ent/learnersettings"
	"github.com/abhisek/lingoflow/ent/predicate"
	"github.com/abhisek/lingoflow/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActiveSession    = "ActiveSession"
	TypeAttemptEvent     = "AttemptEvent"
	TypeCategoryProgress = "CategoryProgress"
	TypeDailyXP          = "DailyXP"
	TypeItemProgress     = "ItemProgress"
	TypeLearnerProgress  = "LearnerProgress"
	TypeLearnerSettings  = "LearnerSettings"
	TypeSessionEvent     = "SessionEvent"
)

// ActiveSessionMutation represents an operation that mutates the ActiveSession nodes in the graph.
type ActiveSessionMutation struct {
	config
	op                Op
	typ               string
	id                *int
	session_id        *string
	learner_id        *string
	language          *string
	category          *string
	difficulty_level  *string
	payload           *[]byte
	question_count    *int
	addquestion_count *int
	expires_at        *time.Time
	completed         *bool
	created_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ActiveSession, error)
	predicates        []predicate.ActiveSession
}

var _ ent.Mutation = (*ActiveSessionMutation)(nil)

// activesessionOption allows management of the mutation configuration using functional options.
type activesessionOption func(*ActiveSessionMutation)

// newActiveSessionMutation creates new mutation for the ActiveSession entity.
func newActiveSessionMutation(c config, op Op, opts ...activesessionOption) *ActiveSessionMutation {
	m := &ActiveSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeActiveSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActiveSessionID sets the ID field of the mutation.
func withActiveSessionID(id int) activesessionOption {
	return func(m *ActiveSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ActiveSession
		)
		m.oldValue = func(ctx context.Context) (*ActiveSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActiveSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActiveSession sets the old ActiveSession of the mutation.
func withActiveSession(node *ActiveSession) activesessionOption {
	return func(m *ActiveSessionMutation) {
		m.oldValue = func(context.Context) (*ActiveSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActiveSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActiveSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActiveSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActiveSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActiveSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ActiveSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ActiveSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ActiveSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *ActiveSessionMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ActiveSessionMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ActiveSessionMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLanguage sets the "language" field.
func (m *ActiveSessionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ActiveSessionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *ActiveSessionMutation) ResetLanguage() {
	m.language = nil
}

// SetCategory sets the "category" field.
func (m *ActiveSessionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ActiveSessionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ActiveSessionMutation) ResetCategory() {
	m.category = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *ActiveSessionMutation) SetDifficultyLevel(s string) {
	m.difficulty_level = &s
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *ActiveSessionMutation) DifficultyLevel() (r string, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldDifficultyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *ActiveSessionMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
}

// SetPayload sets the "payload" field.
func (m *ActiveSessionMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ActiveSessionMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ActiveSessionMutation) ResetPayload() {
	m.payload = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *ActiveSessionMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *ActiveSessionMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *ActiveSessionMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *ActiveSessionMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *ActiveSessionMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ActiveSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ActiveSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ActiveSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCompleted sets the "completed" field.
func (m *ActiveSessionMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *ActiveSessionMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *ActiveSessionMutation) ResetCompleted() {
	m.completed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ActiveSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActiveSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActiveSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ActiveSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ActiveSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ActiveSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[activesession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ActiveSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[activesession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ActiveSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, activesession.FieldCompletedAt)
}

// Where appends a list predicates to the ActiveSessionMutation builder.
func (m *ActiveSessionMutation) Where(ps ...predicate.ActiveSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActiveSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActiveSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActiveSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActiveSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActiveSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActiveSession).
func (m *ActiveSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActiveSessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session_id != nil {
		fields = append(fields, activesession.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, activesession.FieldLearnerID)
	}
	if m.language != nil {
		fields = append(fields, activesession.FieldLanguage)
	}
	if m.category != nil {
		fields = append(fields, activesession.FieldCategory)
	}
	if m.difficulty_level != nil {
		fields = append(fields, activesession.FieldDifficultyLevel)
	}
	if m.payload != nil {
		fields = append(fields, activesession.FieldPayload)
	}
	if m.question_count != nil {
		fields = append(fields, activesession.FieldQuestionCount)
	}
	if m.expires_at != nil {
		fields = append(fields, activesession.FieldExpiresAt)
	}
	if m.completed != nil {
		fields = append(fields, activesession.FieldCompleted)
	}
	if m.created_at != nil {
		fields = append(fields, activesession.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, activesession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActiveSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activesession.FieldSessionID:
		return m.SessionID()
	case activesession.FieldLearnerID:
		return m.LearnerID()
	case activesession.FieldLanguage:
		return m.Language()
	case activesession.FieldCategory:
		return m.Category()
	case activesession.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case activesession.FieldPayload:
		return m.Payload()
	case activesession.FieldQuestionCount:
		return m.QuestionCount()
	case activesession.FieldExpiresAt:
		return m.ExpiresAt()
	case activesession.FieldCompleted:
		return m.Completed()
	case activesession.FieldCreatedAt:
		return m.CreatedAt()
	case activesession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActiveSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activesession.FieldSessionID:
		return m.OldSessionID(ctx)
	case activesession.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case activesession.FieldLanguage:
		return m.OldLanguage(ctx)
	case activesession.FieldCategory:
		return m.OldCategory(ctx)
	case activesession.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case activesession.FieldPayload:
		return m.OldPayload(ctx)
	case activesession.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case activesession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case activesession.FieldCompleted:
		return m.OldCompleted(ctx)
	case activesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case activesession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActiveSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activesession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case activesession.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case activesession.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case activesession.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case activesession.FieldDifficultyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case activesession.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case activesession.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case activesession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case activesession.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case activesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case activesession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActiveSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActiveSessionMutation) AddedFields() []string {
	var fields []string
	if m.addquestion_count != nil {
		fields = append(fields, activesession.FieldQuestionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActiveSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activesession.FieldQuestionCount:
		return m.AddedQuestionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activesession.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	}
	return fmt.Errorf("unknown ActiveSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActiveSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activesession.FieldCompletedAt) {
		fields = append(fields, activesession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActiveSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActiveSessionMutation) ClearField(name string) error {
	switch name {
	case activesession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ActiveSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActiveSessionMutation) ResetField(name string) error {
	switch name {
	case activesession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case activesession.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case activesession.FieldLanguage:
		m.ResetLanguage()
		return nil
	case activesession.FieldCategory:
		m.ResetCategory()
		return nil
	case activesession.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case activesession.FieldPayload:
		m.ResetPayload()
		return nil
	case activesession.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case activesession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case activesession.FieldCompleted:
		m.ResetCompleted()
		return nil
	case activesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case activesession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ActiveSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActiveSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActiveSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActiveSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActiveSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActiveSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActiveSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActiveSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActiveSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActiveSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActiveSession edge %s", name)
}

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	timestamp     *time.Time
	learner_id    *string
	language      *string
	category      *string
	session_id    *string
	item_id       *string
	objective     *string
	question_type *string
	correct       *bool
	error_type    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AttemptEvent, error)
	predicates    []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *AttemptEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AttemptEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AttemptEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLanguage sets the "language" field.
func (m *AttemptEventMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *AttemptEventMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *AttemptEventMutation) ResetLanguage() {
	m.language = nil
}

// SetCategory sets the "category" field.
func (m *AttemptEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AttemptEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AttemptEventMutation) ResetCategory() {
	m.category = nil
}

// SetSessionID sets the "session_id" field.
func (m *AttemptEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetItemID sets the "item_id" field.
func (m *AttemptEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AttemptEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AttemptEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetObjective sets the "objective" field.
func (m *AttemptEventMutation) SetObjective(s string) {
	m.objective = &s
}

// Objective returns the value of the "objective" field in the mutation.
func (m *AttemptEventMutation) Objective() (r string, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldObjective(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ResetObjective resets all changes to the "objective" field.
func (m *AttemptEventMutation) ResetObjective() {
	m.objective = nil
}

// SetQuestionType sets the "question_type" field.
func (m *AttemptEventMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *AttemptEventMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *AttemptEventMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetErrorType sets the "error_type" field.
func (m *AttemptEventMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *AttemptEventMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *AttemptEventMutation) ResetErrorType() {
	m.error_type = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.learner_id != nil {
		fields = append(fields, attemptevent.FieldLearnerID)
	}
	if m.language != nil {
		fields = append(fields, attemptevent.FieldLanguage)
	}
	if m.category != nil {
		fields = append(fields, attemptevent.FieldCategory)
	}
	if m.session_id != nil {
		fields = append(fields, attemptevent.FieldSessionID)
	}
	if m.item_id != nil {
		fields = append(fields, attemptevent.FieldItemID)
	}
	if m.objective != nil {
		fields = append(fields, attemptevent.FieldObjective)
	}
	if m.question_type != nil {
		fields = append(fields, attemptevent.FieldQuestionType)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.error_type != nil {
		fields = append(fields, attemptevent.FieldErrorType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldLearnerID:
		return m.LearnerID()
	case attemptevent.FieldLanguage:
		return m.Language()
	case attemptevent.FieldCategory:
		return m.Category()
	case attemptevent.FieldSessionID:
		return m.SessionID()
	case attemptevent.FieldItemID:
		return m.ItemID()
	case attemptevent.FieldObjective:
		return m.Objective()
	case attemptevent.FieldQuestionType:
		return m.QuestionType()
	case attemptevent.FieldCorrect:
		return m.Correct()
	case attemptevent.FieldErrorType:
		return m.ErrorType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case attemptevent.FieldLanguage:
		return m.OldLanguage(ctx)
	case attemptevent.FieldCategory:
		return m.OldCategory(ctx)
	case attemptevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case attemptevent.FieldItemID:
		return m.OldItemID(ctx)
	case attemptevent.FieldObjective:
		return m.OldObjective(ctx)
	case attemptevent.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case attemptevent.FieldErrorType:
		return m.OldErrorType(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case attemptevent.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case attemptevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case attemptevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attemptevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case attemptevent.FieldObjective:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case attemptevent.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attemptevent.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case attemptevent.FieldLanguage:
		m.ResetLanguage()
		return nil
	case attemptevent.FieldCategory:
		m.ResetCategory()
		return nil
	case attemptevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attemptevent.FieldItemID:
		m.ResetItemID()
		return nil
	case attemptevent.FieldObjective:
		m.ResetObjective()
		return nil
	case attemptevent.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attemptevent.FieldErrorType:
		m.ResetErrorType()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// CategoryProgressMutation represents an operation that mutates the CategoryProgress nodes in the graph.
type CategoryProgressMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	learner_id         *string
	language           *string
	category           *string
	mastery            *float64
	addmastery         *float64
	attempts           *int
	addattempts        *int
	total_answers      *int
	addtotal_answers   *int
	correct_answers    *int
	addcorrect_answers *int
	level_unlocked     *string
	last_practiced_at  *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CategoryProgress, error)
	predicates         []predicate.CategoryProgress
}

var _ ent.Mutation = (*CategoryProgressMutation)(nil)

// categoryprogressOption allows management of the mutation configuration using functional options.
type categoryprogressOption func(*CategoryProgressMutation)

// newCategoryProgressMutation creates new mutation for the CategoryProgress entity.
func newCategoryProgressMutation(c config, op Op, opts ...categoryprogressOption) *CategoryProgressMutation {
	m := &CategoryProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeCategoryProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryProgressID sets the ID field of the mutation.
func withCategoryProgressID(id int) categoryprogressOption {
	return func(m *CategoryProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *CategoryProgress
		)
		m.oldValue = func(ctx context.Context) (*CategoryProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CategoryProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategoryProgress sets the old CategoryProgress of the mutation.
func withCategoryProgress(node *CategoryProgress) categoryprogressOption {
	return func(m *CategoryProgressMutation) {
		m.oldValue = func(context.Context) (*CategoryProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CategoryProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *CategoryProgressMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *CategoryProgressMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *CategoryProgressMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLanguage sets the "language" field.
func (m *CategoryProgressMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *CategoryProgressMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *CategoryProgressMutation) ResetLanguage() {
	m.language = nil
}

// SetCategory sets the "category" field.
func (m *CategoryProgressMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CategoryProgressMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CategoryProgressMutation) ResetCategory() {
	m.category = nil
}

// SetMastery sets the "mastery" field.
func (m *CategoryProgressMutation) SetMastery(f float64) {
	m.mastery = &f
	m.addmastery = nil
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *CategoryProgressMutation) Mastery() (r float64, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldMastery(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// AddMastery adds f to the "mastery" field.
func (m *CategoryProgressMutation) AddMastery(f float64) {
	if m.addmastery != nil {
		*m.addmastery += f
	} else {
		m.addmastery = &f
	}
}

// AddedMastery returns the value that was added to the "mastery" field in this mutation.
func (m *CategoryProgressMutation) AddedMastery() (r float64, exists bool) {
	v := m.addmastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetMastery resets all changes to the "mastery" field.
func (m *CategoryProgressMutation) ResetMastery() {
	m.mastery = nil
	m.addmastery = nil
}

// SetAttempts sets the "attempts" field.
func (m *CategoryProgressMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *CategoryProgressMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *CategoryProgressMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *CategoryProgressMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *CategoryProgressMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetTotalAnswers sets the "total_answers" field.
func (m *CategoryProgressMutation) SetTotalAnswers(i int) {
	m.total_answers = &i
	m.addtotal_answers = nil
}

// TotalAnswers returns the value of the "total_answers" field in the mutation.
func (m *CategoryProgressMutation) TotalAnswers() (r int, exists bool) {
	v := m.total_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAnswers returns the old "total_answers" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldTotalAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAnswers: %w", err)
	}
	return oldValue.TotalAnswers, nil
}

// AddTotalAnswers adds i to the "total_answers" field.
func (m *CategoryProgressMutation) AddTotalAnswers(i int) {
	if m.addtotal_answers != nil {
		*m.addtotal_answers += i
	} else {
		m.addtotal_answers = &i
	}
}

// AddedTotalAnswers returns the value that was added to the "total_answers" field in this mutation.
func (m *CategoryProgressMutation) AddedTotalAnswers() (r int, exists bool) {
	v := m.addtotal_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAnswers resets all changes to the "total_answers" field.
func (m *CategoryProgressMutation) ResetTotalAnswers() {
	m.total_answers = nil
	m.addtotal_answers = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *CategoryProgressMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *CategoryProgressMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *CategoryProgressMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *CategoryProgressMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *CategoryProgressMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetLevelUnlocked sets the "level_unlocked" field.
func (m *CategoryProgressMutation) SetLevelUnlocked(s string) {
	m.level_unlocked = &s
}

// LevelUnlocked returns the value of the "level_unlocked" field in the mutation.
func (m *CategoryProgressMutation) LevelUnlocked() (r string, exists bool) {
	v := m.level_unlocked
	if v == nil {
		return
	}
	return *v, true
}

// OldLevelUnlocked returns the old "level_unlocked" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldLevelUnlocked(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevelUnlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevelUnlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevelUnlocked: %w", err)
	}
	return oldValue.LevelUnlocked, nil
}

// ResetLevelUnlocked resets all changes to the "level_unlocked" field.
func (m *CategoryProgressMutation) ResetLevelUnlocked() {
	m.level_unlocked = nil
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (m *CategoryProgressMutation) SetLastPracticedAt(t time.Time) {
	m.last_practiced_at = &t
}

// LastPracticedAt returns the value of the "last_practiced_at" field in the mutation.
func (m *CategoryProgressMutation) LastPracticedAt() (r time.Time, exists bool) {
	v := m.last_practiced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticedAt returns the old "last_practiced_at" field's value of the CategoryProgress entity.
// If the CategoryProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryProgressMutation) OldLastPracticedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticedAt: %w", err)
	}
	return oldValue.LastPracticedAt, nil
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (m *CategoryProgressMutation) ClearLastPracticedAt() {
	m.last_practiced_at = nil
	m.clearedFields[categoryprogress.FieldLastPracticedAt] = struct{}{}
}

// LastPracticedAtCleared returns if the "last_practiced_at" field was cleared in this mutation.
func (m *CategoryProgressMutation) LastPracticedAtCleared() bool {
	_, ok := m.clearedFields[categoryprogress.FieldLastPracticedAt]
	return ok
}

// ResetLastPracticedAt resets all changes to the "last_practiced_at" field.
func (m *CategoryProgressMutation) ResetLastPracticedAt() {
	m.last_practiced_at = nil
	delete(m.clearedFields, categoryprogress.FieldLastPracticedAt)
}

// Where appends a list predicates to the CategoryProgressMutation builder.
func (m *CategoryProgressMutation) Where(ps ...predicate.CategoryProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CategoryProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CategoryProgress).
func (m *CategoryProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.learner_id != nil {
		fields = append(fields, categoryprogress.FieldLearnerID)
	}
	if m.language != nil {
		fields = append(fields, categoryprogress.FieldLanguage)
	}
	if m.category != nil {
		fields = append(fields, categoryprogress.FieldCategory)
	}
	if m.mastery != nil {
		fields = append(fields, categoryprogress.FieldMastery)
	}
	if m.attempts != nil {
		fields = append(fields, categoryprogress.FieldAttempts)
	}
	if m.total_answers != nil {
		fields = append(fields, categoryprogress.FieldTotalAnswers)
	}
	if m.correct_answers != nil {
		fields = append(fields, categoryprogress.FieldCorrectAnswers)
	}
	if m.level_unlocked != nil {
		fields = append(fields, categoryprogress.FieldLevelUnlocked)
	}
	if m.last_practiced_at != nil {
		fields = append(fields, categoryprogress.FieldLastPracticedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case categoryprogress.FieldLearnerID:
		return m.LearnerID()
	case categoryprogress.FieldLanguage:
		return m.Language()
	case categoryprogress.FieldCategory:
		return m.Category()
	case categoryprogress.FieldMastery:
		return m.Mastery()
	case categoryprogress.FieldAttempts:
		return m.Attempts()
	case categoryprogress.FieldTotalAnswers:
		return m.TotalAnswers()
	case categoryprogress.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case categoryprogress.FieldLevelUnlocked:
		return m.LevelUnlocked()
	case categoryprogress.FieldLastPracticedAt:
		return m.LastPracticedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case categoryprogress.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case categoryprogress.FieldLanguage:
		return m.OldLanguage(ctx)
	case categoryprogress.FieldCategory:
		return m.OldCategory(ctx)
	case categoryprogress.FieldMastery:
		return m.OldMastery(ctx)
	case categoryprogress.FieldAttempts:
		return m.OldAttempts(ctx)
	case categoryprogress.FieldTotalAnswers:
		return m.OldTotalAnswers(ctx)
	case categoryprogress.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case categoryprogress.FieldLevelUnlocked:
		return m.OldLevelUnlocked(ctx)
	case categoryprogress.FieldLastPracticedAt:
		return m.OldLastPracticedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CategoryProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case categoryprogress.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case categoryprogress.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case categoryprogress.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case categoryprogress.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case categoryprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case categoryprogress.FieldTotalAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAnswers(v)
		return nil
	case categoryprogress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case categoryprogress.FieldLevelUnlocked:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevelUnlocked(v)
		return nil
	case categoryprogress.FieldLastPracticedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryProgressMutation) AddedFields() []string {
	var fields []string
	if m.addmastery != nil {
		fields = append(fields, categoryprogress.FieldMastery)
	}
	if m.addattempts != nil {
		fields = append(fields, categoryprogress.FieldAttempts)
	}
	if m.addtotal_answers != nil {
		fields = append(fields, categoryprogress.FieldTotalAnswers)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, categoryprogress.FieldCorrectAnswers)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case categoryprogress.FieldMastery:
		return m.AddedMastery()
	case categoryprogress.FieldAttempts:
		return m.AddedAttempts()
	case categoryprogress.FieldTotalAnswers:
		return m.AddedTotalAnswers()
	case categoryprogress.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case categoryprogress.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMastery(v)
		return nil
	case categoryprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case categoryprogress.FieldTotalAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAnswers(v)
		return nil
	case categoryprogress.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(categoryprogress.FieldLastPracticedAt) {
		fields = append(fields, categoryprogress.FieldLastPracticedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryProgressMutation) ClearField(name string) error {
	switch name {
	case categoryprogress.FieldLastPracticedAt:
		m.ClearLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown CategoryProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryProgressMutation) ResetField(name string) error {
	switch name {
	case categoryprogress.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case categoryprogress.FieldLanguage:
		m.ResetLanguage()
		return nil
	case categoryprogress.FieldCategory:
		m.ResetCategory()
		return nil
	case categoryprogress.FieldMastery:
		m.ResetMastery()
		return nil
	case categoryprogress.FieldAttempts:
		m.ResetAttempts()
		return nil
	case categoryprogress.FieldTotalAnswers:
		m.ResetTotalAnswers()
		return nil
	case categoryprogress.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case categoryprogress.FieldLevelUnlocked:
		m.ResetLevelUnlocked()
		return nil
	case categoryprogress.FieldLastPracticedAt:
		m.ResetLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown CategoryProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CategoryProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CategoryProgress edge %s", name)
}

// DailyXPMutation represents an operation that mutates the DailyXP nodes in the graph.
type DailyXPMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner_id    *string
	language      *string
	day           *time.Time
	xp            *int
	addxp         *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DailyXP, error)
	predicates    []predicate.DailyXP
}

var _ ent.Mutation = (*DailyXPMutation)(nil)

// dailyxpOption allows management of the mutation configuration using functional options.
type dailyxpOption func(*DailyXPMutation)

// newDailyXPMutation creates new mutation for the DailyXP entity.
func newDailyXPMutation(c config, op Op, opts ...dailyxpOption) *DailyXPMutation {
	m := &DailyXPMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyXP,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyXPID sets the ID field of the mutation.
func withDailyXPID(id int) dailyxpOption {
	return func(m *DailyXPMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyXP
		)
		m.oldValue = func(ctx context.Context) (*DailyXP, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyXP.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyXP sets the old DailyXP of the mutation.
func withDailyXP(node *DailyXP) dailyxpOption {
	return func(m *DailyXPMutation) {
		m.oldValue = func(context.Context) (*DailyXP, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyXPMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyXPMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyXPMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyXPMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyXP.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *DailyXPMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *DailyXPMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the DailyXP entity.
// If the DailyXP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyXPMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *DailyXPMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLanguage sets the "language" field.
func (m *DailyXPMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *DailyXPMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the DailyXP entity.
// If the DailyXP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyXPMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *DailyXPMutation) ResetLanguage() {
	m.language = nil
}

// SetDay sets the "day" field.
func (m *DailyXPMutation) SetDay(t time.Time) {
	m.day = &t
}

// Day returns the value of the "day" field in the mutation.
func (m *DailyXPMutation) Day() (r time.Time, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the DailyXP entity.
// If the DailyXP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyXPMutation) OldDay(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *DailyXPMutation) ResetDay() {
	m.day = nil
}

// SetXp sets the "xp" field.
func (m *DailyXPMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *DailyXPMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the DailyXP entity.
// If the DailyXP object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyXPMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *DailyXPMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *DailyXPMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *DailyXPMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// Where appends a list predicates to the DailyXPMutation builder.
func (m *DailyXPMutation) Where(ps ...predicate.DailyXP) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyXPMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyXPMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyXP, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyXPMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyXPMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyXP).
func (m *DailyXPMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyXPMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.learner_id != nil {
		fields = append(fields, dailyxp.FieldLearnerID)
	}
	if m.language != nil {
		fields = append(fields, dailyxp.FieldLanguage)
	}
	if m.day != nil {
		fields = append(fields, dailyxp.FieldDay)
	}
	if m.xp != nil {
		fields = append(fields, dailyxp.FieldXp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyXPMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailyxp.FieldLearnerID:
		return m.LearnerID()
	case dailyxp.FieldLanguage:
		return m.Language()
	case dailyxp.FieldDay:
		return m.Day()
	case dailyxp.FieldXp:
		return m.Xp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyXPMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailyxp.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case dailyxp.FieldLanguage:
		return m.OldLanguage(ctx)
	case dailyxp.FieldDay:
		return m.OldDay(ctx)
	case dailyxp.FieldXp:
		return m.OldXp(ctx)
	}
	return nil, fmt.Errorf("unknown DailyXP field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyXPMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailyxp.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case dailyxp.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case dailyxp.FieldDay:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case dailyxp.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	}
	return fmt.Errorf("unknown DailyXP field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyXPMutation) AddedFields() []string {
	var fields []string
	if m.addxp != nil {
		fields = append(fields, dailyxp.FieldXp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyXPMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailyxp.FieldXp:
		return m.AddedXp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyXPMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailyxp.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	}
	return fmt.Errorf("unknown DailyXP numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyXPMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyXPMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyXPMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyXP nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyXPMutation) ResetField(name string) error {
	switch name {
	case dailyxp.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case dailyxp.FieldLanguage:
		m.ResetLanguage()
		return nil
	case dailyxp.FieldDay:
		m.ResetDay()
		return nil
	case dailyxp.FieldXp:
		m.ResetXp()
		return nil
	}
	return fmt.Errorf("unknown DailyXP field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyXPMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyXPMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyXPMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyXPMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyXPMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyXPMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyXPMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DailyXP unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyXPMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DailyXP edge %s", name)
}

// ItemProgressMutation represents an operation that mutates the ItemProgress nodes in the graph.
type ItemProgressMutation struct {
	config
	op              Op
	typ             string
	id              *int
	learner_id      *string
	language        *string
	category        *string
	item_id         *string
	objective       *string
	ease            *float64
	addease         *float64
	streak          *int
	addstreak       *int
	attempts        *int
	addattempts     *int
	correct         *int
	addcorrect      *int
	error_count     *int
	adderror_count  *int
	last_error_type *string
	last_seen       *time.Time
	next_due        *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ItemProgress, error)
	predicates      []predicate.ItemProgress
}

var _ ent.Mutation = (*ItemProgressMutation)(nil)

// itemprogressOption allows management of the mutation configuration using functional options.
type itemprogressOption func(*ItemProgressMutation)

// newItemProgressMutation creates new mutation for the ItemProgress entity.
func newItemProgressMutation(c config, op Op, opts ...itemprogressOption) *ItemProgressMutation {
	m := &ItemProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeItemProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemProgressID sets the ID field of the mutation.
func withItemProgressID(id int) itemprogressOption {
	return func(m *ItemProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *ItemProgress
		)
		m.oldValue = func(ctx context.Context) (*ItemProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ItemProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItemProgress sets the old ItemProgress of the mutation.
func withItemProgress(node *ItemProgress) itemprogressOption {
	return func(m *ItemProgressMutation) {
		m.oldValue = func(context.Context) (*ItemProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ItemProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *ItemProgressMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ItemProgressMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ItemProgressMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLanguage sets the "language" field.
func (m *ItemProgressMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ItemProgressMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *ItemProgressMutation) ResetLanguage() {
	m.language = nil
}

// SetCategory sets the "category" field.
func (m *ItemProgressMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ItemProgressMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ItemProgressMutation) ResetCategory() {
	m.category = nil
}

// SetItemID sets the "item_id" field.
func (m *ItemProgressMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ItemProgressMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ItemProgressMutation) ResetItemID() {
	m.item_id = nil
}

// SetObjective sets the "objective" field.
func (m *ItemProgressMutation) SetObjective(s string) {
	m.objective = &s
}

// Objective returns the value of the "objective" field in the mutation.
func (m *ItemProgressMutation) Objective() (r string, exists bool) {
	v := m.objective
	if v == nil {
		return
	}
	return *v, true
}

// OldObjective returns the old "objective" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldObjective(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjective is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjective requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjective: %w", err)
	}
	return oldValue.Objective, nil
}

// ResetObjective resets all changes to the "objective" field.
func (m *ItemProgressMutation) ResetObjective() {
	m.objective = nil
}

// SetEase sets the "ease" field.
func (m *ItemProgressMutation) SetEase(f float64) {
	m.ease = &f
	m.addease = nil
}

// Ease returns the value of the "ease" field in the mutation.
func (m *ItemProgressMutation) Ease() (r float64, exists bool) {
	v := m.ease
	if v == nil {
		return
	}
	return *v, true
}

// OldEase returns the old "ease" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldEase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEase: %w", err)
	}
	return oldValue.Ease, nil
}

// AddEase adds f to the "ease" field.
func (m *ItemProgressMutation) AddEase(f float64) {
	if m.addease != nil {
		*m.addease += f
	} else {
		m.addease = &f
	}
}

// AddedEase returns the value that was added to the "ease" field in this mutation.
func (m *ItemProgressMutation) AddedEase() (r float64, exists bool) {
	v := m.addease
	if v == nil {
		return
	}
	return *v, true
}

// ResetEase resets all changes to the "ease" field.
func (m *ItemProgressMutation) ResetEase() {
	m.ease = nil
	m.addease = nil
}

// SetStreak sets the "streak" field.
func (m *ItemProgressMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *ItemProgressMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *ItemProgressMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *ItemProgressMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *ItemProgressMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetAttempts sets the "attempts" field.
func (m *ItemProgressMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ItemProgressMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ItemProgressMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ItemProgressMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ItemProgressMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCorrect sets the "correct" field.
func (m *ItemProgressMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ItemProgressMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *ItemProgressMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *ItemProgressMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ItemProgressMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetErrorCount sets the "error_count" field.
func (m *ItemProgressMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *ItemProgressMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *ItemProgressMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *ItemProgressMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *ItemProgressMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetLastErrorType sets the "last_error_type" field.
func (m *ItemProgressMutation) SetLastErrorType(s string) {
	m.last_error_type = &s
}

// LastErrorType returns the value of the "last_error_type" field in the mutation.
func (m *ItemProgressMutation) LastErrorType() (r string, exists bool) {
	v := m.last_error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorType returns the old "last_error_type" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldLastErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorType: %w", err)
	}
	return oldValue.LastErrorType, nil
}

// ResetLastErrorType resets all changes to the "last_error_type" field.
func (m *ItemProgressMutation) ResetLastErrorType() {
	m.last_error_type = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ItemProgressMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ItemProgressMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldLastSeen(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ClearLastSeen clears the value of the "last_seen" field.
func (m *ItemProgressMutation) ClearLastSeen() {
	m.last_seen = nil
	m.clearedFields[itemprogress.FieldLastSeen] = struct{}{}
}

// LastSeenCleared returns if the "last_seen" field was cleared in this mutation.
func (m *ItemProgressMutation) LastSeenCleared() bool {
	_, ok := m.clearedFields[itemprogress.FieldLastSeen]
	return ok
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ItemProgressMutation) ResetLastSeen() {
	m.last_seen = nil
	delete(m.clearedFields, itemprogress.FieldLastSeen)
}

// SetNextDue sets the "next_due" field.
func (m *ItemProgressMutation) SetNextDue(t time.Time) {
	m.next_due = &t
}

// NextDue returns the value of the "next_due" field in the mutation.
func (m *ItemProgressMutation) NextDue() (r time.Time, exists bool) {
	v := m.next_due
	if v == nil {
		return
	}
	return *v, true
}

// OldNextDue returns the old "next_due" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldNextDue(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextDue: %w", err)
	}
	return oldValue.NextDue, nil
}

// ClearNextDue clears the value of the "next_due" field.
func (m *ItemProgressMutation) ClearNextDue() {
	m.next_due = nil
	m.clearedFields[itemprogress.FieldNextDue] = struct{}{}
}

// NextDueCleared returns if the "next_due" field was cleared in this mutation.
func (m *ItemProgressMutation) NextDueCleared() bool {
	_, ok := m.clearedFields[itemprogress.FieldNextDue]
	return ok
}

// ResetNextDue resets all changes to the "next_due" field.
func (m *ItemProgressMutation) ResetNextDue() {
	m.next_due = nil
	delete(m.clearedFields, itemprogress.FieldNextDue)
}

// Where appends a list predicates to the ItemProgressMutation builder.
func (m *ItemProgressMutation) Where(ps ...predicate.ItemProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ItemProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ItemProgress).
func (m *ItemProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemProgressMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.learner_id != nil {
		fields = append(fields, itemprogress.FieldLearnerID)
	}
	if m.language != nil {
		fields = append(fields, itemprogress.FieldLanguage)
	}
	if m.category != nil {
		fields = append(fields, itemprogress.FieldCategory)
	}
	if m.item_id != nil {
		fields = append(fields, itemprogress.FieldItemID)
	}
	if m.objective != nil {
		fields = append(fields, itemprogress.FieldObjective)
	}
	if m.ease != nil {
		fields = append(fields, itemprogress.FieldEase)
	}
	if m.streak != nil {
		fields = append(fields, itemprogress.FieldStreak)
	}
	if m.attempts != nil {
		fields = append(fields, itemprogress.FieldAttempts)
	}
	if m.correct != nil {
		fields = append(fields, itemprogress.FieldCorrect)
	}
	if m.error_count != nil {
		fields = append(fields, itemprogress.FieldErrorCount)
	}
	if m.last_error_type != nil {
		fields = append(fields, itemprogress.FieldLastErrorType)
	}
	if m.last_seen != nil {
		fields = append(fields, itemprogress.FieldLastSeen)
	}
	if m.next_due != nil {
		fields = append(fields, itemprogress.FieldNextDue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case itemprogress.FieldLearnerID:
		return m.LearnerID()
	case itemprogress.FieldLanguage:
		return m.Language()
	case itemprogress.FieldCategory:
		return m.Category()
	case itemprogress.FieldItemID:
		return m.ItemID()
	case itemprogress.FieldObjective:
		return m.Objective()
	case itemprogress.FieldEase:
		return m.Ease()
	case itemprogress.FieldStreak:
		return m.Streak()
	case itemprogress.FieldAttempts:
		return m.Attempts()
	case itemprogress.FieldCorrect:
		return m.Correct()
	case itemprogress.FieldErrorCount:
		return m.ErrorCount()
	case itemprogress.FieldLastErrorType:
		return m.LastErrorType()
	case itemprogress.FieldLastSeen:
		return m.LastSeen()
	case itemprogress.FieldNextDue:
		return m.NextDue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case itemprogress.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case itemprogress.FieldLanguage:
		return m.OldLanguage(ctx)
	case itemprogress.FieldCategory:
		return m.OldCategory(ctx)
	case itemprogress.FieldItemID:
		return m.OldItemID(ctx)
	case itemprogress.FieldObjective:
		return m.OldObjective(ctx)
	case itemprogress.FieldEase:
		return m.OldEase(ctx)
	case itemprogress.FieldStreak:
		return m.OldStreak(ctx)
	case itemprogress.FieldAttempts:
		return m.OldAttempts(ctx)
	case itemprogress.FieldCorrect:
		return m.OldCorrect(ctx)
	case itemprogress.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case itemprogress.FieldLastErrorType:
		return m.OldLastErrorType(ctx)
	case itemprogress.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case itemprogress.FieldNextDue:
		return m.OldNextDue(ctx)
	}
	return nil, fmt.Errorf("unknown ItemProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case itemprogress.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case itemprogress.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case itemprogress.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case itemprogress.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case itemprogress.FieldObjective:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjective(v)
		return nil
	case itemprogress.FieldEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEase(v)
		return nil
	case itemprogress.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case itemprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case itemprogress.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case itemprogress.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case itemprogress.FieldLastErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorType(v)
		return nil
	case itemprogress.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case itemprogress.FieldNextDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextDue(v)
		return nil
	}
	return fmt.Errorf("unknown ItemProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemProgressMutation) AddedFields() []string {
	var fields []string
	if m.addease != nil {
		fields = append(fields, itemprogress.FieldEase)
	}
	if m.addstreak != nil {
		fields = append(fields, itemprogress.FieldStreak)
	}
	if m.addattempts != nil {
		fields = append(fields, itemprogress.FieldAttempts)
	}
	if m.addcorrect != nil {
		fields = append(fields, itemprogress.FieldCorrect)
	}
	if m.adderror_count != nil {
		fields = append(fields, itemprogress.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case itemprogress.FieldEase:
		return m.AddedEase()
	case itemprogress.FieldStreak:
		return m.AddedStreak()
	case itemprogress.FieldAttempts:
		return m.AddedAttempts()
	case itemprogress.FieldCorrect:
		return m.AddedCorrect()
	case itemprogress.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case itemprogress.FieldEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEase(v)
		return nil
	case itemprogress.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case itemprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case itemprogress.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case itemprogress.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown ItemProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(itemprogress.FieldLastSeen) {
		fields = append(fields, itemprogress.FieldLastSeen)
	}
	if m.FieldCleared(itemprogress.FieldNextDue) {
		fields = append(fields, itemprogress.FieldNextDue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemProgressMutation) ClearField(name string) error {
	switch name {
	case itemprogress.FieldLastSeen:
		m.ClearLastSeen()
		return nil
	case itemprogress.FieldNextDue:
		m.ClearNextDue()
		return nil
	}
	return fmt.Errorf("unknown ItemProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemProgressMutation) ResetField(name string) error {
	switch name {
	case itemprogress.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case itemprogress.FieldLanguage:
		m.ResetLanguage()
		return nil
	case itemprogress.FieldCategory:
		m.ResetCategory()
		return nil
	case itemprogress.FieldItemID:
		m.ResetItemID()
		return nil
	case itemprogress.FieldObjective:
		m.ResetObjective()
		return nil
	case itemprogress.FieldEase:
		m.ResetEase()
		return nil
	case itemprogress.FieldStreak:
		m.ResetStreak()
		return nil
	case itemprogress.FieldAttempts:
		m.ResetAttempts()
		return nil
	case itemprogress.FieldCorrect:
		m.ResetCorrect()
		return nil
	case itemprogress.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case itemprogress.FieldLastErrorType:
		m.ResetLastErrorType()
		return nil
	case itemprogress.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case itemprogress.FieldNextDue:
		m.ResetNextDue()
		return nil
	}
	return fmt.Errorf("unknown ItemProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ItemProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ItemProgress edge %s", name)
}

// LearnerProgressMutation represents an operation that mutates the LearnerProgress nodes in the graph.
type LearnerProgressMutation struct {
	config
	op               Op
	typ              string
	id               *int
	learner_id       *string
	total_xp         *int
	addtotal_xp      *int
	streak_days      *int
	addstreak_days   *int
	hearts           *int
	addhearts        *int
	learner_level    *int
	addlearner_level *int
	last_completed   *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LearnerProgress, error)
	predicates       []predicate.LearnerProgress
}

var _ ent.Mutation = (*LearnerProgressMutation)(nil)

// learnerprogressOption allows management of the mutation configuration using functional options.
type learnerprogressOption func(*LearnerProgressMutation)

// newLearnerProgressMutation creates new mutation for the LearnerProgress entity.
func newLearnerProgressMutation(c config, op Op, opts ...learnerprogressOption) *LearnerProgressMutation {
	m := &LearnerProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerProgressID sets the ID field of the mutation.
func withLearnerProgressID(id int) learnerprogressOption {
	return func(m *LearnerProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerProgress
		)
		m.oldValue = func(ctx context.Context) (*LearnerProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerProgress sets the old LearnerProgress of the mutation.
func withLearnerProgress(node *LearnerProgress) learnerprogressOption {
	return func(m *LearnerProgressMutation) {
		m.oldValue = func(context.Context) (*LearnerProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerProgressMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerProgressMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the LearnerProgress entity.
// If the LearnerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProgressMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerProgressMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetTotalXp sets the "total_xp" field.
func (m *LearnerProgressMutation) SetTotalXp(i int) {
	m.total_xp = &i
	m.addtotal_xp = nil
}

// TotalXp returns the value of the "total_xp" field in the mutation.
func (m *LearnerProgressMutation) TotalXp() (r int, exists bool) {
	v := m.total_xp
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalXp returns the old "total_xp" field's value of the LearnerProgress entity.
// If the LearnerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProgressMutation) OldTotalXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalXp: %w", err)
	}
	return oldValue.TotalXp, nil
}

// AddTotalXp adds i to the "total_xp" field.
func (m *LearnerProgressMutation) AddTotalXp(i int) {
	if m.addtotal_xp != nil {
		*m.addtotal_xp += i
	} else {
		m.addtotal_xp = &i
	}
}

// AddedTotalXp returns the value that was added to the "total_xp" field in this mutation.
func (m *LearnerProgressMutation) AddedTotalXp() (r int, exists bool) {
	v := m.addtotal_xp
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalXp resets all changes to the "total_xp" field.
func (m *LearnerProgressMutation) ResetTotalXp() {
	m.total_xp = nil
	m.addtotal_xp = nil
}

// SetStreakDays sets the "streak_days" field.
func (m *LearnerProgressMutation) SetStreakDays(i int) {
	m.streak_days = &i
	m.addstreak_days = nil
}

// StreakDays returns the value of the "streak_days" field in the mutation.
func (m *LearnerProgressMutation) StreakDays() (r int, exists bool) {
	v := m.streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakDays returns the old "streak_days" field's value of the LearnerProgress entity.
// If the LearnerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProgressMutation) OldStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakDays: %w", err)
	}
	return oldValue.StreakDays, nil
}

// AddStreakDays adds i to the "streak_days" field.
func (m *LearnerProgressMutation) AddStreakDays(i int) {
	if m.addstreak_days != nil {
		*m.addstreak_days += i
	} else {
		m.addstreak_days = &i
	}
}

// AddedStreakDays returns the value that was added to the "streak_days" field in this mutation.
func (m *LearnerProgressMutation) AddedStreakDays() (r int, exists bool) {
	v := m.addstreak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakDays resets all changes to the "streak_days" field.
func (m *LearnerProgressMutation) ResetStreakDays() {
	m.streak_days = nil
	m.addstreak_days = nil
}

// SetHearts sets the "hearts" field.
func (m *LearnerProgressMutation) SetHearts(i int) {
	m.hearts = &i
	m.addhearts = nil
}

// Hearts returns the value of the "hearts" field in the mutation.
func (m *LearnerProgressMutation) Hearts() (r int, exists bool) {
	v := m.hearts
	if v == nil {
		return
	}
	return *v, true
}

// OldHearts returns the old "hearts" field's value of the LearnerProgress entity.
// If the LearnerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProgressMutation) OldHearts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearts: %w", err)
	}
	return oldValue.Hearts, nil
}

// AddHearts adds i to the "hearts" field.
func (m *LearnerProgressMutation) AddHearts(i int) {
	if m.addhearts != nil {
		*m.addhearts += i
	} else {
		m.addhearts = &i
	}
}

// AddedHearts returns the value that was added to the "hearts" field in this mutation.
func (m *LearnerProgressMutation) AddedHearts() (r int, exists bool) {
	v := m.addhearts
	if v == nil {
		return
	}
	return *v, true
}

// ResetHearts resets all changes to the "hearts" field.
func (m *LearnerProgressMutation) ResetHearts() {
	m.hearts = nil
	m.addhearts = nil
}

// SetLearnerLevel sets the "learner_level" field.
func (m *LearnerProgressMutation) SetLearnerLevel(i int) {
	m.learner_level = &i
	m.addlearner_level = nil
}

// LearnerLevel returns the value of the "learner_level" field in the mutation.
func (m *LearnerProgressMutation) LearnerLevel() (r int, exists bool) {
	v := m.learner_level
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerLevel returns the old "learner_level" field's value of the LearnerProgress entity.
// If the LearnerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProgressMutation) OldLearnerLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerLevel: %w", err)
	}
	return oldValue.LearnerLevel, nil
}

// AddLearnerLevel adds i to the "learner_level" field.
func (m *LearnerProgressMutation) AddLearnerLevel(i int) {
	if m.addlearner_level != nil {
		*m.addlearner_level += i
	} else {
		m.addlearner_level = &i
	}
}

// AddedLearnerLevel returns the value that was added to the "learner_level" field in this mutation.
func (m *LearnerProgressMutation) AddedLearnerLevel() (r int, exists bool) {
	v := m.addlearner_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearnerLevel resets all changes to the "learner_level" field.
func (m *LearnerProgressMutation) ResetLearnerLevel() {
	m.learner_level = nil
	m.addlearner_level = nil
}

// SetLastCompleted sets the "last_completed" field.
func (m *LearnerProgressMutation) SetLastCompleted(t time.Time) {
	m.last_completed = &t
}

// LastCompleted returns the value of the "last_completed" field in the mutation.
func (m *LearnerProgressMutation) LastCompleted() (r time.Time, exists bool) {
	v := m.last_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCompleted returns the old "last_completed" field's value of the LearnerProgress entity.
// If the LearnerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProgressMutation) OldLastCompleted(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCompleted: %w", err)
	}
	return oldValue.LastCompleted, nil
}

// ClearLastCompleted clears the value of the "last_completed" field.
func (m *LearnerProgressMutation) ClearLastCompleted() {
	m.last_completed = nil
	m.clearedFields[learnerprogress.FieldLastCompleted] = struct{}{}
}

// LastCompletedCleared returns if the "last_completed" field was cleared in this mutation.
func (m *LearnerProgressMutation) LastCompletedCleared() bool {
	_, ok := m.clearedFields[learnerprogress.FieldLastCompleted]
	return ok
}

// ResetLastCompleted resets all changes to the "last_completed" field.
func (m *LearnerProgressMutation) ResetLastCompleted() {
	m.last_completed = nil
	delete(m.clearedFields, learnerprogress.FieldLastCompleted)
}

// Where appends a list predicates to the LearnerProgressMutation builder.
func (m *LearnerProgressMutation) Where(ps ...predicate.LearnerProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerProgress).
func (m *LearnerProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerProgressMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.learner_id != nil {
		fields = append(fields, learnerprogress.FieldLearnerID)
	}
	if m.total_xp != nil {
		fields = append(fields, learnerprogress.FieldTotalXp)
	}
	if m.streak_days != nil {
		fields = append(fields, learnerprogress.FieldStreakDays)
	}
	if m.hearts != nil {
		fields = append(fields, learnerprogress.FieldHearts)
	}
	if m.learner_level != nil {
		fields = append(fields, learnerprogress.FieldLearnerLevel)
	}
	if m.last_completed != nil {
		fields = append(fields, learnerprogress.FieldLastCompleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnerprogress.FieldLearnerID:
		return m.LearnerID()
	case learnerprogress.FieldTotalXp:
		return m.TotalXp()
	case learnerprogress.FieldStreakDays:
		return m.StreakDays()
	case learnerprogress.FieldHearts:
		return m.Hearts()
	case learnerprogress.FieldLearnerLevel:
		return m.LearnerLevel()
	case learnerprogress.FieldLastCompleted:
		return m.LastCompleted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnerprogress.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learnerprogress.FieldTotalXp:
		return m.OldTotalXp(ctx)
	case learnerprogress.FieldStreakDays:
		return m.OldStreakDays(ctx)
	case learnerprogress.FieldHearts:
		return m.OldHearts(ctx)
	case learnerprogress.FieldLearnerLevel:
		return m.OldLearnerLevel(ctx)
	case learnerprogress.FieldLastCompleted:
		return m.OldLastCompleted(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnerprogress.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learnerprogress.FieldTotalXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalXp(v)
		return nil
	case learnerprogress.FieldStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakDays(v)
		return nil
	case learnerprogress.FieldHearts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearts(v)
		return nil
	case learnerprogress.FieldLearnerLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerLevel(v)
		return nil
	case learnerprogress.FieldLastCompleted:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerProgressMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_xp != nil {
		fields = append(fields, learnerprogress.FieldTotalXp)
	}
	if m.addstreak_days != nil {
		fields = append(fields, learnerprogress.FieldStreakDays)
	}
	if m.addhearts != nil {
		fields = append(fields, learnerprogress.FieldHearts)
	}
	if m.addlearner_level != nil {
		fields = append(fields, learnerprogress.FieldLearnerLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnerprogress.FieldTotalXp:
		return m.AddedTotalXp()
	case learnerprogress.FieldStreakDays:
		return m.AddedStreakDays()
	case learnerprogress.FieldHearts:
		return m.AddedHearts()
	case learnerprogress.FieldLearnerLevel:
		return m.AddedLearnerLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnerprogress.FieldTotalXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalXp(v)
		return nil
	case learnerprogress.FieldStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakDays(v)
		return nil
	case learnerprogress.FieldHearts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHearts(v)
		return nil
	case learnerprogress.FieldLearnerLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearnerLevel(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnerprogress.FieldLastCompleted) {
		fields = append(fields, learnerprogress.FieldLastCompleted)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerProgressMutation) ClearField(name string) error {
	switch name {
	case learnerprogress.FieldLastCompleted:
		m.ClearLastCompleted()
		return nil
	}
	return fmt.Errorf("unknown LearnerProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerProgressMutation) ResetField(name string) error {
	switch name {
	case learnerprogress.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learnerprogress.FieldTotalXp:
		m.ResetTotalXp()
		return nil
	case learnerprogress.FieldStreakDays:
		m.ResetStreakDays()
		return nil
	case learnerprogress.FieldHearts:
		m.ResetHearts()
		return nil
	case learnerprogress.FieldLearnerLevel:
		m.ResetLearnerLevel()
		return nil
	case learnerprogress.FieldLastCompleted:
		m.ResetLastCompleted()
		return nil
	}
	return fmt.Errorf("unknown LearnerProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerProgress edge %s", name)
}

// LearnerSettingsMutation represents an operation that mutates the LearnerSettings nodes in the graph.
type LearnerSettingsMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	learner_id              *string
	native_language         *string
	target_language         *string
	daily_goal              *int
	adddaily_goal           *int
	daily_minutes           *int
	adddaily_minutes        *int
	weekly_goal_sessions    *int
	addweekly_goal_sessions *int
	self_rated_level        *string
	learner_name            *string
	learner_bio             *string
	focus_area              *string
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*LearnerSettings, error)
	predicates              []predicate.LearnerSettings
}

var _ ent.Mutation = (*LearnerSettingsMutation)(nil)

// learnersettingsOption allows management of the mutation configuration using functional options.
type learnersettingsOption func(*LearnerSettingsMutation)

// newLearnerSettingsMutation creates new mutation for the LearnerSettings entity.
func newLearnerSettingsMutation(c config, op Op, opts ...learnersettingsOption) *LearnerSettingsMutation {
	m := &LearnerSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerSettingsID sets the ID field of the mutation.
func withLearnerSettingsID(id int) learnersettingsOption {
	return func(m *LearnerSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerSettings
		)
		m.oldValue = func(ctx context.Context) (*LearnerSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerSettings sets the old LearnerSettings of the mutation.
func withLearnerSettings(node *LearnerSettings) learnersettingsOption {
	return func(m *LearnerSettingsMutation) {
		m.oldValue = func(context.Context) (*LearnerSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerSettingsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerSettingsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerSettingsMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerSettingsMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerSettingsMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetNativeLanguage sets the "native_language" field.
func (m *LearnerSettingsMutation) SetNativeLanguage(s string) {
	m.native_language = &s
}

// NativeLanguage returns the value of the "native_language" field in the mutation.
func (m *LearnerSettingsMutation) NativeLanguage() (r string, exists bool) {
	v := m.native_language
	if v == nil {
		return
	}
	return *v, true
}

// OldNativeLanguage returns the old "native_language" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldNativeLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNativeLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNativeLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNativeLanguage: %w", err)
	}
	return oldValue.NativeLanguage, nil
}

// ResetNativeLanguage resets all changes to the "native_language" field.
func (m *LearnerSettingsMutation) ResetNativeLanguage() {
	m.native_language = nil
}

// SetTargetLanguage sets the "target_language" field.
func (m *LearnerSettingsMutation) SetTargetLanguage(s string) {
	m.target_language = &s
}

// TargetLanguage returns the value of the "target_language" field in the mutation.
func (m *LearnerSettingsMutation) TargetLanguage() (r string, exists bool) {
	v := m.target_language
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLanguage returns the old "target_language" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldTargetLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLanguage: %w", err)
	}
	return oldValue.TargetLanguage, nil
}

// ResetTargetLanguage resets all changes to the "target_language" field.
func (m *LearnerSettingsMutation) ResetTargetLanguage() {
	m.target_language = nil
}

// SetDailyGoal sets the "daily_goal" field.
func (m *LearnerSettingsMutation) SetDailyGoal(i int) {
	m.daily_goal = &i
	m.adddaily_goal = nil
}

// DailyGoal returns the value of the "daily_goal" field in the mutation.
func (m *LearnerSettingsMutation) DailyGoal() (r int, exists bool) {
	v := m.daily_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyGoal returns the old "daily_goal" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldDailyGoal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyGoal: %w", err)
	}
	return oldValue.DailyGoal, nil
}

// AddDailyGoal adds i to the "daily_goal" field.
func (m *LearnerSettingsMutation) AddDailyGoal(i int) {
	if m.adddaily_goal != nil {
		*m.adddaily_goal += i
	} else {
		m.adddaily_goal = &i
	}
}

// AddedDailyGoal returns the value that was added to the "daily_goal" field in this mutation.
func (m *LearnerSettingsMutation) AddedDailyGoal() (r int, exists bool) {
	v := m.adddaily_goal
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyGoal resets all changes to the "daily_goal" field.
func (m *LearnerSettingsMutation) ResetDailyGoal() {
	m.daily_goal = nil
	m.adddaily_goal = nil
}

// SetDailyMinutes sets the "daily_minutes" field.
func (m *LearnerSettingsMutation) SetDailyMinutes(i int) {
	m.daily_minutes = &i
	m.adddaily_minutes = nil
}

// DailyMinutes returns the value of the "daily_minutes" field in the mutation.
func (m *LearnerSettingsMutation) DailyMinutes() (r int, exists bool) {
	v := m.daily_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyMinutes returns the old "daily_minutes" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldDailyMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyMinutes: %w", err)
	}
	return oldValue.DailyMinutes, nil
}

// AddDailyMinutes adds i to the "daily_minutes" field.
func (m *LearnerSettingsMutation) AddDailyMinutes(i int) {
	if m.adddaily_minutes != nil {
		*m.adddaily_minutes += i
	} else {
		m.adddaily_minutes = &i
	}
}

// AddedDailyMinutes returns the value that was added to the "daily_minutes" field in this mutation.
func (m *LearnerSettingsMutation) AddedDailyMinutes() (r int, exists bool) {
	v := m.adddaily_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyMinutes resets all changes to the "daily_minutes" field.
func (m *LearnerSettingsMutation) ResetDailyMinutes() {
	m.daily_minutes = nil
	m.adddaily_minutes = nil
}

// SetWeeklyGoalSessions sets the "weekly_goal_sessions" field.
func (m *LearnerSettingsMutation) SetWeeklyGoalSessions(i int) {
	m.weekly_goal_sessions = &i
	m.addweekly_goal_sessions = nil
}

// WeeklyGoalSessions returns the value of the "weekly_goal_sessions" field in the mutation.
func (m *LearnerSettingsMutation) WeeklyGoalSessions() (r int, exists bool) {
	v := m.weekly_goal_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeklyGoalSessions returns the old "weekly_goal_sessions" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldWeeklyGoalSessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeklyGoalSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeklyGoalSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeklyGoalSessions: %w", err)
	}
	return oldValue.WeeklyGoalSessions, nil
}

// AddWeeklyGoalSessions adds i to the "weekly_goal_sessions" field.
func (m *LearnerSettingsMutation) AddWeeklyGoalSessions(i int) {
	if m.addweekly_goal_sessions != nil {
		*m.addweekly_goal_sessions += i
	} else {
		m.addweekly_goal_sessions = &i
	}
}

// AddedWeeklyGoalSessions returns the value that was added to the "weekly_goal_sessions" field in this mutation.
func (m *LearnerSettingsMutation) AddedWeeklyGoalSessions() (r int, exists bool) {
	v := m.addweekly_goal_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeeklyGoalSessions resets all changes to the "weekly_goal_sessions" field.
func (m *LearnerSettingsMutation) ResetWeeklyGoalSessions() {
	m.weekly_goal_sessions = nil
	m.addweekly_goal_sessions = nil
}

// SetSelfRatedLevel sets the "self_rated_level" field.
func (m *LearnerSettingsMutation) SetSelfRatedLevel(s string) {
	m.self_rated_level = &s
}

// SelfRatedLevel returns the value of the "self_rated_level" field in the mutation.
func (m *LearnerSettingsMutation) SelfRatedLevel() (r string, exists bool) {
	v := m.self_rated_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSelfRatedLevel returns the old "self_rated_level" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldSelfRatedLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelfRatedLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelfRatedLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelfRatedLevel: %w", err)
	}
	return oldValue.SelfRatedLevel, nil
}

// ResetSelfRatedLevel resets all changes to the "self_rated_level" field.
func (m *LearnerSettingsMutation) ResetSelfRatedLevel() {
	m.self_rated_level = nil
}

// SetLearnerName sets the "learner_name" field.
func (m *LearnerSettingsMutation) SetLearnerName(s string) {
	m.learner_name = &s
}

// LearnerName returns the value of the "learner_name" field in the mutation.
func (m *LearnerSettingsMutation) LearnerName() (r string, exists bool) {
	v := m.learner_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerName returns the old "learner_name" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldLearnerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerName: %w", err)
	}
	return oldValue.LearnerName, nil
}

// ResetLearnerName resets all changes to the "learner_name" field.
func (m *LearnerSettingsMutation) ResetLearnerName() {
	m.learner_name = nil
}

// SetLearnerBio sets the "learner_bio" field.
func (m *LearnerSettingsMutation) SetLearnerBio(s string) {
	m.learner_bio = &s
}

// LearnerBio returns the value of the "learner_bio" field in the mutation.
func (m *LearnerSettingsMutation) LearnerBio() (r string, exists bool) {
	v := m.learner_bio
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerBio returns the old "learner_bio" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldLearnerBio(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerBio: %w", err)
	}
	return oldValue.LearnerBio, nil
}

// ResetLearnerBio resets all changes to the "learner_bio" field.
func (m *LearnerSettingsMutation) ResetLearnerBio() {
	m.learner_bio = nil
}

// SetFocusArea sets the "focus_area" field.
func (m *LearnerSettingsMutation) SetFocusArea(s string) {
	m.focus_area = &s
}

// FocusArea returns the value of the "focus_area" field in the mutation.
func (m *LearnerSettingsMutation) FocusArea() (r string, exists bool) {
	v := m.focus_area
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusArea returns the old "focus_area" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldFocusArea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusArea: %w", err)
	}
	return oldValue.FocusArea, nil
}

// ResetFocusArea resets all changes to the "focus_area" field.
func (m *LearnerSettingsMutation) ResetFocusArea() {
	m.focus_area = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnerSettingsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnerSettingsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearnerSettings entity.
// If the LearnerSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerSettingsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnerSettingsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnerSettingsMutation builder.
func (m *LearnerSettingsMutation) Where(ps ...predicate.LearnerSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerSettings).
func (m *LearnerSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerSettingsMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.learner_id != nil {
		fields = append(fields, learnersettings.FieldLearnerID)
	}
	if m.native_language != nil {
		fields = append(fields, learnersettings.FieldNativeLanguage)
	}
	if m.target_language != nil {
		fields = append(fields, learnersettings.FieldTargetLanguage)
	}
	if m.daily_goal != nil {
		fields = append(fields, learnersettings.FieldDailyGoal)
	}
	if m.daily_minutes != nil {
		fields = append(fields, learnersettings.FieldDailyMinutes)
	}
	if m.weekly_goal_sessions != nil {
		fields = append(fields, learnersettings.FieldWeeklyGoalSessions)
	}
	if m.self_rated_level != nil {
		fields = append(fields, learnersettings.FieldSelfRatedLevel)
	}
	if m.learner_name != nil {
		fields = append(fields, learnersettings.FieldLearnerName)
	}
	if m.learner_bio != nil {
		fields = append(fields, learnersettings.FieldLearnerBio)
	}
	if m.focus_area != nil {
		fields = append(fields, learnersettings.FieldFocusArea)
	}
	if m.updated_at != nil {
		fields = append(fields, learnersettings.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnersettings.FieldLearnerID:
		return m.LearnerID()
	case learnersettings.FieldNativeLanguage:
		return m.NativeLanguage()
	case learnersettings.FieldTargetLanguage:
		return m.TargetLanguage()
	case learnersettings.FieldDailyGoal:
		return m.DailyGoal()
	case learnersettings.FieldDailyMinutes:
		return m.DailyMinutes()
	case learnersettings.FieldWeeklyGoalSessions:
		return m.WeeklyGoalSessions()
	case learnersettings.FieldSelfRatedLevel:
		return m.SelfRatedLevel()
	case learnersettings.FieldLearnerName:
		return m.LearnerName()
	case learnersettings.FieldLearnerBio:
		return m.LearnerBio()
	case learnersettings.FieldFocusArea:
		return m.FocusArea()
	case learnersettings.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnersettings.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learnersettings.FieldNativeLanguage:
		return m.OldNativeLanguage(ctx)
	case learnersettings.FieldTargetLanguage:
		return m.OldTargetLanguage(ctx)
	case learnersettings.FieldDailyGoal:
		return m.OldDailyGoal(ctx)
	case learnersettings.FieldDailyMinutes:
		return m.OldDailyMinutes(ctx)
	case learnersettings.FieldWeeklyGoalSessions:
		return m.OldWeeklyGoalSessions(ctx)
	case learnersettings.FieldSelfRatedLevel:
		return m.OldSelfRatedLevel(ctx)
	case learnersettings.FieldLearnerName:
		return m.OldLearnerName(ctx)
	case learnersettings.FieldLearnerBio:
		return m.OldLearnerBio(ctx)
	case learnersettings.FieldFocusArea:
		return m.OldFocusArea(ctx)
	case learnersettings.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnersettings.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learnersettings.FieldNativeLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNativeLanguage(v)
		return nil
	case learnersettings.FieldTargetLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLanguage(v)
		return nil
	case learnersettings.FieldDailyGoal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyGoal(v)
		return nil
	case learnersettings.FieldDailyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyMinutes(v)
		return nil
	case learnersettings.FieldWeeklyGoalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeklyGoalSessions(v)
		return nil
	case learnersettings.FieldSelfRatedLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelfRatedLevel(v)
		return nil
	case learnersettings.FieldLearnerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerName(v)
		return nil
	case learnersettings.FieldLearnerBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerBio(v)
		return nil
	case learnersettings.FieldFocusArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusArea(v)
		return nil
	case learnersettings.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerSettingsMutation) AddedFields() []string {
	var fields []string
	if m.adddaily_goal != nil {
		fields = append(fields, learnersettings.FieldDailyGoal)
	}
	if m.adddaily_minutes != nil {
		fields = append(fields, learnersettings.FieldDailyMinutes)
	}
	if m.addweekly_goal_sessions != nil {
		fields = append(fields, learnersettings.FieldWeeklyGoalSessions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerSettingsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnersettings.FieldDailyGoal:
		return m.AddedDailyGoal()
	case learnersettings.FieldDailyMinutes:
		return m.AddedDailyMinutes()
	case learnersettings.FieldWeeklyGoalSessions:
		return m.AddedWeeklyGoalSessions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnersettings.FieldDailyGoal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyGoal(v)
		return nil
	case learnersettings.FieldDailyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyMinutes(v)
		return nil
	case learnersettings.FieldWeeklyGoalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeeklyGoalSessions(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerSettingsMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerSettingsMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LearnerSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerSettingsMutation) ResetField(name string) error {
	switch name {
	case learnersettings.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learnersettings.FieldNativeLanguage:
		m.ResetNativeLanguage()
		return nil
	case learnersettings.FieldTargetLanguage:
		m.ResetTargetLanguage()
		return nil
	case learnersettings.FieldDailyGoal:
		m.ResetDailyGoal()
		return nil
	case learnersettings.FieldDailyMinutes:
		m.ResetDailyMinutes()
		return nil
	case learnersettings.FieldWeeklyGoalSessions:
		m.ResetWeeklyGoalSessions()
		return nil
	case learnersettings.FieldSelfRatedLevel:
		m.ResetSelfRatedLevel()
		return nil
	case learnersettings.FieldLearnerName:
		m.ResetLearnerName()
		return nil
	case learnersettings.FieldLearnerBio:
		m.ResetLearnerBio()
		return nil
	case learnersettings.FieldFocusArea:
		m.ResetFocusArea()
		return nil
	case learnersettings.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerSettingsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerSettingsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerSettingsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerSettingsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerSettings edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	timestamp           *time.Time
	learner_id          *string
	language            *string
	category            *string
	session_id          *string
	difficulty_level    *string
	score               *int
	addscore            *int
	max_score           *int
	addmax_score        *int
	mistakes            *int
	addmistakes         *int
	hints_used          *int
	addhints_used       *int
	revealed_answers    *int
	addrevealed_answers *int
	accuracy            *float64
	addaccuracy         *float64
	xp_gained           *int
	addxp_gained        *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SessionEvent, error)
	predicates          []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *SessionEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *SessionEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *SessionEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLanguage sets the "language" field.
func (m *SessionEventMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SessionEventMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *SessionEventMutation) ResetLanguage() {
	m.language = nil
}

// SetCategory sets the "category" field.
func (m *SessionEventMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *SessionEventMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *SessionEventMutation) ResetCategory() {
	m.category = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *SessionEventMutation) SetDifficultyLevel(s string) {
	m.difficulty_level = &s
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *SessionEventMutation) DifficultyLevel() (r string, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDifficultyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *SessionEventMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
}

// SetScore sets the "score" field.
func (m *SessionEventMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SessionEventMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *SessionEventMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SessionEventMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SessionEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetMaxScore sets the "max_score" field.
func (m *SessionEventMutation) SetMaxScore(i int) {
	m.max_score = &i
	m.addmax_score = nil
}

// MaxScore returns the value of the "max_score" field in the mutation.
func (m *SessionEventMutation) MaxScore() (r int, exists bool) {
	v := m.max_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxScore returns the old "max_score" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldMaxScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxScore: %w", err)
	}
	return oldValue.MaxScore, nil
}

// AddMaxScore adds i to the "max_score" field.
func (m *SessionEventMutation) AddMaxScore(i int) {
	if m.addmax_score != nil {
		*m.addmax_score += i
	} else {
		m.addmax_score = &i
	}
}

// AddedMaxScore returns the value that was added to the "max_score" field in this mutation.
func (m *SessionEventMutation) AddedMaxScore() (r int, exists bool) {
	v := m.addmax_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxScore resets all changes to the "max_score" field.
func (m *SessionEventMutation) ResetMaxScore() {
	m.max_score = nil
	m.addmax_score = nil
}

// SetMistakes sets the "mistakes" field.
func (m *SessionEventMutation) SetMistakes(i int) {
	m.mistakes = &i
	m.addmistakes = nil
}

// Mistakes returns the value of the "mistakes" field in the mutation.
func (m *SessionEventMutation) Mistakes() (r int, exists bool) {
	v := m.mistakes
	if v == nil {
		return
	}
	return *v, true
}

// OldMistakes returns the old "mistakes" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldMistakes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMistakes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMistakes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMistakes: %w", err)
	}
	return oldValue.Mistakes, nil
}

// AddMistakes adds i to the "mistakes" field.
func (m *SessionEventMutation) AddMistakes(i int) {
	if m.addmistakes != nil {
		*m.addmistakes += i
	} else {
		m.addmistakes = &i
	}
}

// AddedMistakes returns the value that was added to the "mistakes" field in this mutation.
func (m *SessionEventMutation) AddedMistakes() (r int, exists bool) {
	v := m.addmistakes
	if v == nil {
		return
	}
	return *v, true
}

// ResetMistakes resets all changes to the "mistakes" field.
func (m *SessionEventMutation) ResetMistakes() {
	m.mistakes = nil
	m.addmistakes = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *SessionEventMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *SessionEventMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *SessionEventMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *SessionEventMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *SessionEventMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetRevealedAnswers sets the "revealed_answers" field.
func (m *SessionEventMutation) SetRevealedAnswers(i int) {
	m.revealed_answers = &i
	m.addrevealed_answers = nil
}

// RevealedAnswers returns the value of the "revealed_answers" field in the mutation.
func (m *SessionEventMutation) RevealedAnswers() (r int, exists bool) {
	v := m.revealed_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldRevealedAnswers returns the old "revealed_answers" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldRevealedAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevealedAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevealedAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevealedAnswers: %w", err)
	}
	return oldValue.RevealedAnswers, nil
}

// AddRevealedAnswers adds i to the "revealed_answers" field.
func (m *SessionEventMutation) AddRevealedAnswers(i int) {
	if m.addrevealed_answers != nil {
		*m.addrevealed_answers += i
	} else {
		m.addrevealed_answers = &i
	}
}

// AddedRevealedAnswers returns the value that was added to the "revealed_answers" field in this mutation.
func (m *SessionEventMutation) AddedRevealedAnswers() (r int, exists bool) {
	v := m.addrevealed_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevealedAnswers resets all changes to the "revealed_answers" field.
func (m *SessionEventMutation) ResetRevealedAnswers() {
	m.revealed_answers = nil
	m.addrevealed_answers = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *SessionEventMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *SessionEventMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *SessionEventMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *SessionEventMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *SessionEventMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetXpGained sets the "xp_gained" field.
func (m *SessionEventMutation) SetXpGained(i int) {
	m.xp_gained = &i
	m.addxp_gained = nil
}

// XpGained returns the value of the "xp_gained" field in the mutation.
func (m *SessionEventMutation) XpGained() (r int, exists bool) {
	v := m.xp_gained
	if v == nil {
		return
	}
	return *v, true
}

// OldXpGained returns the old "xp_gained" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldXpGained(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpGained is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpGained requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpGained: %w", err)
	}
	return oldValue.XpGained, nil
}

// AddXpGained adds i to the "xp_gained" field.
func (m *SessionEventMutation) AddXpGained(i int) {
	if m.addxp_gained != nil {
		*m.addxp_gained += i
	} else {
		m.addxp_gained = &i
	}
}

// AddedXpGained returns the value that was added to the "xp_gained" field in this mutation.
func (m *SessionEventMutation) AddedXpGained() (r int, exists bool) {
	v := m.addxp_gained
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpGained resets all changes to the "xp_gained" field.
func (m *SessionEventMutation) ResetXpGained() {
	m.xp_gained = nil
	m.addxp_gained = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.learner_id != nil {
		fields = append(fields, sessionevent.FieldLearnerID)
	}
	if m.language != nil {
		fields = append(fields, sessionevent.FieldLanguage)
	}
	if m.category != nil {
		fields = append(fields, sessionevent.FieldCategory)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.difficulty_level != nil {
		fields = append(fields, sessionevent.FieldDifficultyLevel)
	}
	if m.score != nil {
		fields = append(fields, sessionevent.FieldScore)
	}
	if m.max_score != nil {
		fields = append(fields, sessionevent.FieldMaxScore)
	}
	if m.mistakes != nil {
		fields = append(fields, sessionevent.FieldMistakes)
	}
	if m.hints_used != nil {
		fields = append(fields, sessionevent.FieldHintsUsed)
	}
	if m.revealed_answers != nil {
		fields = append(fields, sessionevent.FieldRevealedAnswers)
	}
	if m.accuracy != nil {
		fields = append(fields, sessionevent.FieldAccuracy)
	}
	if m.xp_gained != nil {
		fields = append(fields, sessionevent.FieldXpGained)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldLearnerID:
		return m.LearnerID()
	case sessionevent.FieldLanguage:
		return m.Language()
	case sessionevent.FieldCategory:
		return m.Category()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case sessionevent.FieldScore:
		return m.Score()
	case sessionevent.FieldMaxScore:
		return m.MaxScore()
	case sessionevent.FieldMistakes:
		return m.Mistakes()
	case sessionevent.FieldHintsUsed:
		return m.HintsUsed()
	case sessionevent.FieldRevealedAnswers:
		return m.RevealedAnswers()
	case sessionevent.FieldAccuracy:
		return m.Accuracy()
	case sessionevent.FieldXpGained:
		return m.XpGained()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case sessionevent.FieldLanguage:
		return m.OldLanguage(ctx)
	case sessionevent.FieldCategory:
		return m.OldCategory(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case sessionevent.FieldScore:
		return m.OldScore(ctx)
	case sessionevent.FieldMaxScore:
		return m.OldMaxScore(ctx)
	case sessionevent.FieldMistakes:
		return m.OldMistakes(ctx)
	case sessionevent.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case sessionevent.FieldRevealedAnswers:
		return m.OldRevealedAnswers(ctx)
	case sessionevent.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case sessionevent.FieldXpGained:
		return m.OldXpGained(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case sessionevent.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case sessionevent.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldDifficultyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case sessionevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case sessionevent.FieldMaxScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxScore(v)
		return nil
	case sessionevent.FieldMistakes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMistakes(v)
		return nil
	case sessionevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case sessionevent.FieldRevealedAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevealedAnswers(v)
		return nil
	case sessionevent.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case sessionevent.FieldXpGained:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpGained(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, sessionevent.FieldScore)
	}
	if m.addmax_score != nil {
		fields = append(fields, sessionevent.FieldMaxScore)
	}
	if m.addmistakes != nil {
		fields = append(fields, sessionevent.FieldMistakes)
	}
	if m.addhints_used != nil {
		fields = append(fields, sessionevent.FieldHintsUsed)
	}
	if m.addrevealed_answers != nil {
		fields = append(fields, sessionevent.FieldRevealedAnswers)
	}
	if m.addaccuracy != nil {
		fields = append(fields, sessionevent.FieldAccuracy)
	}
	if m.addxp_gained != nil {
		fields = append(fields, sessionevent.FieldXpGained)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldScore:
		return m.AddedScore()
	case sessionevent.FieldMaxScore:
		return m.AddedMaxScore()
	case sessionevent.FieldMistakes:
		return m.AddedMistakes()
	case sessionevent.FieldHintsUsed:
		return m.AddedHintsUsed()
	case sessionevent.FieldRevealedAnswers:
		return m.AddedRevealedAnswers()
	case sessionevent.FieldAccuracy:
		return m.AddedAccuracy()
	case sessionevent.FieldXpGained:
		return m.AddedXpGained()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case sessionevent.FieldMaxScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxScore(v)
		return nil
	case sessionevent.FieldMistakes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMistakes(v)
		return nil
	case sessionevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	case sessionevent.FieldRevealedAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevealedAnswers(v)
		return nil
	case sessionevent.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case sessionevent.FieldXpGained:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpGained(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case sessionevent.FieldLanguage:
		m.ResetLanguage()
		return nil
	case sessionevent.FieldCategory:
		m.ResetCategory()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case sessionevent.FieldScore:
		m.ResetScore()
		return nil
	case sessionevent.FieldMaxScore:
		m.ResetMaxScore()
		return nil
	case sessionevent.FieldMistakes:
		m.ResetMistakes()
		return nil
	case sessionevent.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case sessionevent.FieldRevealedAnswers:
		m.ResetRevealedAnswers()
		return nil
	case sessionevent.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case sessionevent.FieldXpGained:
		m.ResetXpGained()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
