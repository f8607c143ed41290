// Code generated by ent, DO NOT EDIT.

package activesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldLearnerID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldLanguage, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCategory, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldDifficultyLevel, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldPayload, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldQuestionCount, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldExpiresAt, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCompleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContainsFold(FieldLearnerID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContainsFold(FieldLanguage, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContainsFold(FieldCategory, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldDifficultyLevel, v))
}

// DifficultyLevelContains applies the Contains predicate on the "difficulty_level" field.
func DifficultyLevelContains(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContains(FieldDifficultyLevel, v))
}

// DifficultyLevelHasPrefix applies the HasPrefix predicate on the "difficulty_level" field.
func DifficultyLevelHasPrefix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasPrefix(FieldDifficultyLevel, v))
}

// DifficultyLevelHasSuffix applies the HasSuffix predicate on the "difficulty_level" field.
func DifficultyLevelHasSuffix(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldHasSuffix(FieldDifficultyLevel, v))
}

// DifficultyLevelEqualFold applies the EqualFold predicate on the "difficulty_level" field.
func DifficultyLevelEqualFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEqualFold(FieldDifficultyLevel, v))
}

// DifficultyLevelContainsFold applies the ContainsFold predicate on the "difficulty_level" field.
func DifficultyLevelContainsFold(v string) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldContainsFold(FieldDifficultyLevel, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldPayload, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldQuestionCount, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldExpiresAt, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldCompleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ActiveSession {
	return predicate.ActiveSession(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActiveSession) predicate.ActiveSession {
	return predicate.ActiveSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActiveSession) predicate.ActiveSession {
	return predicate.ActiveSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActiveSession) predicate.ActiveSession {
	return predicate.ActiveSession(sql.NotPredicates(p))
}
