// Code generated by ent, DO NOT EDIT.

package itemprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLearnerID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLanguage, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldCategory, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldItemID, v))
}

// Objective applies equality check predicate on the "objective" field. It's identical to ObjectiveEQ.
func Objective(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldObjective, v))
}

// Ease applies equality check predicate on the "ease" field. It's identical to EaseEQ.
func Ease(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldEase, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldStreak, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldAttempts, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldCorrect, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldErrorCount, v))
}

// LastErrorType applies equality check predicate on the "last_error_type" field. It's identical to LastErrorTypeEQ.
func LastErrorType(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLastErrorType, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLastSeen, v))
}

// NextDue applies equality check predicate on the "next_due" field. It's identical to NextDueEQ.
func NextDue(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldNextDue, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldLanguage, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldCategory, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldItemID, v))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldObjective, vs...))
}

// ObjectiveGT applies the GT predicate on the "objective" field.
func ObjectiveGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldObjective, v))
}

// ObjectiveGTE applies the GTE predicate on the "objective" field.
func ObjectiveGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldObjective, v))
}

// ObjectiveLT applies the LT predicate on the "objective" field.
func ObjectiveLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldObjective, v))
}

// ObjectiveLTE applies the LTE predicate on the "objective" field.
func ObjectiveLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldObjective, v))
}

// ObjectiveContains applies the Contains predicate on the "objective" field.
func ObjectiveContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldObjective, v))
}

// ObjectiveHasPrefix applies the HasPrefix predicate on the "objective" field.
func ObjectiveHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldObjective, v))
}

// ObjectiveHasSuffix applies the HasSuffix predicate on the "objective" field.
func ObjectiveHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldObjective, v))
}

// ObjectiveEqualFold applies the EqualFold predicate on the "objective" field.
func ObjectiveEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldObjective, v))
}

// ObjectiveContainsFold applies the ContainsFold predicate on the "objective" field.
func ObjectiveContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldObjective, v))
}

// EaseEQ applies the EQ predicate on the "ease" field.
func EaseEQ(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldEase, v))
}

// EaseNEQ applies the NEQ predicate on the "ease" field.
func EaseNEQ(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldEase, v))
}

// EaseIn applies the In predicate on the "ease" field.
func EaseIn(vs ...float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldEase, vs...))
}

// EaseNotIn applies the NotIn predicate on the "ease" field.
func EaseNotIn(vs ...float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldEase, vs...))
}

// EaseGT applies the GT predicate on the "ease" field.
func EaseGT(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldEase, v))
}

// EaseGTE applies the GTE predicate on the "ease" field.
func EaseGTE(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldEase, v))
}

// EaseLT applies the LT predicate on the "ease" field.
func EaseLT(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldEase, v))
}

// EaseLTE applies the LTE predicate on the "ease" field.
func EaseLTE(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldEase, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldStreak, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldAttempts, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldCorrect, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldErrorCount, v))
}

// LastErrorTypeEQ applies the EQ predicate on the "last_error_type" field.
func LastErrorTypeEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLastErrorType, v))
}

// LastErrorTypeNEQ applies the NEQ predicate on the "last_error_type" field.
func LastErrorTypeNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldLastErrorType, v))
}

// LastErrorTypeIn applies the In predicate on the "last_error_type" field.
func LastErrorTypeIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldLastErrorType, vs...))
}

// LastErrorTypeNotIn applies the NotIn predicate on the "last_error_type" field.
func LastErrorTypeNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldLastErrorType, vs...))
}

// LastErrorTypeGT applies the GT predicate on the "last_error_type" field.
func LastErrorTypeGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldLastErrorType, v))
}

// LastErrorTypeGTE applies the GTE predicate on the "last_error_type" field.
func LastErrorTypeGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldLastErrorType, v))
}

// LastErrorTypeLT applies the LT predicate on the "last_error_type" field.
func LastErrorTypeLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldLastErrorType, v))
}

// LastErrorTypeLTE applies the LTE predicate on the "last_error_type" field.
func LastErrorTypeLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldLastErrorType, v))
}

// LastErrorTypeContains applies the Contains predicate on the "last_error_type" field.
func LastErrorTypeContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldLastErrorType, v))
}

// LastErrorTypeHasPrefix applies the HasPrefix predicate on the "last_error_type" field.
func LastErrorTypeHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldLastErrorType, v))
}

// LastErrorTypeHasSuffix applies the HasSuffix predicate on the "last_error_type" field.
func LastErrorTypeHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldLastErrorType, v))
}

// LastErrorTypeEqualFold applies the EqualFold predicate on the "last_error_type" field.
func LastErrorTypeEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldLastErrorType, v))
}

// LastErrorTypeContainsFold applies the ContainsFold predicate on the "last_error_type" field.
func LastErrorTypeContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldLastErrorType, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldLastSeen, v))
}

// LastSeenIsNil applies the IsNil predicate on the "last_seen" field.
func LastSeenIsNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIsNull(FieldLastSeen))
}

// LastSeenNotNil applies the NotNil predicate on the "last_seen" field.
func LastSeenNotNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotNull(FieldLastSeen))
}

// NextDueEQ applies the EQ predicate on the "next_due" field.
func NextDueEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldNextDue, v))
}

// NextDueNEQ applies the NEQ predicate on the "next_due" field.
func NextDueNEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldNextDue, v))
}

// NextDueIn applies the In predicate on the "next_due" field.
func NextDueIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldNextDue, vs...))
}

// NextDueNotIn applies the NotIn predicate on the "next_due" field.
func NextDueNotIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldNextDue, vs...))
}

// NextDueGT applies the GT predicate on the "next_due" field.
func NextDueGT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldNextDue, v))
}

// NextDueGTE applies the GTE predicate on the "next_due" field.
func NextDueGTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldNextDue, v))
}

// NextDueLT applies the LT predicate on the "next_due" field.
func NextDueLT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldNextDue, v))
}

// NextDueLTE applies the LTE predicate on the "next_due" field.
func NextDueLTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldNextDue, v))
}

// NextDueIsNil applies the IsNil predicate on the "next_due" field.
func NextDueIsNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIsNull(FieldNextDue))
}

// NextDueNotNil applies the NotNil predicate on the "next_due" field.
func NextDueNotNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotNull(FieldNextDue))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemProgress) predicate.ItemProgress {
	return predicate.ItemProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemProgress) predicate.ItemProgress {
	return predicate.ItemProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemProgress) predicate.ItemProgress {
	return predicate.ItemProgress(sql.NotPredicates(p))
}
