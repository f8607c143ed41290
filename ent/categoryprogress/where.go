// Code generated by ent, DO NOT EDIT.

package categoryprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldLearnerID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldLanguage, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldCategory, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldMastery, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldAttempts, v))
}

// TotalAnswers applies equality check predicate on the "total_answers" field. It's identical to TotalAnswersEQ.
func TotalAnswers(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldTotalAnswers, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// LevelUnlocked applies equality check predicate on the "level_unlocked" field. It's identical to LevelUnlockedEQ.
func LevelUnlocked(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldLevelUnlocked, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContainsFold(FieldLanguage, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContainsFold(FieldCategory, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldMastery, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldAttempts, v))
}

// TotalAnswersEQ applies the EQ predicate on the "total_answers" field.
func TotalAnswersEQ(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldTotalAnswers, v))
}

// TotalAnswersNEQ applies the NEQ predicate on the "total_answers" field.
func TotalAnswersNEQ(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldTotalAnswers, v))
}

// TotalAnswersIn applies the In predicate on the "total_answers" field.
func TotalAnswersIn(vs ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldTotalAnswers, vs...))
}

// TotalAnswersNotIn applies the NotIn predicate on the "total_answers" field.
func TotalAnswersNotIn(vs ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldTotalAnswers, vs...))
}

// TotalAnswersGT applies the GT predicate on the "total_answers" field.
func TotalAnswersGT(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldTotalAnswers, v))
}

// TotalAnswersGTE applies the GTE predicate on the "total_answers" field.
func TotalAnswersGTE(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldTotalAnswers, v))
}

// TotalAnswersLT applies the LT predicate on the "total_answers" field.
func TotalAnswersLT(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldTotalAnswers, v))
}

// TotalAnswersLTE applies the LTE predicate on the "total_answers" field.
func TotalAnswersLTE(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldTotalAnswers, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldCorrectAnswers, v))
}

// LevelUnlockedEQ applies the EQ predicate on the "level_unlocked" field.
func LevelUnlockedEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldLevelUnlocked, v))
}

// LevelUnlockedNEQ applies the NEQ predicate on the "level_unlocked" field.
func LevelUnlockedNEQ(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldLevelUnlocked, v))
}

// LevelUnlockedIn applies the In predicate on the "level_unlocked" field.
func LevelUnlockedIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldLevelUnlocked, vs...))
}

// LevelUnlockedNotIn applies the NotIn predicate on the "level_unlocked" field.
func LevelUnlockedNotIn(vs ...string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldLevelUnlocked, vs...))
}

// LevelUnlockedGT applies the GT predicate on the "level_unlocked" field.
func LevelUnlockedGT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldLevelUnlocked, v))
}

// LevelUnlockedGTE applies the GTE predicate on the "level_unlocked" field.
func LevelUnlockedGTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldLevelUnlocked, v))
}

// LevelUnlockedLT applies the LT predicate on the "level_unlocked" field.
func LevelUnlockedLT(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldLevelUnlocked, v))
}

// LevelUnlockedLTE applies the LTE predicate on the "level_unlocked" field.
func LevelUnlockedLTE(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldLevelUnlocked, v))
}

// LevelUnlockedContains applies the Contains predicate on the "level_unlocked" field.
func LevelUnlockedContains(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContains(FieldLevelUnlocked, v))
}

// LevelUnlockedHasPrefix applies the HasPrefix predicate on the "level_unlocked" field.
func LevelUnlockedHasPrefix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasPrefix(FieldLevelUnlocked, v))
}

// LevelUnlockedHasSuffix applies the HasSuffix predicate on the "level_unlocked" field.
func LevelUnlockedHasSuffix(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldHasSuffix(FieldLevelUnlocked, v))
}

// LevelUnlockedEqualFold applies the EqualFold predicate on the "level_unlocked" field.
func LevelUnlockedEqualFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEqualFold(FieldLevelUnlocked, v))
}

// LevelUnlockedContainsFold applies the ContainsFold predicate on the "level_unlocked" field.
func LevelUnlockedContainsFold(v string) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldContainsFold(FieldLevelUnlocked, v))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldLTE(FieldLastPracticedAt, v))
}

// LastPracticedAtIsNil applies the IsNil predicate on the "last_practiced_at" field.
func LastPracticedAtIsNil() predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldIsNull(FieldLastPracticedAt))
}

// LastPracticedAtNotNil applies the NotNil predicate on the "last_practiced_at" field.
func LastPracticedAtNotNil() predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.FieldNotNull(FieldLastPracticedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryProgress) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryProgress) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryProgress) predicate.CategoryProgress {
	return predicate.CategoryProgress(sql.NotPredicates(p))
}
