// Code generated by ent, DO NOT EDIT.

package learnerprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldLearnerID, v))
}

// TotalXp applies equality check predicate on the "total_xp" field. It's identical to TotalXpEQ.
func TotalXp(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldTotalXp, v))
}

// StreakDays applies equality check predicate on the "streak_days" field. It's identical to StreakDaysEQ.
func StreakDays(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldStreakDays, v))
}

// Hearts applies equality check predicate on the "hearts" field. It's identical to HeartsEQ.
func Hearts(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldHearts, v))
}

// LearnerLevel applies equality check predicate on the "learner_level" field. It's identical to LearnerLevelEQ.
func LearnerLevel(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldLearnerLevel, v))
}

// LastCompleted applies equality check predicate on the "last_completed" field. It's identical to LastCompletedEQ.
func LastCompleted(v time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldLastCompleted, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// TotalXpEQ applies the EQ predicate on the "total_xp" field.
func TotalXpEQ(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldTotalXp, v))
}

// TotalXpNEQ applies the NEQ predicate on the "total_xp" field.
func TotalXpNEQ(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNEQ(FieldTotalXp, v))
}

// TotalXpIn applies the In predicate on the "total_xp" field.
func TotalXpIn(vs ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldIn(FieldTotalXp, vs...))
}

// TotalXpNotIn applies the NotIn predicate on the "total_xp" field.
func TotalXpNotIn(vs ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNotIn(FieldTotalXp, vs...))
}

// TotalXpGT applies the GT predicate on the "total_xp" field.
func TotalXpGT(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGT(FieldTotalXp, v))
}

// TotalXpGTE applies the GTE predicate on the "total_xp" field.
func TotalXpGTE(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGTE(FieldTotalXp, v))
}

// TotalXpLT applies the LT predicate on the "total_xp" field.
func TotalXpLT(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLT(FieldTotalXp, v))
}

// TotalXpLTE applies the LTE predicate on the "total_xp" field.
func TotalXpLTE(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLTE(FieldTotalXp, v))
}

// StreakDaysEQ applies the EQ predicate on the "streak_days" field.
func StreakDaysEQ(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldStreakDays, v))
}

// StreakDaysNEQ applies the NEQ predicate on the "streak_days" field.
func StreakDaysNEQ(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNEQ(FieldStreakDays, v))
}

// StreakDaysIn applies the In predicate on the "streak_days" field.
func StreakDaysIn(vs ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldIn(FieldStreakDays, vs...))
}

// StreakDaysNotIn applies the NotIn predicate on the "streak_days" field.
func StreakDaysNotIn(vs ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNotIn(FieldStreakDays, vs...))
}

// StreakDaysGT applies the GT predicate on the "streak_days" field.
func StreakDaysGT(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGT(FieldStreakDays, v))
}

// StreakDaysGTE applies the GTE predicate on the "streak_days" field.
func StreakDaysGTE(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGTE(FieldStreakDays, v))
}

// StreakDaysLT applies the LT predicate on the "streak_days" field.
func StreakDaysLT(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLT(FieldStreakDays, v))
}

// StreakDaysLTE applies the LTE predicate on the "streak_days" field.
func StreakDaysLTE(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLTE(FieldStreakDays, v))
}

// HeartsEQ applies the EQ predicate on the "hearts" field.
func HeartsEQ(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldHearts, v))
}

// HeartsNEQ applies the NEQ predicate on the "hearts" field.
func HeartsNEQ(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNEQ(FieldHearts, v))
}

// HeartsIn applies the In predicate on the "hearts" field.
func HeartsIn(vs ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldIn(FieldHearts, vs...))
}

// HeartsNotIn applies the NotIn predicate on the "hearts" field.
func HeartsNotIn(vs ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNotIn(FieldHearts, vs...))
}

// HeartsGT applies the GT predicate on the "hearts" field.
func HeartsGT(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGT(FieldHearts, v))
}

// HeartsGTE applies the GTE predicate on the "hearts" field.
func HeartsGTE(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGTE(FieldHearts, v))
}

// HeartsLT applies the LT predicate on the "hearts" field.
func HeartsLT(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLT(FieldHearts, v))
}

// HeartsLTE applies the LTE predicate on the "hearts" field.
func HeartsLTE(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLTE(FieldHearts, v))
}

// LearnerLevelEQ applies the EQ predicate on the "learner_level" field.
func LearnerLevelEQ(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldLearnerLevel, v))
}

// LearnerLevelNEQ applies the NEQ predicate on the "learner_level" field.
func LearnerLevelNEQ(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNEQ(FieldLearnerLevel, v))
}

// LearnerLevelIn applies the In predicate on the "learner_level" field.
func LearnerLevelIn(vs ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldIn(FieldLearnerLevel, vs...))
}

// LearnerLevelNotIn applies the NotIn predicate on the "learner_level" field.
func LearnerLevelNotIn(vs ...int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNotIn(FieldLearnerLevel, vs...))
}

// LearnerLevelGT applies the GT predicate on the "learner_level" field.
func LearnerLevelGT(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGT(FieldLearnerLevel, v))
}

// LearnerLevelGTE applies the GTE predicate on the "learner_level" field.
func LearnerLevelGTE(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGTE(FieldLearnerLevel, v))
}

// LearnerLevelLT applies the LT predicate on the "learner_level" field.
func LearnerLevelLT(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLT(FieldLearnerLevel, v))
}

// LearnerLevelLTE applies the LTE predicate on the "learner_level" field.
func LearnerLevelLTE(v int) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLTE(FieldLearnerLevel, v))
}

// LastCompletedEQ applies the EQ predicate on the "last_completed" field.
func LastCompletedEQ(v time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldEQ(FieldLastCompleted, v))
}

// LastCompletedNEQ applies the NEQ predicate on the "last_completed" field.
func LastCompletedNEQ(v time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNEQ(FieldLastCompleted, v))
}

// LastCompletedIn applies the In predicate on the "last_completed" field.
func LastCompletedIn(vs ...time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldIn(FieldLastCompleted, vs...))
}

// LastCompletedNotIn applies the NotIn predicate on the "last_completed" field.
func LastCompletedNotIn(vs ...time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNotIn(FieldLastCompleted, vs...))
}

// LastCompletedGT applies the GT predicate on the "last_completed" field.
func LastCompletedGT(v time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGT(FieldLastCompleted, v))
}

// LastCompletedGTE applies the GTE predicate on the "last_completed" field.
func LastCompletedGTE(v time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldGTE(FieldLastCompleted, v))
}

// LastCompletedLT applies the LT predicate on the "last_completed" field.
func LastCompletedLT(v time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLT(FieldLastCompleted, v))
}

// LastCompletedLTE applies the LTE predicate on the "last_completed" field.
func LastCompletedLTE(v time.Time) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldLTE(FieldLastCompleted, v))
}

// LastCompletedIsNil applies the IsNil predicate on the "last_completed" field.
func LastCompletedIsNil() predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldIsNull(FieldLastCompleted))
}

// LastCompletedNotNil applies the NotNil predicate on the "last_completed" field.
func LastCompletedNotNil() predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.FieldNotNull(FieldLastCompleted))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerProgress) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerProgress) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerProgress) predicate.LearnerProgress {
	return predicate.LearnerProgress(sql.NotPredicates(p))
}
