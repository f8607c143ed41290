// Code generated by ent, DO NOT EDIT.

package dailyxp

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldLearnerID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldLanguage, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldDay, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldXp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldContainsFold(FieldLearnerID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldContainsFold(FieldLanguage, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v time.Time) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLTE(FieldDay, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.DailyXP {
	return predicate.DailyXP(sql.FieldLTE(FieldXp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyXP) predicate.DailyXP {
	return predicate.DailyXP(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyXP) predicate.DailyXP {
	return predicate.DailyXP(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyXP) predicate.DailyXP {
	return predicate.DailyXP(sql.NotPredicates(p))
}
