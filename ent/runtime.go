// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lingoflow/ent/activesession"
	"github.com/abhisek/lingoflow/ent/attemptevent"
	"github.com/abhisek/lingoflow/ent/categoryprogress"
	"github.com/abhisek/lingoflow/ent/dailyxp"
	"github.com/abhisek/lingoflow/ent/itemprogress"
	"github.com/abhisek/lingoflow/ent/learnerprogress"
	"github.com/abhisek/lingoflow/ent/learnersettings"
	"github.com/abhisek/lingoflow/ent/schema"
	"github.com/abhisek/lingoflow/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activesessionFields := schema.ActiveSession{}.Fields()
	_ = activesessionFields
	// activesessionDescSessionID is the schema descriptor for session_id field.
	activesessionDescSessionID := activesessionFields[0].Descriptor()
	// activesession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	activesession.SessionIDValidator = activesessionDescSessionID.Validators[0].(func(string) error)
	// activesessionDescLearnerID is the schema descriptor for learner_id field.
	activesessionDescLearnerID := activesessionFields[1].Descriptor()
	// activesession.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	activesession.LearnerIDValidator = activesessionDescLearnerID.Validators[0].(func(string) error)
	// activesessionDescLanguage is the schema descriptor for language field.
	activesessionDescLanguage := activesessionFields[2].Descriptor()
	// activesession.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	activesession.LanguageValidator = activesessionDescLanguage.Validators[0].(func(string) error)
	// activesessionDescCategory is the schema descriptor for category field.
	activesessionDescCategory := activesessionFields[3].Descriptor()
	// activesession.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	activesession.CategoryValidator = activesessionDescCategory.Validators[0].(func(string) error)
	// activesessionDescCompleted is the schema descriptor for completed field.
	activesessionDescCompleted := activesessionFields[8].Descriptor()
	// activesession.DefaultCompleted holds the default value on creation for the completed field.
	activesession.DefaultCompleted = activesessionDescCompleted.Default.(bool)
	// activesessionDescCreatedAt is the schema descriptor for created_at field.
	activesessionDescCreatedAt := activesessionFields[9].Descriptor()
	// activesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	activesession.DefaultCreatedAt = activesessionDescCreatedAt.Default.(func() time.Time)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[0].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventMixinFields0[1].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescLanguage is the schema descriptor for language field.
	attempteventDescLanguage := attempteventMixinFields0[2].Descriptor()
	// attemptevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	attemptevent.LanguageValidator = attempteventDescLanguage.Validators[0].(func(string) error)
	// attempteventDescCategory is the schema descriptor for category field.
	attempteventDescCategory := attempteventMixinFields0[3].Descriptor()
	// attemptevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	attemptevent.CategoryValidator = attempteventDescCategory.Validators[0].(func(string) error)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[1].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescObjective is the schema descriptor for objective field.
	attempteventDescObjective := attempteventFields[2].Descriptor()
	// attemptevent.DefaultObjective holds the default value on creation for the objective field.
	attemptevent.DefaultObjective = attempteventDescObjective.Default.(string)
	// attempteventDescQuestionType is the schema descriptor for question_type field.
	attempteventDescQuestionType := attempteventFields[3].Descriptor()
	// attemptevent.DefaultQuestionType holds the default value on creation for the question_type field.
	attemptevent.DefaultQuestionType = attempteventDescQuestionType.Default.(string)
	// attempteventDescErrorType is the schema descriptor for error_type field.
	attempteventDescErrorType := attempteventFields[5].Descriptor()
	// attemptevent.DefaultErrorType holds the default value on creation for the error_type field.
	attemptevent.DefaultErrorType = attempteventDescErrorType.Default.(string)
	categoryprogressFields := schema.CategoryProgress{}.Fields()
	_ = categoryprogressFields
	// categoryprogressDescLearnerID is the schema descriptor for learner_id field.
	categoryprogressDescLearnerID := categoryprogressFields[0].Descriptor()
	// categoryprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	categoryprogress.LearnerIDValidator = categoryprogressDescLearnerID.Validators[0].(func(string) error)
	// categoryprogressDescLanguage is the schema descriptor for language field.
	categoryprogressDescLanguage := categoryprogressFields[1].Descriptor()
	// categoryprogress.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	categoryprogress.LanguageValidator = categoryprogressDescLanguage.Validators[0].(func(string) error)
	// categoryprogressDescCategory is the schema descriptor for category field.
	categoryprogressDescCategory := categoryprogressFields[2].Descriptor()
	// categoryprogress.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	categoryprogress.CategoryValidator = categoryprogressDescCategory.Validators[0].(func(string) error)
	// categoryprogressDescMastery is the schema descriptor for mastery field.
	categoryprogressDescMastery := categoryprogressFields[3].Descriptor()
	// categoryprogress.DefaultMastery holds the default value on creation for the mastery field.
	categoryprogress.DefaultMastery = categoryprogressDescMastery.Default.(float64)
	// categoryprogressDescAttempts is the schema descriptor for attempts field.
	categoryprogressDescAttempts := categoryprogressFields[4].Descriptor()
	// categoryprogress.DefaultAttempts holds the default value on creation for the attempts field.
	categoryprogress.DefaultAttempts = categoryprogressDescAttempts.Default.(int)
	// categoryprogressDescTotalAnswers is the schema descriptor for total_answers field.
	categoryprogressDescTotalAnswers := categoryprogressFields[5].Descriptor()
	// categoryprogress.DefaultTotalAnswers holds the default value on creation for the total_answers field.
	categoryprogress.DefaultTotalAnswers = categoryprogressDescTotalAnswers.Default.(int)
	// categoryprogressDescCorrectAnswers is the schema descriptor for correct_answers field.
	categoryprogressDescCorrectAnswers := categoryprogressFields[6].Descriptor()
	// categoryprogress.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	categoryprogress.DefaultCorrectAnswers = categoryprogressDescCorrectAnswers.Default.(int)
	// categoryprogressDescLevelUnlocked is the schema descriptor for level_unlocked field.
	categoryprogressDescLevelUnlocked := categoryprogressFields[7].Descriptor()
	// categoryprogress.DefaultLevelUnlocked holds the default value on creation for the level_unlocked field.
	categoryprogress.DefaultLevelUnlocked = categoryprogressDescLevelUnlocked.Default.(string)
	dailyxpFields := schema.DailyXP{}.Fields()
	_ = dailyxpFields
	// dailyxpDescLearnerID is the schema descriptor for learner_id field.
	dailyxpDescLearnerID := dailyxpFields[0].Descriptor()
	// dailyxp.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	dailyxp.LearnerIDValidator = dailyxpDescLearnerID.Validators[0].(func(string) error)
	// dailyxpDescLanguage is the schema descriptor for language field.
	dailyxpDescLanguage := dailyxpFields[1].Descriptor()
	// dailyxp.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	dailyxp.LanguageValidator = dailyxpDescLanguage.Validators[0].(func(string) error)
	// dailyxpDescXp is the schema descriptor for xp field.
	dailyxpDescXp := dailyxpFields[3].Descriptor()
	// dailyxp.DefaultXp holds the default value on creation for the xp field.
	dailyxp.DefaultXp = dailyxpDescXp.Default.(int)
	// dailyxp.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	dailyxp.XpValidator = dailyxpDescXp.Validators[0].(func(int) error)
	itemprogressFields := schema.ItemProgress{}.Fields()
	_ = itemprogressFields
	// itemprogressDescLearnerID is the schema descriptor for learner_id field.
	itemprogressDescLearnerID := itemprogressFields[0].Descriptor()
	// itemprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	itemprogress.LearnerIDValidator = itemprogressDescLearnerID.Validators[0].(func(string) error)
	// itemprogressDescLanguage is the schema descriptor for language field.
	itemprogressDescLanguage := itemprogressFields[1].Descriptor()
	// itemprogress.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	itemprogress.LanguageValidator = itemprogressDescLanguage.Validators[0].(func(string) error)
	// itemprogressDescCategory is the schema descriptor for category field.
	itemprogressDescCategory := itemprogressFields[2].Descriptor()
	// itemprogress.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	itemprogress.CategoryValidator = itemprogressDescCategory.Validators[0].(func(string) error)
	// itemprogressDescItemID is the schema descriptor for item_id field.
	itemprogressDescItemID := itemprogressFields[3].Descriptor()
	// itemprogress.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	itemprogress.ItemIDValidator = itemprogressDescItemID.Validators[0].(func(string) error)
	// itemprogressDescObjective is the schema descriptor for objective field.
	itemprogressDescObjective := itemprogressFields[4].Descriptor()
	// itemprogress.DefaultObjective holds the default value on creation for the objective field.
	itemprogress.DefaultObjective = itemprogressDescObjective.Default.(string)
	// itemprogressDescEase is the schema descriptor for ease field.
	itemprogressDescEase := itemprogressFields[5].Descriptor()
	// itemprogress.DefaultEase holds the default value on creation for the ease field.
	itemprogress.DefaultEase = itemprogressDescEase.Default.(float64)
	// itemprogressDescStreak is the schema descriptor for streak field.
	itemprogressDescStreak := itemprogressFields[6].Descriptor()
	// itemprogress.DefaultStreak holds the default value on creation for the streak field.
	itemprogress.DefaultStreak = itemprogressDescStreak.Default.(int)
	// itemprogressDescAttempts is the schema descriptor for attempts field.
	itemprogressDescAttempts := itemprogressFields[7].Descriptor()
	// itemprogress.DefaultAttempts holds the default value on creation for the attempts field.
	itemprogress.DefaultAttempts = itemprogressDescAttempts.Default.(int)
	// itemprogressDescCorrect is the schema descriptor for correct field.
	itemprogressDescCorrect := itemprogressFields[8].Descriptor()
	// itemprogress.DefaultCorrect holds the default value on creation for the correct field.
	itemprogress.DefaultCorrect = itemprogressDescCorrect.Default.(int)
	// itemprogressDescErrorCount is the schema descriptor for error_count field.
	itemprogressDescErrorCount := itemprogressFields[9].Descriptor()
	// itemprogress.DefaultErrorCount holds the default value on creation for the error_count field.
	itemprogress.DefaultErrorCount = itemprogressDescErrorCount.Default.(int)
	// itemprogressDescLastErrorType is the schema descriptor for last_error_type field.
	itemprogressDescLastErrorType := itemprogressFields[10].Descriptor()
	// itemprogress.DefaultLastErrorType holds the default value on creation for the last_error_type field.
	itemprogress.DefaultLastErrorType = itemprogressDescLastErrorType.Default.(string)
	learnerprogressFields := schema.LearnerProgress{}.Fields()
	_ = learnerprogressFields
	// learnerprogressDescLearnerID is the schema descriptor for learner_id field.
	learnerprogressDescLearnerID := learnerprogressFields[0].Descriptor()
	// learnerprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learnerprogress.LearnerIDValidator = learnerprogressDescLearnerID.Validators[0].(func(string) error)
	// learnerprogressDescTotalXp is the schema descriptor for total_xp field.
	learnerprogressDescTotalXp := learnerprogressFields[1].Descriptor()
	// learnerprogress.DefaultTotalXp holds the default value on creation for the total_xp field.
	learnerprogress.DefaultTotalXp = learnerprogressDescTotalXp.Default.(int)
	// learnerprogressDescStreakDays is the schema descriptor for streak_days field.
	learnerprogressDescStreakDays := learnerprogressFields[2].Descriptor()
	// learnerprogress.DefaultStreakDays holds the default value on creation for the streak_days field.
	learnerprogress.DefaultStreakDays = learnerprogressDescStreakDays.Default.(int)
	// learnerprogressDescHearts is the schema descriptor for hearts field.
	learnerprogressDescHearts := learnerprogressFields[3].Descriptor()
	// learnerprogress.DefaultHearts holds the default value on creation for the hearts field.
	learnerprogress.DefaultHearts = learnerprogressDescHearts.Default.(int)
	// learnerprogressDescLearnerLevel is the schema descriptor for learner_level field.
	learnerprogressDescLearnerLevel := learnerprogressFields[4].Descriptor()
	// learnerprogress.DefaultLearnerLevel holds the default value on creation for the learner_level field.
	learnerprogress.DefaultLearnerLevel = learnerprogressDescLearnerLevel.Default.(int)
	learnersettingsFields := schema.LearnerSettings{}.Fields()
	_ = learnersettingsFields
	// learnersettingsDescLearnerID is the schema descriptor for learner_id field.
	learnersettingsDescLearnerID := learnersettingsFields[0].Descriptor()
	// learnersettings.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learnersettings.LearnerIDValidator = learnersettingsDescLearnerID.Validators[0].(func(string) error)
	// learnersettingsDescNativeLanguage is the schema descriptor for native_language field.
	learnersettingsDescNativeLanguage := learnersettingsFields[1].Descriptor()
	// learnersettings.DefaultNativeLanguage holds the default value on creation for the native_language field.
	learnersettings.DefaultNativeLanguage = learnersettingsDescNativeLanguage.Default.(string)
	// learnersettingsDescTargetLanguage is the schema descriptor for target_language field.
	learnersettingsDescTargetLanguage := learnersettingsFields[2].Descriptor()
	// learnersettings.DefaultTargetLanguage holds the default value on creation for the target_language field.
	learnersettings.DefaultTargetLanguage = learnersettingsDescTargetLanguage.Default.(string)
	// learnersettingsDescDailyGoal is the schema descriptor for daily_goal field.
	learnersettingsDescDailyGoal := learnersettingsFields[3].Descriptor()
	// learnersettings.DefaultDailyGoal holds the default value on creation for the daily_goal field.
	learnersettings.DefaultDailyGoal = learnersettingsDescDailyGoal.Default.(int)
	// learnersettingsDescDailyMinutes is the schema descriptor for daily_minutes field.
	learnersettingsDescDailyMinutes := learnersettingsFields[4].Descriptor()
	// learnersettings.DefaultDailyMinutes holds the default value on creation for the daily_minutes field.
	learnersettings.DefaultDailyMinutes = learnersettingsDescDailyMinutes.Default.(int)
	// learnersettingsDescWeeklyGoalSessions is the schema descriptor for weekly_goal_sessions field.
	learnersettingsDescWeeklyGoalSessions := learnersettingsFields[5].Descriptor()
	// learnersettings.DefaultWeeklyGoalSessions holds the default value on creation for the weekly_goal_sessions field.
	learnersettings.DefaultWeeklyGoalSessions = learnersettingsDescWeeklyGoalSessions.Default.(int)
	// learnersettingsDescSelfRatedLevel is the schema descriptor for self_rated_level field.
	learnersettingsDescSelfRatedLevel := learnersettingsFields[6].Descriptor()
	// learnersettings.DefaultSelfRatedLevel holds the default value on creation for the self_rated_level field.
	learnersettings.DefaultSelfRatedLevel = learnersettingsDescSelfRatedLevel.Default.(string)
	// learnersettingsDescLearnerName is the schema descriptor for learner_name field.
	learnersettingsDescLearnerName := learnersettingsFields[7].Descriptor()
	// learnersettings.DefaultLearnerName holds the default value on creation for the learner_name field.
	learnersettings.DefaultLearnerName = learnersettingsDescLearnerName.Default.(string)
	// learnersettingsDescLearnerBio is the schema descriptor for learner_bio field.
	learnersettingsDescLearnerBio := learnersettingsFields[8].Descriptor()
	// learnersettings.DefaultLearnerBio holds the default value on creation for the learner_bio field.
	learnersettings.DefaultLearnerBio = learnersettingsDescLearnerBio.Default.(string)
	// learnersettingsDescFocusArea is the schema descriptor for focus_area field.
	learnersettingsDescFocusArea := learnersettingsFields[9].Descriptor()
	// learnersettings.DefaultFocusArea holds the default value on creation for the focus_area field.
	learnersettings.DefaultFocusArea = learnersettingsDescFocusArea.Default.(string)
	// learnersettingsDescUpdatedAt is the schema descriptor for updated_at field.
	learnersettingsDescUpdatedAt := learnersettingsFields[10].Descriptor()
	// learnersettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnersettings.DefaultUpdatedAt = learnersettingsDescUpdatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[0].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescLanguage is the schema descriptor for language field.
	sessioneventDescLanguage := sessioneventMixinFields0[2].Descriptor()
	// sessionevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	sessionevent.LanguageValidator = sessioneventDescLanguage.Validators[0].(func(string) error)
	// sessioneventDescCategory is the schema descriptor for category field.
	sessioneventDescCategory := sessioneventMixinFields0[3].Descriptor()
	// sessionevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	sessionevent.CategoryValidator = sessioneventDescCategory.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescDifficultyLevel is the schema descriptor for difficulty_level field.
	sessioneventDescDifficultyLevel := sessioneventFields[1].Descriptor()
	// sessionevent.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	sessionevent.DefaultDifficultyLevel = sessioneventDescDifficultyLevel.Default.(string)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescMaxScore is the schema descriptor for max_score field.
	sessioneventDescMaxScore := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultMaxScore holds the default value on creation for the max_score field.
	sessionevent.DefaultMaxScore = sessioneventDescMaxScore.Default.(int)
	// sessioneventDescMistakes is the schema descriptor for mistakes field.
	sessioneventDescMistakes := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultMistakes holds the default value on creation for the mistakes field.
	sessionevent.DefaultMistakes = sessioneventDescMistakes.Default.(int)
	// sessioneventDescHintsUsed is the schema descriptor for hints_used field.
	sessioneventDescHintsUsed := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	sessionevent.DefaultHintsUsed = sessioneventDescHintsUsed.Default.(int)
	// sessioneventDescRevealedAnswers is the schema descriptor for revealed_answers field.
	sessioneventDescRevealedAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultRevealedAnswers holds the default value on creation for the revealed_answers field.
	sessionevent.DefaultRevealedAnswers = sessioneventDescRevealedAnswers.Default.(int)
	// sessioneventDescAccuracy is the schema descriptor for accuracy field.
	sessioneventDescAccuracy := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	sessionevent.DefaultAccuracy = sessioneventDescAccuracy.Default.(float64)
	// sessioneventDescXpGained is the schema descriptor for xp_gained field.
	sessioneventDescXpGained := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultXpGained holds the default value on creation for the xp_gained field.
	sessionevent.DefaultXpGained = sessioneventDescXpGained.Default.(int)
}
