// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActiveSession is the predicate function for activesession builders.
type ActiveSession func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// CategoryProgress is the predicate function for categoryprogress builders.
type CategoryProgress func(*sql.Selector)

// DailyXP is the predicate function for dailyxp builders.
type DailyXP func(*sql.Selector)

// ItemProgress is the predicate function for itemprogress builders.
type ItemProgress func(*sql.Selector)

// LearnerProgress is the predicate function for learnerprogress builders.
type LearnerProgress func(*sql.Selector)

// LearnerSettings is the predicate function for learnersettings builders.
type LearnerSettings func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
