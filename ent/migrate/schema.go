// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActiveSessionsColumns holds the columns for the "active_sessions" table.
	ActiveSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty_level", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ActiveSessionsTable holds the schema information for the "active_sessions" table.
	ActiveSessionsTable = &schema.Table{
		Name:       "active_sessions",
		Columns:    ActiveSessionsColumns,
		PrimaryKey: []*schema.Column{ActiveSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activesession_learner_id_completed",
				Unique:  false,
				Columns: []*schema.Column{ActiveSessionsColumns[2], ActiveSessionsColumns[9]},
			},
			{
				Name:    "activesession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ActiveSessionsColumns[8]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "objective", Type: field.TypeString, Default: ""},
		{Name: "question_type", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "error_type", Type: field.TypeString, Default: "none"},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_learner_id_language_category",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2], AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_learner_id_correct_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2], AttemptEventsColumns[9], AttemptEventsColumns[1]},
			},
		},
	}
	// CategoryProgressesColumns holds the columns for the "category_progresses" table.
	CategoryProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "total_answers", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "level_unlocked", Type: field.TypeString, Default: "a1"},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
	}
	// CategoryProgressesTable holds the schema information for the "category_progresses" table.
	CategoryProgressesTable = &schema.Table{
		Name:       "category_progresses",
		Columns:    CategoryProgressesColumns,
		PrimaryKey: []*schema.Column{CategoryProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "categoryprogress_learner_id_language_category",
				Unique:  true,
				Columns: []*schema.Column{CategoryProgressesColumns[1], CategoryProgressesColumns[2], CategoryProgressesColumns[3]},
			},
		},
	}
	// DailyXpsColumns holds the columns for the "daily_xps" table.
	DailyXpsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "day", Type: field.TypeTime},
		{Name: "xp", Type: field.TypeInt, Default: 0},
	}
	// DailyXpsTable holds the schema information for the "daily_xps" table.
	DailyXpsTable = &schema.Table{
		Name:       "daily_xps",
		Columns:    DailyXpsColumns,
		PrimaryKey: []*schema.Column{DailyXpsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dailyxp_learner_id_language_day",
				Unique:  true,
				Columns: []*schema.Column{DailyXpsColumns[1], DailyXpsColumns[2], DailyXpsColumns[3]},
			},
		},
	}
	// ItemProgressesColumns holds the columns for the "item_progresses" table.
	ItemProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "objective", Type: field.TypeString, Default: ""},
		{Name: "ease", Type: field.TypeFloat64, Default: 1.8},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error_type", Type: field.TypeString, Default: ""},
		{Name: "last_seen", Type: field.TypeTime, Nullable: true},
		{Name: "next_due", Type: field.TypeTime, Nullable: true},
	}
	// ItemProgressesTable holds the schema information for the "item_progresses" table.
	ItemProgressesTable = &schema.Table{
		Name:       "item_progresses",
		Columns:    ItemProgressesColumns,
		PrimaryKey: []*schema.Column{ItemProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemprogress_learner_id_language_category_item_id",
				Unique:  true,
				Columns: []*schema.Column{ItemProgressesColumns[1], ItemProgressesColumns[2], ItemProgressesColumns[3], ItemProgressesColumns[4]},
			},
		},
	}
	// LearnerProgressesColumns holds the columns for the "learner_progresses" table.
	LearnerProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "total_xp", Type: field.TypeInt, Default: 0},
		{Name: "streak_days", Type: field.TypeInt, Default: 0},
		{Name: "hearts", Type: field.TypeInt, Default: 5},
		{Name: "learner_level", Type: field.TypeInt, Default: 1},
		{Name: "last_completed", Type: field.TypeTime, Nullable: true},
	}
	// LearnerProgressesTable holds the schema information for the "learner_progresses" table.
	LearnerProgressesTable = &schema.Table{
		Name:       "learner_progresses",
		Columns:    LearnerProgressesColumns,
		PrimaryKey: []*schema.Column{LearnerProgressesColumns[0]},
	}
	// LearnerSettingsColumns holds the columns for the "learner_settings" table.
	LearnerSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "native_language", Type: field.TypeString, Default: "english"},
		{Name: "target_language", Type: field.TypeString, Default: "spanish"},
		{Name: "daily_goal", Type: field.TypeInt, Default: 30},
		{Name: "daily_minutes", Type: field.TypeInt, Default: 20},
		{Name: "weekly_goal_sessions", Type: field.TypeInt, Default: 5},
		{Name: "self_rated_level", Type: field.TypeString, Default: "a1"},
		{Name: "learner_name", Type: field.TypeString, Default: "Learner"},
		{Name: "learner_bio", Type: field.TypeString, Default: ""},
		{Name: "focus_area", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerSettingsTable holds the schema information for the "learner_settings" table.
	LearnerSettingsTable = &schema.Table{
		Name:       "learner_settings",
		Columns:    LearnerSettingsColumns,
		PrimaryKey: []*schema.Column{LearnerSettingsColumns[0]},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "difficulty_level", Type: field.TypeString, Default: "a1"},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "max_score", Type: field.TypeInt, Default: 0},
		{Name: "mistakes", Type: field.TypeInt, Default: 0},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "revealed_answers", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "xp_gained", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_learner_id_language_category",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2], SessionEventsColumns[3], SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_learner_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2], SessionEventsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActiveSessionsTable,
		AttemptEventsTable,
		CategoryProgressesTable,
		DailyXpsTable,
		ItemProgressesTable,
		LearnerProgressesTable,
		LearnerSettingsTable,
		SessionEventsTable,
	}
)

func init() {
}
