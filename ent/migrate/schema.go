// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CvAnalysesColumns holds the columns for the "cv_analyses" table.
	CvAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "job_spec_id", Type: field.TypeString},
		{Name: "match_score", Type: field.TypeFloat64},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "gaps", Type: field.TypeJSON, Nullable: true},
		{Name: "suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CvAnalysesTable holds the schema information for the "cv_analyses" table.
	CvAnalysesTable = &schema.Table{
		Name:       "cv_analyses",
		Columns:    CvAnalysesColumns,
		PrimaryKey: []*schema.Column{CvAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cvanalysis_user_id_job_spec_id",
				Unique:  false,
				Columns: []*schema.Column{CvAnalysesColumns[1], CvAnalysesColumns[2]},
			},
			{
				Name:    "cvanalysis_created_at",
				Unique:  false,
				Columns: []*schema.Column{CvAnalysesColumns[7]},
			},
		},
	}
	// InterviewSessionsColumns holds the columns for the "interview_sessions" table.
	InterviewSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "job_spec_id", Type: field.TypeString, Default: ""},
		{Name: "language", Type: field.TypeString, Default: "english"},
		{Name: "persona", Type: field.TypeString, Default: "friendly"},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "conversation_state", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// InterviewSessionsTable holds the schema information for the "interview_sessions" table.
	InterviewSessionsTable = &schema.Table{
		Name:       "interview_sessions",
		Columns:    InterviewSessionsColumns,
		PrimaryKey: []*schema.Column{InterviewSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewsession_user_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{InterviewSessionsColumns[1], InterviewSessionsColumns[7]},
			},
			{
				Name:    "interviewsession_job_spec_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewSessionsColumns[2]},
			},
		},
	}
	// InterviewTurnsColumns holds the columns for the "interview_turns" table.
	InterviewTurnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "turn_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "turn_index", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_snapshot", Type: field.TypeString, Size: 2147483647},
		{Name: "transcript", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "code", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "is_followup", Type: field.TypeBool, Default: false},
		{Name: "parent_turn_id", Type: field.TypeString, Default: ""},
		{Name: "question_number", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
	}
	// InterviewTurnsTable holds the schema information for the "interview_turns" table.
	InterviewTurnsTable = &schema.Table{
		Name:       "interview_turns",
		Columns:    InterviewTurnsColumns,
		PrimaryKey: []*schema.Column{InterviewTurnsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interviewturn_sequence",
				Unique:  false,
				Columns: []*schema.Column{InterviewTurnsColumns[1]},
			},
			{
				Name:    "interviewturn_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InterviewTurnsColumns[2]},
			},
			{
				Name:    "interviewturn_session_id_turn_index",
				Unique:  false,
				Columns: []*schema.Column{InterviewTurnsColumns[4], InterviewTurnsColumns[5]},
			},
			{
				Name:    "interviewturn_question_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewTurnsColumns[6]},
			},
		},
	}
	// JobSpecsColumns holds the columns for the "job_specs" table.
	JobSpecsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "jd_hash", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "role_profile", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobSpecsTable holds the schema information for the "job_specs" table.
	JobSpecsTable = &schema.Table{
		Name:       "job_specs",
		Columns:    JobSpecsColumns,
		PrimaryKey: []*schema.Column{JobSpecsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "jobspec_jd_hash",
				Unique:  false,
				Columns: []*schema.Column{JobSpecsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "question_type", Type: field.TypeEnum, Enums: []string{"open", "code"}},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "solution_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "source", Type: field.TypeString, Default: ""},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_question_type",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_question_type_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[4]},
			},
		},
	}
	// QuestionHistoriesColumns holds the columns for the "question_histories" table.
	QuestionHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "jd_hash", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "last_asked_at", Type: field.TypeTime},
	}
	// QuestionHistoriesTable holds the schema information for the "question_histories" table.
	QuestionHistoriesTable = &schema.Table{
		Name:       "question_histories",
		Columns:    QuestionHistoriesColumns,
		PrimaryKey: []*schema.Column{QuestionHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionhistory_user_id_jd_hash_question_id",
				Unique:  true,
				Columns: []*schema.Column{QuestionHistoriesColumns[1], QuestionHistoriesColumns[2], QuestionHistoriesColumns[3]},
			},
			{
				Name:    "questionhistory_last_asked_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionHistoriesColumns[5]},
			},
		},
	}
	// ReadinessSnapshotsColumns holds the columns for the "readiness_snapshots" table.
	ReadinessSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "job_spec_id", Type: field.TypeString, Default: ""},
		{Name: "readiness_score", Type: field.TypeFloat64},
		{Name: "cv_score", Type: field.TypeFloat64},
		{Name: "interview_score", Type: field.TypeFloat64},
		{Name: "practice_score", Type: field.TypeFloat64},
		{Name: "breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// ReadinessSnapshotsTable holds the schema information for the "readiness_snapshots" table.
	ReadinessSnapshotsTable = &schema.Table{
		Name:       "readiness_snapshots",
		Columns:    ReadinessSnapshotsColumns,
		PrimaryKey: []*schema.Column{ReadinessSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "readinesssnapshot_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReadinessSnapshotsColumns[1], ReadinessSnapshotsColumns[8]},
			},
			{
				Name:    "readinesssnapshot_user_id_job_spec_id",
				Unique:  false,
				Columns: []*schema.Column{ReadinessSnapshotsColumns[1], ReadinessSnapshotsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CvAnalysesTable,
		InterviewSessionsTable,
		InterviewTurnsTable,
		JobSpecsTable,
		LlmRequestEventsTable,
		QuestionsTable,
		QuestionHistoriesTable,
		ReadinessSnapshotsTable,
		UsersTable,
	}
)

func init() {
}
