package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Question is a bank entry as seen by the selection engine.
type Question struct {
	ID           string
	Type         string // "open" or "code"
	Text         string
	Topics       []string
	Difficulty   string // "Easy", "Medium", "Hard", or ""
	SolutionText string
	Source       string
}

// QuestionRepo provides access to the question bank.
type QuestionRepo interface {
	// Upsert inserts a question or replaces the existing row with the same id.
	Upsert(ctx context.Context, q Question) error

	// Get returns the question with the given id, or nil if not found.
	Get(ctx context.Context, id string) (*Question, error)

	// Query returns all questions of the given type, optionally filtered
	// by difficulty. No ordering is guaranteed.
	Query(ctx context.Context, qtype, difficulty string) ([]Question, error)

	// Count returns the number of questions in the bank.
	Count(ctx context.Context) (int, error)
}

// HistoryRepo tracks which questions a user has recently seen per JD.
type HistoryRepo interface {
	// Record upserts a history row for each question id.
	Record(ctx context.Context, userID, jdHash, sessionID string, questionIDs []string, at time.Time) error

	// RecentQuestionIDs returns the ids asked in the user's most recent
	// sessions for this JD, up to the given session limit.
	RecentQuestionIDs(ctx context.Context, userID, jdHash string, sessionLimit int) (map[string]bool, error)
}

// PlanCandidate is an alternate question ref on an adaptive code slot.
type PlanCandidate struct {
	QuestionID string
	Difficulty string
	Topics     []string
}

// PlanItem is one slot in an interview plan.
type PlanItem struct {
	Section    string // "open" or "code"
	SlotIndex  int
	QuestionID string
	Difficulty string
	Topics     []string
	Candidates []PlanCandidate
}

// SessionRecord is a persisted interview session.
type SessionRecord struct {
	ID                string
	UserID            string
	JobSpecID         string
	Language          string
	Persona           string
	Plan              []PlanItem
	ConversationState string // raw JSON blob owned by the turn engine
	StartedAt         time.Time
	EndedAt           *time.Time
}

// SessionRepo manages interview session rows. Callers must serialize
// writes per session id; the engine performs no internal locking.
type SessionRepo interface {
	Create(ctx context.Context, rec *SessionRecord) error
	Get(ctx context.Context, id string) (*SessionRecord, error)

	// SaveState persists the conversation state blob for a session.
	SaveState(ctx context.Context, id, stateJSON string) error

	// End marks a session finished. Idempotent.
	End(ctx context.Context, id string, at time.Time) error

	// Latest returns the most recently started session for the user,
	// optionally scoped to a job spec. Nil if none exist.
	Latest(ctx context.Context, userID, jobSpecID string) (*SessionRecord, error)

	// List returns all sessions for the user, optionally scoped to a job
	// spec, most recent first.
	List(ctx context.Context, userID, jobSpecID string) ([]SessionRecord, error)
}

// TurnData is the payload for appending one turn.
type TurnData struct {
	TurnID           string
	SessionID        string
	TurnIndex        int
	QuestionID       string
	QuestionSnapshot string
	Transcript       string
	Code             string
	Score            float64
	IsFollowup       bool
	ParentTurnID     string
	QuestionNumber   int
	TimeSpentSecs    int
}

// TurnRecord is a persisted turn.
type TurnRecord struct {
	TurnData
	Sequence  int64
	Timestamp time.Time
}

// TurnRepo provides append-only access to interview turns.
type TurnRepo interface {
	Append(ctx context.Context, data TurnData) error

	// CountForSession returns the number of turns recorded for a session.
	CountForSession(ctx context.Context, sessionID string) (int, error)

	// LastMainTurn returns the most recent non-followup turn for a
	// session, or nil if none exist.
	LastMainTurn(ctx context.Context, sessionID string) (*TurnRecord, error)

	// ListForSession returns all turns for a session in turn order.
	ListForSession(ctx context.Context, sessionID string) ([]TurnRecord, error)
}

// TopicWeight is a weighted topic in a role profile.
type TopicWeight struct {
	Name   string
	Weight float64
}

// RoleProfile is the structured extraction from a job description.
type RoleProfile struct {
	RoleTitle  string
	Seniority  string
	Topics     []TopicWeight
	FocusAreas []string
}

// JobSpecRecord is a persisted job description.
type JobSpecRecord struct {
	ID        string
	JDHash    string
	Title     string
	RawText   string
	Profile   *RoleProfile
	CreatedAt time.Time
}

// JobSpecRepo manages job descriptions, deduplicated by content hash.
type JobSpecRepo interface {
	Create(ctx context.Context, rec *JobSpecRecord) error
	Get(ctx context.Context, id string) (*JobSpecRecord, error)

	// GetByHash returns the job spec with the given jd_hash, or nil.
	GetByHash(ctx context.Context, jdHash string) (*JobSpecRecord, error)
}

// AnalysisRecord is one CV-vs-JD analysis result.
type AnalysisRecord struct {
	ID          string
	UserID      string
	JobSpecID   string
	MatchScore  float64
	Strengths   []string
	Gaps        []string
	Suggestions []string
	CreatedAt   time.Time
}

// AnalysisRepo provides append-only access to CV analyses.
type AnalysisRepo interface {
	Append(ctx context.Context, rec *AnalysisRecord) error

	// Latest returns the most recent analysis for user+job spec, or nil.
	Latest(ctx context.Context, userID, jobSpecID string) (*AnalysisRecord, error)
}

// ScoreWeights is the weight vector used to compose a readiness score.
type ScoreWeights struct {
	CV        float64
	Interview float64
	Practice  float64
}

// SnapshotRecord is one point in the readiness time series.
type SnapshotRecord struct {
	ID             int
	UserID         string
	JobSpecID      string
	ReadinessScore float64
	CVScore        float64
	InterviewScore float64
	PracticeScore  float64
	Weights        ScoreWeights
	Timestamp      time.Time
}

// SnapshotRepo manages readiness snapshots.
type SnapshotRepo interface {
	// Append stores a new snapshot. Snapshots are never updated.
	Append(ctx context.Context, rec *SnapshotRecord) error

	// Latest returns the most recent snapshot for the user, optionally
	// scoped to a job spec. Nil if none exist.
	Latest(ctx context.Context, userID, jobSpecID string) (*SnapshotRecord, error)

	// Recent returns up to n snapshots for the user, most recent first.
	Recent(ctx context.Context, userID string, n int) ([]SnapshotRecord, error)
}

// UserRecord is a candidate account.
type UserRecord struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// UserRepo manages user rows.
type UserRepo interface {
	// Ensure returns the user with the given email, creating it first if
	// necessary.
	Ensure(ctx context.Context, email, name string) (*UserRecord, error)

	Get(ctx context.Context, id string) (*UserRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Provider     string
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to audit events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event by row id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage grouped by provider+model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
