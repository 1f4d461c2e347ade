package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yonatank/prepair/internal/store"
)

// Service handles session lifecycle around the planner and engine:
// starting sessions, recording question history, and status queries.
type Service struct {
	planner  *Planner
	sessions store.SessionRepo
	jobSpecs store.JobSpecRepo
	history  store.HistoryRepo
	now      func() time.Time
}

// NewService creates a session lifecycle service.
func NewService(planner *Planner, sessions store.SessionRepo, jobSpecs store.JobSpecRepo, history store.HistoryRepo) *Service {
	return &Service{
		planner:  planner,
		sessions: sessions,
		jobSpecs: jobSpecs,
		history:  history,
		now:      time.Now,
	}
}

// StartInput describes a new session request.
type StartInput struct {
	UserID    string
	JobSpecID string
	Language  string
	Persona   string
	NumOpen   int
	NumCode   int
}

// Start builds a plan and persists a new session. A plan too similar to
// the user's previous one for the same job spec is rebuilt once; the
// second attempt stands regardless.
func (s *Service) Start(ctx context.Context, input StartInput) (*store.SessionRecord, error) {
	var profile *store.RoleProfile
	jdHash := ""
	if input.JobSpecID != "" {
		spec, err := s.jobSpecs.Get(ctx, input.JobSpecID)
		if err != nil {
			return nil, fmt.Errorf("load job spec: %w", err)
		}
		if spec == nil {
			return nil, fmt.Errorf("job spec %s not found", input.JobSpecID)
		}
		profile = spec.Profile
		jdHash = spec.JDHash
	}

	planInput := BuildPlanInput{
		Profile: profile,
		UserID:  input.UserID,
		JDHash:  jdHash,
		NumOpen: input.NumOpen,
		NumCode: input.NumCode,
	}

	plan, err := s.planner.BuildPlan(ctx, planInput)
	if err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("question bank is empty, ingest questions first")
	}

	diverse, err := s.planner.CheckPlanDiversity(ctx, input.UserID, input.JobSpecID, plan)
	if err != nil {
		return nil, fmt.Errorf("check plan diversity: %w", err)
	}
	if !diverse {
		plan, err = s.planner.BuildPlan(ctx, planInput)
		if err != nil {
			return nil, fmt.Errorf("rebuild plan: %w", err)
		}
	}

	language := input.Language
	if language == "" {
		language = "english"
	}
	persona := input.Persona
	if persona == "" {
		persona = "friendly"
	}

	rec := &store.SessionRecord{
		ID:                uuid.NewString(),
		UserID:            input.UserID,
		JobSpecID:         input.JobSpecID,
		Language:          language,
		Persona:           persona,
		Plan:              plan,
		ConversationState: (&ConversationState{}).Marshal(),
		StartedAt:         s.now().UTC(),
	}
	if err := s.sessions.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if jdHash != "" {
		ids := make([]string, 0, len(plan))
		for _, item := range plan {
			ids = append(ids, item.QuestionID)
		}
		if err := s.history.Record(ctx, input.UserID, jdHash, rec.ID, ids, rec.StartedAt); err != nil {
			return nil, fmt.Errorf("record question history: %w", err)
		}
	}

	return rec, nil
}

// Status reports a session's position without mutating it.
type Status struct {
	SessionID     string
	QuestionIndex int
	FollowupCount int
	Total         int
	Done          bool
	StartedAt     time.Time
	EndedAt       *time.Time
}

// GetStatus returns the current position of a session.
func (s *Service) GetStatus(ctx context.Context, sessionID string) (*Status, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	state := ParseState(session.ConversationState)
	return &Status{
		SessionID:     session.ID,
		QuestionIndex: state.QuestionIndex,
		FollowupCount: state.FollowupCount,
		Total:         len(session.Plan),
		Done:          session.EndedAt != nil || (state.FollowupCount == 0 && state.QuestionIndex >= len(session.Plan)),
		StartedAt:     session.StartedAt,
		EndedAt:       session.EndedAt,
	}, nil
}
