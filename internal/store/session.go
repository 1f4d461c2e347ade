package store

import (
	"context"
	"fmt"
	"time"

	"github.com/yonatank/prepair/ent"
	"github.com/yonatank/prepair/ent/interviewsession"
	entschema "github.com/yonatank/prepair/ent/schema"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, rec *SessionRecord) error {
	_, err := r.client.InterviewSession.Create().
		SetID(rec.ID).
		SetUserID(rec.UserID).
		SetJobSpecID(rec.JobSpecID).
		SetLanguage(rec.Language).
		SetPersona(rec.Persona).
		SetPlan(toPlanData(rec.Plan)).
		SetConversationState(rec.ConversationState).
		SetStartedAt(rec.StartedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*SessionRecord, error) {
	row, err := r.client.InterviewSession.Query().
		Where(interviewsession.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return fromSessionRow(row), nil
}

func (r *sessionRepo) SaveState(ctx context.Context, id, stateJSON string) error {
	_, err := r.client.InterviewSession.UpdateOneID(id).
		SetConversationState(stateJSON).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session state %s: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) End(ctx context.Context, id string, at time.Time) error {
	_, err := r.client.InterviewSession.UpdateOneID(id).
		SetEndedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("end session %s: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) Latest(ctx context.Context, userID, jobSpecID string) (*SessionRecord, error) {
	query := r.client.InterviewSession.Query().
		Where(interviewsession.UserID(userID))
	if jobSpecID != "" {
		query = query.Where(interviewsession.JobSpecID(jobSpecID))
	}

	row, err := query.
		Order(ent.Desc(interviewsession.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest session: %w", err)
	}
	return fromSessionRow(row), nil
}

func (r *sessionRepo) List(ctx context.Context, userID, jobSpecID string) ([]SessionRecord, error) {
	query := r.client.InterviewSession.Query().
		Where(interviewsession.UserID(userID))
	if jobSpecID != "" {
		query = query.Where(interviewsession.JobSpecID(jobSpecID))
	}

	rows, err := query.
		Order(ent.Desc(interviewsession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]SessionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, *fromSessionRow(row))
	}
	return out, nil
}

func fromSessionRow(row *ent.InterviewSession) *SessionRecord {
	return &SessionRecord{
		ID:                row.ID,
		UserID:            row.UserID,
		JobSpecID:         row.JobSpecID,
		Language:          row.Language,
		Persona:           row.Persona,
		Plan:              fromPlanData(row.Plan),
		ConversationState: row.ConversationState,
		StartedAt:         row.StartedAt,
		EndedAt:           row.EndedAt,
	}
}

func toPlanData(plan []PlanItem) []entschema.PlanItemData {
	out := make([]entschema.PlanItemData, 0, len(plan))
	for _, item := range plan {
		data := entschema.PlanItemData{
			Section:    item.Section,
			SlotIndex:  item.SlotIndex,
			QuestionID: item.QuestionID,
			Difficulty: item.Difficulty,
			Topics:     item.Topics,
		}
		for _, c := range item.Candidates {
			data.Candidates = append(data.Candidates, entschema.PlanCandidateData{
				QuestionID: c.QuestionID,
				Difficulty: c.Difficulty,
				Topics:     c.Topics,
			})
		}
		out = append(out, data)
	}
	return out
}

func fromPlanData(data []entschema.PlanItemData) []PlanItem {
	out := make([]PlanItem, 0, len(data))
	for _, d := range data {
		item := PlanItem{
			Section:    d.Section,
			SlotIndex:  d.SlotIndex,
			QuestionID: d.QuestionID,
			Difficulty: d.Difficulty,
			Topics:     d.Topics,
		}
		for _, c := range d.Candidates {
			item.Candidates = append(item.Candidates, PlanCandidate{
				QuestionID: c.QuestionID,
				Difficulty: c.Difficulty,
				Topics:     c.Topics,
			})
		}
		out = append(out, item)
	}
	return out
}
