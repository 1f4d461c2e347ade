package store

import (
	"context"
	"fmt"

	"github.com/yonatank/prepair/ent"
	"github.com/yonatank/prepair/ent/interviewturn"
)

// turnRepo implements TurnRepo backed by ent and the global sequence counter.
type turnRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *turnRepo) Append(ctx context.Context, data TurnData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InterviewTurn.Create().
		SetSequence(seqNum).
		SetTurnID(data.TurnID).
		SetSessionID(data.SessionID).
		SetTurnIndex(data.TurnIndex).
		SetQuestionID(data.QuestionID).
		SetQuestionSnapshot(data.QuestionSnapshot).
		SetTranscript(data.Transcript).
		SetCode(data.Code).
		SetScore(data.Score).
		SetIsFollowup(data.IsFollowup).
		SetParentTurnID(data.ParentTurnID).
		SetQuestionNumber(data.QuestionNumber).
		SetTimeSpentSecs(data.TimeSpentSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn: %w", err)
	}
	return nil
}

func (r *turnRepo) CountForSession(ctx context.Context, sessionID string) (int, error) {
	n, err := r.client.InterviewTurn.Query().
		Where(interviewturn.SessionID(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count turns: %w", err)
	}
	return n, nil
}

func (r *turnRepo) LastMainTurn(ctx context.Context, sessionID string) (*TurnRecord, error) {
	row, err := r.client.InterviewTurn.Query().
		Where(
			interviewturn.SessionID(sessionID),
			interviewturn.IsFollowup(false),
		).
		Order(ent.Desc(interviewturn.FieldTurnIndex)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("last main turn: %w", err)
	}
	rec := fromTurnRow(row)
	return &rec, nil
}

func (r *turnRepo) ListForSession(ctx context.Context, sessionID string) ([]TurnRecord, error) {
	rows, err := r.client.InterviewTurn.Query().
		Where(interviewturn.SessionID(sessionID)).
		Order(ent.Asc(interviewturn.FieldTurnIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}

	out := make([]TurnRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromTurnRow(row))
	}
	return out, nil
}

func fromTurnRow(row *ent.InterviewTurn) TurnRecord {
	return TurnRecord{
		TurnData: TurnData{
			TurnID:           row.TurnID,
			SessionID:        row.SessionID,
			TurnIndex:        row.TurnIndex,
			QuestionID:       row.QuestionID,
			QuestionSnapshot: row.QuestionSnapshot,
			Transcript:       row.Transcript,
			Code:             row.Code,
			Score:            row.Score,
			IsFollowup:       row.IsFollowup,
			ParentTurnID:     row.ParentTurnID,
			QuestionNumber:   row.QuestionNumber,
			TimeSpentSecs:    row.TimeSpentSecs,
		},
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
	}
}
