package store

import (
	"context"
	"fmt"
	"time"

	"github.com/yonatank/prepair/ent"
	"github.com/yonatank/prepair/ent/questionhistory"
)

// historyRepo implements HistoryRepo backed by ent.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Record(ctx context.Context, userID, jdHash, sessionID string, questionIDs []string, at time.Time) error {
	for _, qid := range questionIDs {
		existing, err := r.client.QuestionHistory.Query().
			Where(
				questionhistory.UserID(userID),
				questionhistory.JdHash(jdHash),
				questionhistory.QuestionID(qid),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("lookup history %s: %w", qid, err)
		}

		if existing != nil {
			_, err = r.client.QuestionHistory.UpdateOne(existing).
				SetSessionID(sessionID).
				SetLastAskedAt(at).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("update history %s: %w", qid, err)
			}
			continue
		}

		_, err = r.client.QuestionHistory.Create().
			SetUserID(userID).
			SetJdHash(jdHash).
			SetQuestionID(qid).
			SetSessionID(sessionID).
			SetLastAskedAt(at).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create history %s: %w", qid, err)
		}
	}
	return nil
}

func (r *historyRepo) RecentQuestionIDs(ctx context.Context, userID, jdHash string, sessionLimit int) (map[string]bool, error) {
	rows, err := r.client.QuestionHistory.Query().
		Where(
			questionhistory.UserID(userID),
			questionhistory.JdHash(jdHash),
		).
		Order(ent.Desc(questionhistory.FieldLastAskedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	// Keep only questions from the most recent sessionLimit sessions.
	sessionsSeen := make(map[string]bool)
	ids := make(map[string]bool)
	for _, row := range rows {
		if !sessionsSeen[row.SessionID] {
			if len(sessionsSeen) >= sessionLimit {
				break
			}
			sessionsSeen[row.SessionID] = true
		}
		ids[row.QuestionID] = true
	}
	return ids, nil
}
