package store

import (
	"context"
	"fmt"

	"github.com/yonatank/prepair/ent"
	"github.com/yonatank/prepair/ent/question"
)

// questionRepo implements QuestionRepo backed by ent.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Upsert(ctx context.Context, q Question) error {
	existing, err := r.client.Question.Query().
		Where(question.ID(q.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("lookup question %s: %w", q.ID, err)
	}

	if existing != nil {
		_, err = r.client.Question.UpdateOneID(q.ID).
			SetText(q.Text).
			SetTopics(q.Topics).
			SetDifficulty(q.Difficulty).
			SetSolutionText(q.SolutionText).
			SetSource(q.Source).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update question %s: %w", q.ID, err)
		}
		return nil
	}

	_, err = r.client.Question.Create().
		SetID(q.ID).
		SetQuestionType(question.QuestionType(q.Type)).
		SetText(q.Text).
		SetTopics(q.Topics).
		SetDifficulty(q.Difficulty).
		SetSolutionText(q.SolutionText).
		SetSource(q.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create question %s: %w", q.ID, err)
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, id string) (*Question, error) {
	row, err := r.client.Question.Query().
		Where(question.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	q := fromQuestionRow(row)
	return &q, nil
}

func (r *questionRepo) Query(ctx context.Context, qtype, difficulty string) ([]Question, error) {
	query := r.client.Question.Query().
		Where(question.QuestionTypeEQ(question.QuestionType(qtype)))
	if difficulty != "" {
		query = query.Where(question.Difficulty(difficulty))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromQuestionRow(row))
	}
	return out, nil
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func fromQuestionRow(row *ent.Question) Question {
	return Question{
		ID:           row.ID,
		Type:         string(row.QuestionType),
		Text:         row.Text,
		Topics:       row.Topics,
		Difficulty:   row.Difficulty,
		SolutionText: row.SolutionText,
		Source:       row.Source,
	}
}
