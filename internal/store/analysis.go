package store

import (
	"context"
	"fmt"

	"github.com/yonatank/prepair/ent"
	"github.com/yonatank/prepair/ent/cvanalysis"
)

// analysisRepo implements AnalysisRepo backed by ent.
type analysisRepo struct {
	client *ent.Client
}

func (r *analysisRepo) Append(ctx context.Context, rec *AnalysisRecord) error {
	_, err := r.client.CVAnalysis.Create().
		SetID(rec.ID).
		SetUserID(rec.UserID).
		SetJobSpecID(rec.JobSpecID).
		SetMatchScore(rec.MatchScore).
		SetStrengths(rec.Strengths).
		SetGaps(rec.Gaps).
		SetSuggestions(rec.Suggestions).
		SetCreatedAt(rec.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save cv analysis: %w", err)
	}
	return nil
}

func (r *analysisRepo) Latest(ctx context.Context, userID, jobSpecID string) (*AnalysisRecord, error) {
	row, err := r.client.CVAnalysis.Query().
		Where(
			cvanalysis.UserID(userID),
			cvanalysis.JobSpecID(jobSpecID),
		).
		Order(ent.Desc(cvanalysis.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest cv analysis: %w", err)
	}

	return &AnalysisRecord{
		ID:          row.ID,
		UserID:      row.UserID,
		JobSpecID:   row.JobSpecID,
		MatchScore:  row.MatchScore,
		Strengths:   row.Strengths,
		Gaps:        row.Gaps,
		Suggestions: row.Suggestions,
		CreatedAt:   row.CreatedAt,
	}, nil
}
