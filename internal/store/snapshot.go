package store

import (
	"context"
	"fmt"

	"github.com/yonatank/prepair/ent"
	"github.com/yonatank/prepair/ent/readinesssnapshot"
	entschema "github.com/yonatank/prepair/ent/schema"
)

// snapshotRepo implements SnapshotRepo backed by ent.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Append(ctx context.Context, rec *SnapshotRecord) error {
	_, err := r.client.ReadinessSnapshot.Create().
		SetUserID(rec.UserID).
		SetJobSpecID(rec.JobSpecID).
		SetReadinessScore(rec.ReadinessScore).
		SetCvScore(rec.CVScore).
		SetInterviewScore(rec.InterviewScore).
		SetPracticeScore(rec.PracticeScore).
		SetBreakdown(&entschema.ReadinessBreakdownData{
			CVScore:        rec.CVScore,
			InterviewScore: rec.InterviewScore,
			PracticeScore:  rec.PracticeScore,
			Weights: entschema.ScoreWeightsData{
				CV:        rec.Weights.CV,
				Interview: rec.Weights.Interview,
				Practice:  rec.Weights.Practice,
			},
		}).
		SetTimestamp(rec.Timestamp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save readiness snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, userID, jobSpecID string) (*SnapshotRecord, error) {
	query := r.client.ReadinessSnapshot.Query().
		Where(readinesssnapshot.UserID(userID))
	if jobSpecID != "" {
		query = query.Where(readinesssnapshot.JobSpecID(jobSpecID))
	}

	row, err := query.
		Order(ent.Desc(readinesssnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	rec := fromSnapshotRow(row)
	return &rec, nil
}

func (r *snapshotRepo) Recent(ctx context.Context, userID string, n int) ([]SnapshotRecord, error) {
	rows, err := r.client.ReadinessSnapshot.Query().
		Where(readinesssnapshot.UserID(userID)).
		Order(ent.Desc(readinesssnapshot.FieldTimestamp)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent snapshots: %w", err)
	}

	out := make([]SnapshotRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromSnapshotRow(row))
	}
	return out, nil
}

func fromSnapshotRow(row *ent.ReadinessSnapshot) SnapshotRecord {
	rec := SnapshotRecord{
		ID:             row.ID,
		UserID:         row.UserID,
		JobSpecID:      row.JobSpecID,
		ReadinessScore: row.ReadinessScore,
		CVScore:        row.CvScore,
		InterviewScore: row.InterviewScore,
		PracticeScore:  row.PracticeScore,
		Timestamp:      row.Timestamp,
	}
	if row.Breakdown != nil {
		rec.Weights = ScoreWeights{
			CV:        row.Breakdown.Weights.CV,
			Interview: row.Breakdown.Weights.Interview,
			Practice:  row.Breakdown.Weights.Practice,
		}
	}
	return rec
}
