package readiness

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yonatank/prepair/internal/store"
)

// DefaultWeights is the production readiness weight vector.
var DefaultWeights = store.ScoreWeights{CV: 0.4, Interview: 0.5, Practice: 0.1}

// Question-type weights for the interview sub-score. Code answers carry
// more signal than open-ended ones.
const (
	openTurnWeight = 0.4
	codeTurnWeight = 0.6
)

// Aggregator computes readiness snapshots from stored analysis, session,
// and turn records. Scores are a pure function of stored data; two runs
// over identical data produce identical score fields.
type Aggregator struct {
	analyses  store.AnalysisRepo
	sessions  store.SessionRepo
	turns     store.TurnRepo
	snapshots store.SnapshotRepo
	weights   store.ScoreWeights
	now       func() time.Time
}

// NewAggregator creates an Aggregator with the default weight vector.
func NewAggregator(analyses store.AnalysisRepo, sessions store.SessionRepo, turns store.TurnRepo, snapshots store.SnapshotRepo) *Aggregator {
	return &Aggregator{
		analyses:  analyses,
		sessions:  sessions,
		turns:     turns,
		snapshots: snapshots,
		weights:   DefaultWeights,
		now:       time.Now,
	}
}

// ComputeSnapshot computes all sub-scores, persists one immutable
// snapshot, and returns it. jobSpecID may be empty; the CV sub-score is
// then 0 by definition.
func (a *Aggregator) ComputeSnapshot(ctx context.Context, userID, jobSpecID string) (*store.SnapshotRecord, error) {
	cvScore, err := a.cvScore(ctx, userID, jobSpecID)
	if err != nil {
		return nil, fmt.Errorf("cv score: %w", err)
	}
	interviewScore, err := a.interviewScore(ctx, userID, jobSpecID)
	if err != nil {
		return nil, fmt.Errorf("interview score: %w", err)
	}
	practiceScore, err := a.practiceScore(ctx, userID, jobSpecID)
	if err != nil {
		return nil, fmt.Errorf("practice score: %w", err)
	}

	rec := &store.SnapshotRecord{
		UserID:         userID,
		JobSpecID:      jobSpecID,
		ReadinessScore: Compose(cvScore, interviewScore, practiceScore, a.weights),
		CVScore:        cvScore,
		InterviewScore: interviewScore,
		PracticeScore:  practiceScore,
		Weights:        a.weights,
		Timestamp:      a.now().UTC(),
	}
	if err := a.snapshots.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}
	return rec, nil
}

// Compose combines the three sub-scores with the given weight vector.
func Compose(cv, interview, practice float64, w store.ScoreWeights) float64 {
	return cv*w.CV + interview*w.Interview + practice*w.Practice
}

// cvScore scales the latest CV analysis match score to 0-100 and adds a
// coverage bonus of 2 points per strength minus 1 per gap, the bonus
// clamped to [0,10] and the result to [0,100].
func (a *Aggregator) cvScore(ctx context.Context, userID, jobSpecID string) (float64, error) {
	if jobSpecID == "" {
		return 0, nil
	}

	latest, err := a.analyses.Latest(ctx, userID, jobSpecID)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 0, nil
	}

	base := latest.MatchScore * 100
	bonus := clamp(2*float64(len(latest.Strengths))-float64(len(latest.Gaps)), 0, 10)
	return clamp(base+bonus, 0, 100), nil
}

// interviewScore is the weighted mean of the most recent session's turn
// scores, scaled to 0-100. Question type comes from the id prefix.
func (a *Aggregator) interviewScore(ctx context.Context, userID, jobSpecID string) (float64, error) {
	latest, err := a.sessions.Latest(ctx, userID, jobSpecID)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return 0, nil
	}

	turns, err := a.turns.ListForSession(ctx, latest.ID)
	if err != nil {
		return 0, err
	}
	if len(turns) == 0 {
		return 0, nil
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for _, t := range turns {
		w := openTurnWeight
		if strings.HasPrefix(t.QuestionID, "code:") {
			w = codeTurnWeight
		}
		weightedSum += t.Score * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0, nil
	}
	return weightedSum / totalWeight * 100, nil
}

// practiceScore rewards volume, recency, and repeat practice:
// min(50, 5 per session) + min(30, 10 per session in the last 7 days)
// + 5 once two or more sessions exist, capped at 100.
func (a *Aggregator) practiceScore(ctx context.Context, userID, jobSpecID string) (float64, error) {
	sessions, err := a.sessions.List(ctx, userID, jobSpecID)
	if err != nil {
		return 0, err
	}
	if len(sessions) == 0 {
		return 0, nil
	}

	cutoff := a.now().UTC().AddDate(0, 0, -7)
	recent := 0
	for _, s := range sessions {
		if !s.StartedAt.Before(cutoff) {
			recent++
		}
	}

	countScore := min(50.0, float64(len(sessions))*5)
	recencyBonus := min(30.0, float64(recent)*10)
	trendBonus := 0.0
	if len(sessions) >= 2 {
		trendBonus = 5
	}

	return min(100.0, countScore+recencyBonus+trendBonus), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
