package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/yonatank/prepair/internal/store"
)

// TrendWindow is how many snapshots the overview trend covers.
const TrendWindow = 10

// TrendPoint is one snapshot reduced to its timestamp and composite score.
type TrendPoint struct {
	Timestamp      time.Time `json:"timestamp"`
	ReadinessScore float64   `json:"readiness_score"`
}

// Overview is the progress summary: the latest snapshot plus the recent
// trend, oldest first.
type Overview struct {
	Latest *store.SnapshotRecord `json:"latest"`
	Trend  []TrendPoint          `json:"trend"`
}

// GetOverview returns the user's latest snapshot and trailing trend.
// A user with no snapshots gets an empty overview, not an error.
func (a *Aggregator) GetOverview(ctx context.Context, userID, jobSpecID string) (*Overview, error) {
	latest, err := a.snapshots.Latest(ctx, userID, jobSpecID)
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	recent, err := a.snapshots.Recent(ctx, userID, TrendWindow)
	if err != nil {
		return nil, fmt.Errorf("recent snapshots: %w", err)
	}

	// Recent returns newest first; the trend reads oldest first.
	trend := make([]TrendPoint, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		trend = append(trend, TrendPoint{
			Timestamp:      recent[i].Timestamp,
			ReadinessScore: recent[i].ReadinessScore,
		})
	}

	return &Overview{Latest: latest, Trend: trend}, nil
}
