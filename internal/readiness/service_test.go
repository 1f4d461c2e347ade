package readiness

import (
	"context"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/yonatank/prepair/internal/store"
)

type fakeAnalysisRepo struct {
	records []*store.AnalysisRecord
}

func (f *fakeAnalysisRepo) Append(_ context.Context, rec *store.AnalysisRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeAnalysisRepo) Latest(_ context.Context, userID, jobSpecID string) (*store.AnalysisRecord, error) {
	var latest *store.AnalysisRecord
	for _, rec := range f.records {
		if rec.UserID != userID || rec.JobSpecID != jobSpecID {
			continue
		}
		if latest == nil || rec.CreatedAt.After(latest.CreatedAt) {
			latest = rec
		}
	}
	return latest, nil
}

type fakeSessionRepo struct {
	sessions []store.SessionRecord
}

func (f *fakeSessionRepo) Create(_ context.Context, rec *store.SessionRecord) error {
	f.sessions = append(f.sessions, *rec)
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*store.SessionRecord, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			copied := s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) SaveState(_ context.Context, _, _ string) error { return nil }

func (f *fakeSessionRepo) End(_ context.Context, _ string, _ time.Time) error { return nil }

func (f *fakeSessionRepo) Latest(_ context.Context, userID, jobSpecID string) (*store.SessionRecord, error) {
	all, _ := f.List(nil, userID, jobSpecID)
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

func (f *fakeSessionRepo) List(_ context.Context, userID, jobSpecID string) ([]store.SessionRecord, error) {
	var out []store.SessionRecord
	for _, s := range f.sessions {
		if s.UserID != userID {
			continue
		}
		if jobSpecID != "" && s.JobSpecID != jobSpecID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

type fakeTurnRepo struct {
	turns map[string][]store.TurnRecord
}

func (f *fakeTurnRepo) Append(_ context.Context, data store.TurnData) error {
	if f.turns == nil {
		f.turns = make(map[string][]store.TurnRecord)
	}
	f.turns[data.SessionID] = append(f.turns[data.SessionID], store.TurnRecord{TurnData: data})
	return nil
}

func (f *fakeTurnRepo) CountForSession(_ context.Context, sessionID string) (int, error) {
	return len(f.turns[sessionID]), nil
}

func (f *fakeTurnRepo) LastMainTurn(_ context.Context, _ string) (*store.TurnRecord, error) {
	return nil, nil
}

func (f *fakeTurnRepo) ListForSession(_ context.Context, sessionID string) ([]store.TurnRecord, error) {
	return f.turns[sessionID], nil
}

type fakeSnapshotRepo struct {
	snapshots []store.SnapshotRecord
}

func (f *fakeSnapshotRepo) Append(_ context.Context, rec *store.SnapshotRecord) error {
	rec.ID = len(f.snapshots) + 1
	f.snapshots = append(f.snapshots, *rec)
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context, userID, jobSpecID string) (*store.SnapshotRecord, error) {
	for i := len(f.snapshots) - 1; i >= 0; i-- {
		s := f.snapshots[i]
		if s.UserID != userID {
			continue
		}
		if jobSpecID != "" && s.JobSpecID != jobSpecID {
			continue
		}
		return &s, nil
	}
	return nil, nil
}

func (f *fakeSnapshotRepo) Recent(_ context.Context, userID string, n int) ([]store.SnapshotRecord, error) {
	var out []store.SnapshotRecord
	for i := len(f.snapshots) - 1; i >= 0 && len(out) < n; i-- {
		if f.snapshots[i].UserID == userID {
			out = append(out, f.snapshots[i])
		}
	}
	return out, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestAggregator(analyses *fakeAnalysisRepo, sessions *fakeSessionRepo, turns *fakeTurnRepo, snapshots *fakeSnapshotRepo) *Aggregator {
	a := NewAggregator(analyses, sessions, turns, snapshots)
	a.now = func() time.Time { return testNow }
	return a
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompose(t *testing.T) {
	got := Compose(80, 60, 20, DefaultWeights)
	if !almostEqual(got, 64.0) {
		t.Errorf("Compose = %v, want 64.0", got)
	}
}

func TestComputeSnapshot_NoData(t *testing.T) {
	a := newTestAggregator(&fakeAnalysisRepo{}, &fakeSessionRepo{}, &fakeTurnRepo{}, &fakeSnapshotRepo{})

	snap, err := a.ComputeSnapshot(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.ReadinessScore != 0 || snap.CVScore != 0 || snap.InterviewScore != 0 || snap.PracticeScore != 0 {
		t.Errorf("snapshot = %+v, want all zeros", snap)
	}
	if snap.Weights != DefaultWeights {
		t.Errorf("Weights = %+v, want defaults", snap.Weights)
	}
}

func TestCVScore_ZeroWithoutJobSpec(t *testing.T) {
	analyses := &fakeAnalysisRepo{records: []*store.AnalysisRecord{
		{UserID: "user-1", JobSpecID: "jd-1", MatchScore: 0.9, CreatedAt: testNow},
	}}
	a := newTestAggregator(analyses, &fakeSessionRepo{}, &fakeTurnRepo{}, &fakeSnapshotRepo{})

	snap, err := a.ComputeSnapshot(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.CVScore != 0 {
		t.Errorf("CVScore = %v, want 0 without a job spec", snap.CVScore)
	}
}

func TestCVScore_BonusClamped(t *testing.T) {
	tests := []struct {
		name      string
		match     float64
		strengths int
		gaps      int
		want      float64
	}{
		{"no bonus", 0.5, 0, 0, 50},
		{"bonus from strengths", 0.5, 3, 1, 55},
		{"bonus capped at ten", 0.5, 20, 0, 60},
		{"gaps cannot go negative", 0.5, 0, 8, 50},
		{"total capped at hundred", 0.99, 10, 0, 100},
	}

	for _, tt := range tests {
		analyses := &fakeAnalysisRepo{records: []*store.AnalysisRecord{{
			UserID:     "user-1",
			JobSpecID:  "jd-1",
			MatchScore: tt.match,
			Strengths:  make([]string, tt.strengths),
			Gaps:       make([]string, tt.gaps),
			CreatedAt:  testNow,
		}}}
		a := newTestAggregator(analyses, &fakeSessionRepo{}, &fakeTurnRepo{}, &fakeSnapshotRepo{})

		snap, err := a.ComputeSnapshot(context.Background(), "user-1", "jd-1")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if !almostEqual(snap.CVScore, tt.want) {
			t.Errorf("%s: CVScore = %v, want %v", tt.name, snap.CVScore, tt.want)
		}
	}
}

func TestInterviewScore_WeightsCodeHigher(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: []store.SessionRecord{
		{ID: "sess-1", UserID: "user-1", StartedAt: testNow.AddDate(0, 0, -1)},
	}}
	turns := &fakeTurnRepo{}
	turns.Append(context.Background(), store.TurnData{SessionID: "sess-1", QuestionID: "open:1", Score: 1.0})
	turns.Append(context.Background(), store.TurnData{SessionID: "sess-1", QuestionID: "code:1", Score: 0.0})

	a := newTestAggregator(&fakeAnalysisRepo{}, sessions, turns, &fakeSnapshotRepo{})

	snap, err := a.ComputeSnapshot(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (1.0*0.4 + 0.0*0.6) / (0.4 + 0.6) * 100 = 40
	if !almostEqual(snap.InterviewScore, 40) {
		t.Errorf("InterviewScore = %v, want 40", snap.InterviewScore)
	}
}

func TestPracticeScore(t *testing.T) {
	session := func(id string, daysAgo int) store.SessionRecord {
		return store.SessionRecord{ID: id, UserID: "user-1", StartedAt: testNow.AddDate(0, 0, -daysAgo)}
	}

	tests := []struct {
		name     string
		sessions []store.SessionRecord
		want     float64
	}{
		{"no sessions", nil, 0},
		{"one recent session", []store.SessionRecord{session("a", 1)}, 15},
		{"one old session", []store.SessionRecord{session("a", 30)}, 5},
		{"two recent sessions", []store.SessionRecord{session("a", 1), session("b", 2)}, 35},
		{"many sessions cap", func() []store.SessionRecord {
			var out []store.SessionRecord
			for i := 0; i < 20; i++ {
				out = append(out, session(string(rune('a'+i)), i)) // 8 within 7 days
			}
			return out
		}(), 85},
	}

	for _, tt := range tests {
		sessions := &fakeSessionRepo{sessions: tt.sessions}
		a := newTestAggregator(&fakeAnalysisRepo{}, sessions, &fakeTurnRepo{}, &fakeSnapshotRepo{})

		snap, err := a.ComputeSnapshot(context.Background(), "user-1", "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if !almostEqual(snap.PracticeScore, tt.want) {
			t.Errorf("%s: PracticeScore = %v, want %v", tt.name, snap.PracticeScore, tt.want)
		}
	}
}

func TestComputeSnapshot_Idempotent(t *testing.T) {
	analyses := &fakeAnalysisRepo{records: []*store.AnalysisRecord{
		{UserID: "user-1", JobSpecID: "jd-1", MatchScore: 0.8, CreatedAt: testNow},
	}}
	sessions := &fakeSessionRepo{sessions: []store.SessionRecord{
		{ID: "sess-1", UserID: "user-1", JobSpecID: "jd-1", StartedAt: testNow.AddDate(0, 0, -1)},
	}}
	turns := &fakeTurnRepo{}
	turns.Append(context.Background(), store.TurnData{SessionID: "sess-1", QuestionID: "open:1", Score: 0.7})
	snapshots := &fakeSnapshotRepo{}

	a := newTestAggregator(analyses, sessions, turns, snapshots)

	first, err := a.ComputeSnapshot(context.Background(), "user-1", "jd-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.ComputeSnapshot(context.Background(), "user-1", "jd-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ReadinessScore != second.ReadinessScore ||
		first.CVScore != second.CVScore ||
		first.InterviewScore != second.InterviewScore ||
		first.PracticeScore != second.PracticeScore {
		t.Errorf("scores differ across identical data: %+v vs %+v", first, second)
	}
	// Both snapshots persisted as separate points.
	if len(snapshots.snapshots) != 2 {
		t.Errorf("snapshots = %d, want 2", len(snapshots.snapshots))
	}
}

func TestGetOverview(t *testing.T) {
	snapshots := &fakeSnapshotRepo{}
	for i := 0; i < 12; i++ {
		snapshots.Append(context.Background(), &store.SnapshotRecord{
			UserID:         "user-1",
			ReadinessScore: float64(i),
			Timestamp:      testNow.AddDate(0, 0, i-12),
		})
	}
	a := newTestAggregator(&fakeAnalysisRepo{}, &fakeSessionRepo{}, &fakeTurnRepo{}, snapshots)

	overview, err := a.GetOverview(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Latest == nil || overview.Latest.ReadinessScore != 11 {
		t.Errorf("Latest = %+v, want score 11", overview.Latest)
	}
	if len(overview.Trend) != TrendWindow {
		t.Fatalf("trend length = %d, want %d", len(overview.Trend), TrendWindow)
	}
	// Oldest first.
	if overview.Trend[0].ReadinessScore != 2 || overview.Trend[9].ReadinessScore != 11 {
		t.Errorf("trend = %v, want scores 2..11", overview.Trend)
	}
}

func TestGetOverview_Empty(t *testing.T) {
	a := newTestAggregator(&fakeAnalysisRepo{}, &fakeSessionRepo{}, &fakeTurnRepo{}, &fakeSnapshotRepo{})

	overview, err := a.GetOverview(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Latest != nil || len(overview.Trend) != 0 {
		t.Errorf("overview = %+v, want empty", overview)
	}
}
