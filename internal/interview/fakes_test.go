package interview

import (
	"context"
	"sort"
	"time"

	"github.com/yonatank/prepair/internal/store"
)

// fakeQuestionRepo is an in-memory question bank for tests.
type fakeQuestionRepo struct {
	questions map[string]store.Question
}

func newFakeQuestionRepo(qs ...store.Question) *fakeQuestionRepo {
	repo := &fakeQuestionRepo{questions: make(map[string]store.Question)}
	for _, q := range qs {
		repo.questions[q.ID] = q
	}
	return repo
}

func (f *fakeQuestionRepo) Upsert(_ context.Context, q store.Question) error {
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) Get(_ context.Context, id string) (*store.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (f *fakeQuestionRepo) Query(_ context.Context, qtype, difficulty string) ([]store.Question, error) {
	var out []store.Question
	for _, q := range f.questions {
		if q.Type != qtype {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionRepo) Count(_ context.Context) (int, error) {
	return len(f.questions), nil
}

// fakeHistoryRepo records plan ids and serves a fixed recent set.
type fakeHistoryRepo struct {
	recent   map[string]bool
	recorded []string
}

func (f *fakeHistoryRepo) Record(_ context.Context, _, _, _ string, questionIDs []string, _ time.Time) error {
	f.recorded = append(f.recorded, questionIDs...)
	return nil
}

func (f *fakeHistoryRepo) RecentQuestionIDs(_ context.Context, _, _ string, _ int) (map[string]bool, error) {
	if f.recent == nil {
		return map[string]bool{}, nil
	}
	return f.recent, nil
}

// fakeSessionRepo is an in-memory session store.
type fakeSessionRepo struct {
	sessions map[string]*store.SessionRecord
}

func newFakeSessionRepo(recs ...*store.SessionRecord) *fakeSessionRepo {
	repo := &fakeSessionRepo{sessions: make(map[string]*store.SessionRecord)}
	for _, rec := range recs {
		repo.sessions[rec.ID] = rec
	}
	return repo
}

func (f *fakeSessionRepo) Create(_ context.Context, rec *store.SessionRecord) error {
	f.sessions[rec.ID] = rec
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*store.SessionRecord, error) {
	rec, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeSessionRepo) SaveState(_ context.Context, id, stateJSON string) error {
	f.sessions[id].ConversationState = stateJSON
	return nil
}

func (f *fakeSessionRepo) End(_ context.Context, id string, at time.Time) error {
	if f.sessions[id].EndedAt == nil {
		f.sessions[id].EndedAt = &at
	}
	return nil
}

func (f *fakeSessionRepo) Latest(_ context.Context, userID, jobSpecID string) (*store.SessionRecord, error) {
	var latest *store.SessionRecord
	for _, rec := range f.sessions {
		if rec.UserID != userID {
			continue
		}
		if jobSpecID != "" && rec.JobSpecID != jobSpecID {
			continue
		}
		if latest == nil || rec.StartedAt.After(latest.StartedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeSessionRepo) List(_ context.Context, userID, jobSpecID string) ([]store.SessionRecord, error) {
	var out []store.SessionRecord
	for _, rec := range f.sessions {
		if rec.UserID != userID {
			continue
		}
		if jobSpecID != "" && rec.JobSpecID != jobSpecID {
			continue
		}
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

// fakeTurnRepo is an append-only in-memory turn log.
type fakeTurnRepo struct {
	turns []store.TurnRecord
}

func (f *fakeTurnRepo) Append(_ context.Context, data store.TurnData) error {
	f.turns = append(f.turns, store.TurnRecord{
		TurnData:  data,
		Sequence:  int64(len(f.turns) + 1),
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (f *fakeTurnRepo) CountForSession(_ context.Context, sessionID string) (int, error) {
	count := 0
	for _, t := range f.turns {
		if t.SessionID == sessionID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTurnRepo) LastMainTurn(_ context.Context, sessionID string) (*store.TurnRecord, error) {
	for i := len(f.turns) - 1; i >= 0; i-- {
		if f.turns[i].SessionID == sessionID && !f.turns[i].IsFollowup {
			copied := f.turns[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTurnRepo) ListForSession(_ context.Context, sessionID string) ([]store.TurnRecord, error) {
	var out []store.TurnRecord
	for _, t := range f.turns {
		if t.SessionID == sessionID {
			out = append(out, t)
		}
	}
	return out, nil
}

// stubJudge returns canned judgments in order, then repeats the last.
type stubJudge struct {
	judgments []*Judgment
	err       error
	calls     []JudgeInput
}

func (s *stubJudge) Judge(_ context.Context, input JudgeInput) (*Judgment, error) {
	s.calls = append(s.calls, input)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.judgments) == 0 {
		return nil, nil
	}
	j := s.judgments[0]
	if len(s.judgments) > 1 {
		s.judgments = s.judgments[1:]
	}
	return j, nil
}

// stubRefiner prefixes text so tests can tell refined output apart.
type stubRefiner struct {
	prefix string
	err    error
	calls  int
}

func (s *stubRefiner) Refine(_ context.Context, text, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.prefix + text, nil
}
