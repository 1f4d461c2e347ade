package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/yonatank/prepair/internal/interview"
	"github.com/yonatank/prepair/internal/jobspec"
	"github.com/yonatank/prepair/internal/readiness"
	"github.com/yonatank/prepair/internal/roleprofile"
	"github.com/yonatank/prepair/internal/store"
)

// In-memory repos backing a fully wired handler. The services under the
// routes are real; only storage and the LLM steps are faked.

type memUserRepo struct {
	users map[string]*store.UserRecord // by email
}

func (m *memUserRepo) Ensure(_ context.Context, email, name string) (*store.UserRecord, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	u := &store.UserRecord{
		ID:        fmt.Sprintf("user-%d", len(m.users)+1),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	m.users[email] = u
	return u, nil
}

func (m *memUserRepo) Get(_ context.Context, id string) (*store.UserRecord, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type memQuestionRepo struct {
	questions map[string]store.Question
}

func (m *memQuestionRepo) Upsert(_ context.Context, q store.Question) error {
	m.questions[q.ID] = q
	return nil
}

func (m *memQuestionRepo) Get(_ context.Context, id string) (*store.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (m *memQuestionRepo) Query(_ context.Context, qtype, difficulty string) ([]store.Question, error) {
	var out []store.Question
	for _, q := range m.questions {
		if q.Type == qtype && (difficulty == "" || q.Difficulty == difficulty) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memQuestionRepo) Count(_ context.Context) (int, error) {
	return len(m.questions), nil
}

type memHistoryRepo struct{}

func (memHistoryRepo) Record(context.Context, string, string, string, []string, time.Time) error {
	return nil
}

func (memHistoryRepo) RecentQuestionIDs(context.Context, string, string, int) (map[string]bool, error) {
	return map[string]bool{}, nil
}

type memSessionRepo struct {
	sessions map[string]*store.SessionRecord
}

func (m *memSessionRepo) Create(_ context.Context, rec *store.SessionRecord) error {
	cp := *rec
	m.sessions[rec.ID] = &cp
	return nil
}

func (m *memSessionRepo) Get(_ context.Context, id string) (*store.SessionRecord, error) {
	rec, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memSessionRepo) SaveState(_ context.Context, id, stateJSON string) error {
	if rec, ok := m.sessions[id]; ok {
		rec.ConversationState = stateJSON
	}
	return nil
}

func (m *memSessionRepo) End(_ context.Context, id string, at time.Time) error {
	if rec, ok := m.sessions[id]; ok && rec.EndedAt == nil {
		rec.EndedAt = &at
	}
	return nil
}

func (m *memSessionRepo) Latest(_ context.Context, userID, jobSpecID string) (*store.SessionRecord, error) {
	list, _ := m.List(nil, userID, jobSpecID)
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (m *memSessionRepo) List(_ context.Context, userID, jobSpecID string) ([]store.SessionRecord, error) {
	var out []store.SessionRecord
	for _, rec := range m.sessions {
		if rec.UserID == userID && (jobSpecID == "" || rec.JobSpecID == jobSpecID) {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

type memJobSpecRepo struct {
	specs map[string]*store.JobSpecRecord
}

func (m *memJobSpecRepo) Create(_ context.Context, rec *store.JobSpecRecord) error {
	m.specs[rec.ID] = rec
	return nil
}

func (m *memJobSpecRepo) Get(_ context.Context, id string) (*store.JobSpecRecord, error) {
	return m.specs[id], nil
}

func (m *memJobSpecRepo) GetByHash(_ context.Context, jdHash string) (*store.JobSpecRecord, error) {
	for _, rec := range m.specs {
		if rec.JDHash == jdHash {
			return rec, nil
		}
	}
	return nil, nil
}

type memTurnRepo struct {
	turns []store.TurnRecord
}

func (m *memTurnRepo) Append(_ context.Context, data store.TurnData) error {
	m.turns = append(m.turns, store.TurnRecord{
		TurnData:  data,
		Sequence:  int64(len(m.turns) + 1),
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (m *memTurnRepo) CountForSession(_ context.Context, sessionID string) (int, error) {
	n := 0
	for _, t := range m.turns {
		if t.SessionID == sessionID {
			n++
		}
	}
	return n, nil
}

func (m *memTurnRepo) LastMainTurn(_ context.Context, sessionID string) (*store.TurnRecord, error) {
	for i := len(m.turns) - 1; i >= 0; i-- {
		if m.turns[i].SessionID == sessionID && !m.turns[i].IsFollowup {
			return &m.turns[i], nil
		}
	}
	return nil, nil
}

func (m *memTurnRepo) ListForSession(_ context.Context, sessionID string) ([]store.TurnRecord, error) {
	var out []store.TurnRecord
	for _, t := range m.turns {
		if t.SessionID == sessionID {
			out = append(out, t)
		}
	}
	return out, nil
}

type memAnalysisRepo struct{}

func (memAnalysisRepo) Append(context.Context, *store.AnalysisRecord) error { return nil }
func (memAnalysisRepo) Latest(context.Context, string, string) (*store.AnalysisRecord, error) {
	return nil, nil
}

type memSnapshotRepo struct {
	records []*store.SnapshotRecord
}

func (m *memSnapshotRepo) Append(_ context.Context, rec *store.SnapshotRecord) error {
	rec.ID = len(m.records) + 1
	m.records = append(m.records, rec)
	return nil
}

func (m *memSnapshotRepo) Latest(_ context.Context, userID, jobSpecID string) (*store.SnapshotRecord, error) {
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].UserID == userID && (jobSpecID == "" || m.records[i].JobSpecID == jobSpecID) {
			return m.records[i], nil
		}
	}
	return nil, nil
}

func (m *memSnapshotRepo) Recent(_ context.Context, userID string, n int) ([]store.SnapshotRecord, error) {
	var out []store.SnapshotRecord
	for i := len(m.records) - 1; i >= 0 && len(out) < n; i-- {
		if m.records[i].UserID == userID {
			out = append(out, *m.records[i])
		}
	}
	return out, nil
}

// advanceJudge always moves to the next question.
type advanceJudge struct{}

func (advanceJudge) Judge(context.Context, interview.JudgeInput) (*interview.Judgment, error) {
	return &interview.Judgment{
		Action:            interview.ActionAdvance,
		Message:           "Noted.",
		SatisfactionScore: 0.7,
	}, nil
}

// passthroughRefiner presents questions unchanged.
type passthroughRefiner struct{}

func (passthroughRefiner) Refine(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

func newTestServer(t *testing.T, seedBank bool) http.Handler {
	t.Helper()

	users := &memUserRepo{users: make(map[string]*store.UserRecord)}
	questions := &memQuestionRepo{questions: make(map[string]store.Question)}
	sessions := &memSessionRepo{sessions: make(map[string]*store.SessionRecord)}
	jobSpecs := &memJobSpecRepo{specs: make(map[string]*store.JobSpecRecord)}
	turns := &memTurnRepo{}

	if seedBank {
		for i := 0; i < 6; i++ {
			questions.Upsert(nil, store.Question{
				ID:     fmt.Sprintf("open:%d", i),
				Type:   "open",
				Text:   fmt.Sprintf("Open question %d", i),
				Topics: []string{"go"},
			})
			questions.Upsert(nil, store.Question{
				ID:         fmt.Sprintf("code:%d", i),
				Type:       "code",
				Text:       fmt.Sprintf("Code question %d", i),
				Topics:     []string{"algorithms"},
				Difficulty: "Medium",
			})
		}
	}

	cfg := interview.DefaultPlannerConfig()
	cfg.Seed = 42
	planner := interview.NewPlanner(questions, memHistoryRepo{}, sessions, cfg)
	service := interview.NewService(planner, sessions, jobSpecs, memHistoryRepo{})
	engine := interview.NewEngine(sessions, questions, turns, advanceJudge{}, passthroughRefiner{})

	extractor := roleprofile.NewExtractor(nil, roleprofile.DefaultConfig())
	specService := jobspec.NewService(jobSpecs, extractor)
	progress := readiness.NewAggregator(memAnalysisRepo{}, sessions, turns, &memSnapshotRepo{})

	return NewHandler(users, specService, service, engine, progress).Router()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not a JSON object: %q", w.Body.String())
		}
	}
	return w, decoded
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, false)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestEnsureUser(t *testing.T) {
	h := newTestServer(t, false)

	w, body := doJSON(t, h, http.MethodPost, "/users/ensure", `{"email": "a@b.test", "name": "A"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	id, _ := body["user_id"].(string)
	if id == "" {
		t.Fatalf("body = %v, want user_id", body)
	}

	// Same email returns the same user.
	_, again := doJSON(t, h, http.MethodPost, "/users/ensure", `{"email": "a@b.test"}`)
	if again["user_id"] != id {
		t.Errorf("user_id = %v, want %v", again["user_id"], id)
	}

	w, _ = doJSON(t, h, http.MethodPost, "/users/ensure", `{"name": "no email"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing email status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, h, http.MethodPost, "/users/ensure", `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d, want 400", w.Code)
	}
}

func TestIngestJD(t *testing.T) {
	h := newTestServer(t, false)

	w, body := doJSON(t, h, http.MethodPost, "/jd/ingest", `{"jd_text": "Senior Go engineer, SQL required."}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	specID, _ := body["job_spec_id"].(string)
	if specID == "" {
		t.Fatalf("body = %v, want job_spec_id", body)
	}
	profile, _ := body["profile"].(map[string]any)
	if profile == nil || profile["seniority"] != "senior" {
		t.Errorf("profile = %v, want extracted seniority", profile)
	}

	// Duplicate text returns the existing spec with 200.
	w, body = doJSON(t, h, http.MethodPost, "/jd/ingest", `{"jd_text": "Senior Go engineer, SQL required."}`)
	if w.Code != http.StatusOK {
		t.Errorf("duplicate status = %d, want 200", w.Code)
	}
	if body["job_spec_id"] != specID {
		t.Errorf("duplicate job_spec_id = %v, want %v", body["job_spec_id"], specID)
	}

	w, body = doJSON(t, h, http.MethodGet, "/jd/"+specID, "")
	if w.Code != http.StatusOK || body["job_spec_id"] != specID {
		t.Errorf("get status = %d, body %v", w.Code, body)
	}

	w, _ = doJSON(t, h, http.MethodGet, "/jd/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing spec status = %d, want 404", w.Code)
	}

	w, _ = doJSON(t, h, http.MethodPost, "/jd/ingest", `{"cv_text": "cv only"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty jd_text status = %d, want 400", w.Code)
	}
}

func TestStartInterview(t *testing.T) {
	h := newTestServer(t, true)

	w, body := doJSON(t, h, http.MethodPost, "/interviews",
		`{"user_id": "u1", "num_open": 2, "num_code": 1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if id, _ := body["session_id"].(string); id == "" {
		t.Error("missing session_id")
	}
	plan, _ := body["plan"].([]any)
	if len(plan) != 3 {
		t.Errorf("plan length = %d, want 3", len(plan))
	}

	w, _ = doJSON(t, h, http.MethodPost, "/interviews", `{"num_open": 2}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing user_id status = %d, want 400", w.Code)
	}
}

func TestStartInterview_EmptyBank(t *testing.T) {
	h := newTestServer(t, false)

	w, _ := doJSON(t, h, http.MethodPost, "/interviews", `{"user_id": "u1"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestProcessTurn(t *testing.T) {
	h := newTestServer(t, true)

	_, started := doJSON(t, h, http.MethodPost, "/interviews",
		`{"user_id": "u1", "num_open": 1, "num_code": 1}`)
	sessionID, _ := started["session_id"].(string)
	if sessionID == "" {
		t.Fatal("start did not return a session id")
	}

	w, body := doJSON(t, h, http.MethodPost, "/interviews/"+sessionID+"/turn",
		`{"transcript": "my answer", "elapsed_secs": 30}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if body["action"] != "advance" {
		t.Errorf("action = %v, want advance", body["action"])
	}

	w, _ = doJSON(t, h, http.MethodPost, "/interviews/nope/turn", `{"transcript": "x"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", w.Code)
	}
}

func TestProgressOverview(t *testing.T) {
	h := newTestServer(t, false)

	w, _ := doJSON(t, h, http.MethodGet, "/progress/overview?user_id=u1", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, h, http.MethodGet, "/progress/overview", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing user_id status = %d, want 400", w.Code)
	}
}
