package cvanalysis

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yonatank/prepair/internal/llm"
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
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UserID == userID && f.records[i].JobSpecID == jobSpecID {
			return f.records[i], nil
		}
	}
	return nil, nil
}

func TestAnalyze(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"match_score": 0.72,
			"strengths": ["Go", "SQL"],
			"gaps": ["Kubernetes"],
			"suggestions": ["Build a small k8s project"]
		}`),
	})
	repo := &fakeAnalysisRepo{}
	a := NewAnalyzer(mock, repo, DefaultConfig())

	rec, err := a.Analyze(context.Background(), "user-1", "jd-1", "my cv", "the jd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.MatchScore != 0.72 {
		t.Errorf("match score = %v", rec.MatchScore)
	}
	if len(rec.Strengths) != 2 || len(rec.Gaps) != 1 || len(rec.Suggestions) != 1 {
		t.Errorf("record = %+v", rec)
	}
	if rec.UserID != "user-1" || rec.JobSpecID != "jd-1" {
		t.Errorf("ids = %q/%q", rec.UserID, rec.JobSpecID)
	}
	if rec.ID == "" || rec.CreatedAt.IsZero() {
		t.Errorf("record missing id or timestamp: %+v", rec)
	}

	if len(repo.records) != 1 || repo.records[0] != rec {
		t.Errorf("record not persisted")
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "cv-analysis" {
		t.Errorf("schema = %v, want cv-analysis", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "my cv") ||
		!strings.Contains(req.Messages[0].Content, "the jd") {
		t.Errorf("prompt missing inputs: %q", req.Messages[0].Content)
	}
}

func TestAnalyze_RejectsBadResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"score above one", `{"match_score": 1.3, "strengths": [], "gaps": [], "suggestions": []}`},
		{"negative score", `{"match_score": -0.1, "strengths": [], "gaps": [], "suggestions": []}`},
		{"not json", `match looks great`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			repo := &fakeAnalysisRepo{}
			a := NewAnalyzer(mock, repo, DefaultConfig())

			if _, err := a.Analyze(context.Background(), "u", "j", "cv", "jd"); err == nil {
				t.Fatal("expected error")
			}
			if len(repo.records) != 0 {
				t.Errorf("bad analysis must not be persisted")
			}
		})
	}
}

func TestAnalyze_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue
	a := NewAnalyzer(mock, &fakeAnalysisRepo{}, DefaultConfig())

	if _, err := a.Analyze(context.Background(), "u", "j", "cv", "jd"); err == nil {
		t.Fatal("expected error")
	}
}
