package ingest

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/yonatank/prepair/internal/store"
)

type fakeQuestionRepo struct {
	questions map[string]store.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[string]store.Question)}
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
		if q.Type == qtype && (difficulty == "" || q.Difficulty == difficulty) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeQuestionRepo) Count(_ context.Context) (int, error) {
	return len(f.questions), nil
}

func TestNormalizeTopics(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{`["arrays", "sorting"]`, []string{"arrays", "sorting"}},
		{`["arrays", ""]`, []string{"arrays"}},
		{`"arrays"`, []string{"arrays"}},
		{"arrays, sorting , ", []string{"arrays", "sorting"}},
		{"arrays", []string{"arrays"}},
	}

	for _, tt := range tests {
		got := NormalizeTopics(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NormalizeTopics(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIngestOpen(t *testing.T) {
	csv := strings.Join([]string{
		`question,topics,category`,
		`"What is a deadlock?","[""concurrency"", ""os""]",systems`,
		`"Explain REST.",,web`,
		`"",orphan,misc`,
	}, "\n")

	repo := newFakeQuestionRepo()
	loader := NewLoader(repo)

	res, err := loader.IngestOpen(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ingested != 2 || res.Skipped != 1 {
		t.Errorf("result = %+v, want 2 ingested, 1 skipped", res)
	}

	open, _ := repo.Query(context.Background(), "open", "")
	if len(open) != 2 {
		t.Fatalf("bank = %d open questions, want 2", len(open))
	}
	for _, q := range open {
		if !strings.HasPrefix(q.ID, "open:") {
			t.Errorf("id = %q, want open: prefix", q.ID)
		}
		if q.Source != "csv" {
			t.Errorf("source = %q, want csv", q.Source)
		}
	}

	var deadlock store.Question
	for _, q := range open {
		if strings.Contains(q.Text, "deadlock") {
			deadlock = q
		}
	}
	if !reflect.DeepEqual(deadlock.Topics, []string{"concurrency", "os"}) {
		t.Errorf("topics = %v", deadlock.Topics)
	}

	// The topic-less row falls back to its category.
	for _, q := range open {
		if strings.Contains(q.Text, "REST") && !reflect.DeepEqual(q.Topics, []string{"web"}) {
			t.Errorf("category fallback topics = %v, want [web]", q.Topics)
		}
	}
}

func TestIngestOpen_DedupByNormalizedText(t *testing.T) {
	csv := strings.Join([]string{
		`question_id,question,topics`,
		`1,"What is a   Deadlock?",concurrency`,
		`2,"what is a deadlock?",concurrency`,
	}, "\n")

	repo := newFakeQuestionRepo()
	res, err := NewLoader(repo).IngestOpen(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ingested != 1 || res.Skipped != 1 {
		t.Errorf("result = %+v, want near-duplicate skipped", res)
	}
}

func TestIngestCode(t *testing.T) {
	csv := strings.Join([]string{
		`question_id,question,formatted_title,topics,difficulty,solution`,
		`42,,"Two Sum","[""arrays""]",easy,"use a map"`,
	}, "\n")

	repo := newFakeQuestionRepo()
	res, err := NewLoader(repo).IngestCode(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ingested != 1 {
		t.Fatalf("result = %+v, want 1 ingested", res)
	}

	q, _ := repo.Get(context.Background(), "code:42")
	if q == nil {
		t.Fatal("question code:42 not found")
	}
	if q.Text != "Two Sum" {
		t.Errorf("text = %q, want formatted_title fallback", q.Text)
	}
	if q.Difficulty != "Easy" {
		t.Errorf("difficulty = %q, want Easy", q.Difficulty)
	}
	if q.SolutionText != "use a map" {
		t.Errorf("solution = %q", q.SolutionText)
	}
}

func TestQuestionID_HashFallbackIsStable(t *testing.T) {
	row := map[string]string{"question": "What is a deadlock?"}
	a := questionID("open", row, 0)
	b := questionID("open", row, 5)
	if a != b {
		t.Errorf("hash-derived ids differ: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "open:") || len(a) != len("open:")+12 {
		t.Errorf("id = %q, want open: plus 12 hex chars", a)
	}
}

func TestMergeSolutions(t *testing.T) {
	repo := newFakeQuestionRepo()
	repo.Upsert(context.Background(), store.Question{ID: "code:1", Type: "code", Text: "Q1"})
	repo.Upsert(context.Background(), store.Question{ID: "code:2", Type: "code", Text: "Q2", SolutionText: "existing"})

	csv := strings.Join([]string{
		`question_id,solution_text`,
		`1,"new solution"`,
		`2,"overwrite attempt"`,
		`3,"no such question"`,
	}, "\n")

	res, err := NewLoader(repo).MergeSolutions(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Merged != 1 || res.Skipped != 2 {
		t.Errorf("result = %+v, want 1 merged, 2 skipped", res)
	}

	q1, _ := repo.Get(context.Background(), "code:1")
	if q1.SolutionText != "new solution" {
		t.Errorf("code:1 solution = %q", q1.SolutionText)
	}
	q2, _ := repo.Get(context.Background(), "code:2")
	if q2.SolutionText != "existing" {
		t.Errorf("code:2 solution = %q, must not be overwritten", q2.SolutionText)
	}
}

func TestReadRows_ShortRowsTolerated(t *testing.T) {
	csv := "question,topics\n\"only question\"\n"
	rows, err := readRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0]["question"] != "only question" || rows[0]["topics"] != "" {
		t.Errorf("rows = %v", rows)
	}
}
