package jobspec

import (
	"context"
	"testing"

	"github.com/yonatank/prepair/internal/roleprofile"
	"github.com/yonatank/prepair/internal/store"
)

type fakeJobSpecRepo struct {
	byID   map[string]*store.JobSpecRecord
	byHash map[string]*store.JobSpecRecord
}

func newFakeJobSpecRepo() *fakeJobSpecRepo {
	return &fakeJobSpecRepo{
		byID:   make(map[string]*store.JobSpecRecord),
		byHash: make(map[string]*store.JobSpecRecord),
	}
}

func (f *fakeJobSpecRepo) Create(_ context.Context, rec *store.JobSpecRecord) error {
	f.byID[rec.ID] = rec
	f.byHash[rec.JDHash] = rec
	return nil
}

func (f *fakeJobSpecRepo) Get(_ context.Context, id string) (*store.JobSpecRecord, error) {
	return f.byID[id], nil
}

func (f *fakeJobSpecRepo) GetByHash(_ context.Context, jdHash string) (*store.JobSpecRecord, error) {
	return f.byHash[jdHash], nil
}

func newTestService() (*Service, *fakeJobSpecRepo) {
	repo := newFakeJobSpecRepo()
	// A nil provider makes the extractor use its keyword fallback,
	// keeping these tests free of canned LLM responses.
	extractor := roleprofile.NewExtractor(nil, roleprofile.DefaultConfig())
	return NewService(repo, extractor), repo
}

func TestIngest_CreatesNewRecord(t *testing.T) {
	svc, repo := newTestService()

	rec, created, err := svc.Ingest(context.Background(), "Senior Go engineer wanted.", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}
	if rec.ID == "" || rec.JDHash != Hash("Senior Go engineer wanted.") {
		t.Errorf("record = %+v", rec)
	}
	if rec.Profile == nil || len(rec.Profile.Topics) == 0 {
		t.Errorf("profile = %+v, want extracted topics", rec.Profile)
	}
	if rec.Title != rec.Profile.RoleTitle {
		t.Errorf("title = %q, want profile role title %q", rec.Title, rec.Profile.RoleTitle)
	}
	if len(repo.byID) != 1 {
		t.Errorf("stored records = %d, want 1", len(repo.byID))
	}
}

func TestIngest_DedupesByHash(t *testing.T) {
	svc, repo := newTestService()

	first, _, err := svc.Ingest(context.Background(), "Backend role, Python and SQL.", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, created, err := svc.Ingest(context.Background(), "Backend role, Python and SQL.", "cv text ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("created = true, want false for duplicate text")
	}
	if second.ID != first.ID {
		t.Errorf("dedupe returned %q, want existing %q", second.ID, first.ID)
	}
	if len(repo.byID) != 1 {
		t.Errorf("stored records = %d, want 1", len(repo.byID))
	}
}

func TestHash_IsStable(t *testing.T) {
	if Hash("abc") != Hash("abc") {
		t.Error("hash differs for identical text")
	}
	if Hash("abc") == Hash("abd") {
		t.Error("hash collides for different text")
	}
}
