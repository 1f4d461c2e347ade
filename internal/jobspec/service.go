// Package jobspec manages job descriptions and their extracted profiles.
package jobspec

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yonatank/prepair/internal/roleprofile"
	"github.com/yonatank/prepair/internal/store"
)

// Service deduplicates job descriptions by content hash and extracts a
// role profile for new ones.
type Service struct {
	jobSpecs  store.JobSpecRepo
	extractor *roleprofile.Extractor
	now       func() time.Time
}

// NewService creates a job spec service.
func NewService(jobSpecs store.JobSpecRepo, extractor *roleprofile.Extractor) *Service {
	return &Service{
		jobSpecs:  jobSpecs,
		extractor: extractor,
		now:       time.Now,
	}
}

// Hash returns the content hash used for deduplication.
func Hash(jdText string) string {
	sum := md5.Sum([]byte(jdText))
	return hex.EncodeToString(sum[:])
}

// Ingest stores a job description, returning the existing record when
// the same text was ingested before. The second return value reports
// whether a new record was created.
func (s *Service) Ingest(ctx context.Context, jdText, cvText string) (*store.JobSpecRecord, bool, error) {
	jdHash := Hash(jdText)

	existing, err := s.jobSpecs.GetByHash(ctx, jdHash)
	if err != nil {
		return nil, false, fmt.Errorf("load job spec by hash: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	profile := s.extractor.Extract(ctx, jdText, cvText)
	rec := &store.JobSpecRecord{
		ID:        uuid.NewString(),
		JDHash:    jdHash,
		Title:     profile.RoleTitle,
		RawText:   jdText,
		Profile:   profile,
		CreatedAt: s.now().UTC(),
	}
	if err := s.jobSpecs.Create(ctx, rec); err != nil {
		return nil, false, fmt.Errorf("create job spec: %w", err)
	}
	return rec, true, nil
}

// Get returns a job spec by id, or nil when it does not exist.
func (s *Service) Get(ctx context.Context, id string) (*store.JobSpecRecord, error) {
	return s.jobSpecs.Get(ctx, id)
}
