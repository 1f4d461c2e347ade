package store

import (
	"context"
	"fmt"

	"github.com/yonatank/prepair/ent"
	"github.com/yonatank/prepair/ent/jobspec"
	entschema "github.com/yonatank/prepair/ent/schema"
)

// jobSpecRepo implements JobSpecRepo backed by ent.
type jobSpecRepo struct {
	client *ent.Client
}

func (r *jobSpecRepo) Create(ctx context.Context, rec *JobSpecRecord) error {
	builder := r.client.JobSpec.Create().
		SetID(rec.ID).
		SetJdHash(rec.JDHash).
		SetTitle(rec.Title).
		SetRawText(rec.RawText).
		SetCreatedAt(rec.CreatedAt)

	if rec.Profile != nil {
		builder = builder.SetRoleProfile(toProfileData(rec.Profile))
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create job spec: %w", err)
	}
	return nil
}

func (r *jobSpecRepo) Get(ctx context.Context, id string) (*JobSpecRecord, error) {
	row, err := r.client.JobSpec.Query().
		Where(jobspec.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job spec %s: %w", id, err)
	}
	return fromJobSpecRow(row), nil
}

func (r *jobSpecRepo) GetByHash(ctx context.Context, jdHash string) (*JobSpecRecord, error) {
	row, err := r.client.JobSpec.Query().
		Where(jobspec.JdHash(jdHash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job spec by hash: %w", err)
	}
	return fromJobSpecRow(row), nil
}

func fromJobSpecRow(row *ent.JobSpec) *JobSpecRecord {
	return &JobSpecRecord{
		ID:        row.ID,
		JDHash:    row.JdHash,
		Title:     row.Title,
		RawText:   row.RawText,
		Profile:   fromProfileData(row.RoleProfile),
		CreatedAt: row.CreatedAt,
	}
}

func toProfileData(p *RoleProfile) *entschema.RoleProfileData {
	data := &entschema.RoleProfileData{
		RoleTitle:  p.RoleTitle,
		Seniority:  p.Seniority,
		FocusAreas: p.FocusAreas,
	}
	for _, t := range p.Topics {
		data.Topics = append(data.Topics, entschema.TopicWeightData{
			Name:   t.Name,
			Weight: t.Weight,
		})
	}
	return data
}

func fromProfileData(data *entschema.RoleProfileData) *RoleProfile {
	if data == nil {
		return nil
	}
	p := &RoleProfile{
		RoleTitle:  data.RoleTitle,
		Seniority:  data.Seniority,
		FocusAreas: data.FocusAreas,
	}
	for _, t := range data.Topics {
		p.Topics = append(p.Topics, TopicWeight{Name: t.Name, Weight: t.Weight})
	}
	return p
}
