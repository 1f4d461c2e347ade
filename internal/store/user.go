package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yonatank/prepair/ent"
	"github.com/yonatank/prepair/ent/user"
)

// userRepo implements UserRepo backed by ent.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Ensure(ctx context.Context, email, name string) (*UserRecord, error) {
	row, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("lookup user %s: %w", email, err)
	}

	if row == nil {
		row, err = r.client.User.Create().
			SetID(uuid.NewString()).
			SetEmail(email).
			SetName(name).
			SetCreatedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create user %s: %w", email, err)
		}
	}

	return fromUserRow(row), nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*UserRecord, error) {
	row, err := r.client.User.Query().
		Where(user.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return fromUserRow(row), nil
}

func fromUserRow(row *ent.User) *UserRecord {
	return &UserRecord{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
