package identity

import (
	"context"

	"github.com/estoque/backend/internal/domain/identity"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
)

type fakeUserRepo struct {
	order []uuid.UUID
	users map[uuid.UUID]*identity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*identity.User)}
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, shared.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]identity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]identity.User, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.users[id])
	}
	return out, nil
}

func (f *fakeUserRepo) Save(ctx context.Context, user *identity.User) error {
	if f.err != nil {
		return f.err
	}
	clone := *user
	if _, exists := f.users[user.ID]; !exists {
		f.order = append(f.order, user.ID)
	}
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.users)), nil
}
