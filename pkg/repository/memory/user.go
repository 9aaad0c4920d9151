package memory

import (
	"context"
	"sort"
	"time"

	"github.com/inno-lab/innovaid/pkg/domain/model"
	"github.com/inno-lab/innovaid/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type userRepository struct {
	store *store
}

// copyUser creates a deep copy of a user
func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, exists := r.store.users[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
	}

	return copyUser(u), nil
}

func (r *userRepository) ListByType(ctx context.Context, userType types.UserType) ([]*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := []*model.User{}
	for _, u := range r.store.users {
		if u.Type != userType {
			continue
		}
		users = append(users, copyUser(u))
	}

	sortUsers(users)
	return users, nil
}

func (r *userRepository) ListByOrganisationRole(ctx context.Context, orgIDs []string, role types.OrgRole) ([]*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]bool, len(orgIDs))
	for _, id := range orgIDs {
		wanted[id] = true
	}

	users := []*model.User{}
	for _, u := range r.store.users {
		if u.OrganisationRole != role || !wanted[u.OrganisationID] {
			continue
		}
		users = append(users, copyUser(u))
	}

	sortUsers(users)
	return users, nil
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := copyUser(user)
	stored.UpdatedAt = time.Now().UTC()
	r.store.users[stored.ID] = stored
	return nil
}

func (r *userRepository) SaveMany(ctx context.Context, users []*model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now().UTC()
	for _, user := range users {
		stored := copyUser(user)
		stored.UpdatedAt = now
		r.store.users[stored.ID] = stored
	}
	return nil
}

func sortUsers(users []*model.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})
}
