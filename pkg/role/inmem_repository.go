package role

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InMemoryRoleRepository implements RoleRepository using in-memory storage.
// It mirrors the store-level guarantees of the Postgres repository: names
// are unique among live roles (case-insensitive) and bindings are unique per
// (user, role) pair.
type InMemoryRoleRepository struct {
	mu       sync.RWMutex
	roles    map[uuid.UUID]Role
	bindings map[uuid.UUID]map[uuid.UUID]time.Time // roleID -> userID -> bound at
	seq      int64                                 // creation counter, stands in for the DB clock
}

// NewInMemoryRoleRepository creates a new in-memory role repository
func NewInMemoryRoleRepository() *InMemoryRoleRepository {
	return &InMemoryRoleRepository{
		roles:    make(map[uuid.UUID]Role),
		bindings: make(map[uuid.UUID]map[uuid.UUID]time.Time),
	}
}

// CreateRole creates a new role, rejecting duplicates among live roles
func (r *InMemoryRoleRepository) CreateRole(ctx context.Context, name string) (Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.roles {
		if !existing.DeletedAtValid && strings.EqualFold(existing.Name, name) {
			return Role{}, ErrRoleExists
		}
	}

	r.seq++
	role := Role{
		ID:        uuid.New(),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Unix(0, r.seq),
	}
	r.roles[role.ID] = role
	r.bindings[role.ID] = make(map[uuid.UUID]time.Time)
	return role, nil
}

// GetRoleByName retrieves a live role by name
func (r *InMemoryRoleRepository) GetRoleByName(ctx context.Context, name string) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if !role.DeletedAtValid && strings.EqualFold(role.Name, name) {
			return role, nil
		}
	}
	return Role{}, ErrRoleNotFound
}

// FindRoles returns live roles in creation order
func (r *InMemoryRoleRepository) FindRoles(ctx context.Context) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]Role, 0, len(r.roles))
	for _, role := range r.roles {
		if !role.DeletedAtValid {
			roles = append(roles, role)
		}
	}
	sortByCreation(roles)
	return roles, nil
}

// FindAllRoles returns every role including soft-deleted ones
func (r *InMemoryRoleRepository) FindAllRoles(ctx context.Context) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]Role, 0, len(r.roles))
	for _, role := range r.roles {
		roles = append(roles, role)
	}
	sortByCreation(roles)
	return roles, nil
}

// SetRoleActive flips the active flag on a live role
func (r *InMemoryRoleRepository) SetRoleActive(ctx context.Context, id uuid.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	role, ok := r.roles[id]
	if !ok || role.DeletedAtValid {
		return nil
	}
	role.IsActive = active
	r.roles[id] = role
	return nil
}

// SoftDeleteRole marks a role deleted
func (r *InMemoryRoleRepository) SoftDeleteRole(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	role, ok := r.roles[id]
	if !ok || role.DeletedAtValid {
		return nil
	}
	role.DeletedAt = time.Now()
	role.DeletedAtValid = true
	r.roles[id] = role
	return nil
}

// CountBindings returns the number of users bound to a role
func (r *InMemoryRoleRepository) CountBindings(ctx context.Context, roleID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.bindings[roleID])), nil
}

// AssignRole binds a user to a role; already-bound is a no-op
func (r *InMemoryRoleRepository) AssignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.bindings[roleID]
	if !ok {
		users = make(map[uuid.UUID]time.Time)
		r.bindings[roleID] = users
	}
	if _, bound := users[userID]; bound {
		return nil
	}
	r.seq++
	users[userID] = time.Unix(0, r.seq)
	return nil
}

// RevokeRole removes a binding; a missing binding is a no-op
func (r *InMemoryRoleRepository) RevokeRole(ctx context.Context, userID, roleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if users, ok := r.bindings[roleID]; ok {
		delete(users, userID)
	}
	return nil
}

// FindRolesByUser returns the user's bound live roles in role-creation order
func (r *InMemoryRoleRepository) FindRolesByUser(ctx context.Context, userID uuid.UUID) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var roles []Role
	for roleID, users := range r.bindings {
		if _, bound := users[userID]; !bound {
			continue
		}
		role, ok := r.roles[roleID]
		if !ok || role.DeletedAtValid {
			continue
		}
		roles = append(roles, role)
	}
	sortByCreation(roles)
	return roles, nil
}

// FindActiveRoleNamesByUser returns the names usable in an access check
func (r *InMemoryRoleRepository) FindActiveRoleNamesByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	roles, err := r.FindRolesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, role := range roles {
		if role.IsActive {
			names = append(names, role.Name)
		}
	}
	return names, nil
}

// FindUsersByRole returns the users bound to a role in binding order
func (r *InMemoryRoleRepository) FindUsersByRole(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := r.bindings[roleID]
	userIDs := make([]uuid.UUID, 0, len(users))
	for userID := range users {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool {
		return users[userIDs[i]].Before(users[userIDs[j]])
	})
	return userIDs, nil
}

// WithTx returns the same repository (no-op for in-memory)
func (r *InMemoryRoleRepository) WithTx(tx pgx.Tx) RoleRepository {
	return r
}

func sortByCreation(roles []Role) {
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].CreatedAt.Before(roles[j].CreatedAt)
	})
}
