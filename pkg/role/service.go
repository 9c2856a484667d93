package role

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// RoleService provides methods for role lifecycle and user-role bindings
type RoleService struct {
	repo RoleRepository
}

// NewRoleService creates a new role service
func NewRoleService(repo RoleRepository) *RoleService {
	return &RoleService{
		repo: repo,
	}
}

// CreateRole adds a new role. The name must match the allowed pattern and
// not collide with a live role; new roles start active.
func (s *RoleService) CreateRole(ctx context.Context, name string) (Role, error) {
	if !IsValidRoleName(name) {
		return Role{}, ErrInvalidRoleName
	}

	// Duplicates are settled by the store's unique index, not a lookup
	// here, so concurrent creates of the same name cannot both win.
	created, err := s.repo.CreateRole(ctx, name)
	if err != nil {
		return Role{}, err
	}

	slog.Info("Created role", "role", created.Name)
	return created, nil
}

// DeleteRole soft-deletes a role with no bindings. A role that is still
// assigned to users is left untouched: the caller sees success and the role
// remains queryable. Administrators revoke the bindings first if they really
// want it gone.
func (s *RoleService) DeleteRole(ctx context.Context, name string) error {
	existing, err := s.repo.GetRoleByName(ctx, name)
	if err != nil {
		return err
	}

	count, err := s.repo.CountBindings(ctx, existing.ID)
	if err != nil {
		return fmt.Errorf("failed to count role bindings: %w", err)
	}
	if count > 0 {
		slog.Warn("Refusing to delete role still in use", "role", existing.Name, "bindings", count)
		return nil
	}

	if err := s.repo.SoftDeleteRole(ctx, existing.ID); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	slog.Info("Deleted role", "role", existing.Name)
	return nil
}

// ActivateRole makes a role eligible for access checks again. Idempotent.
func (s *RoleService) ActivateRole(ctx context.Context, name string) error {
	return s.setActive(ctx, name, true)
}

// DeactivateRole makes a role ineligible for access checks without touching
// its bindings. Idempotent.
func (s *RoleService) DeactivateRole(ctx context.Context, name string) error {
	return s.setActive(ctx, name, false)
}

func (s *RoleService) setActive(ctx context.Context, name string, active bool) error {
	existing, err := s.repo.GetRoleByName(ctx, name)
	if err != nil {
		return err
	}
	if existing.IsActive == active {
		return nil
	}
	if err := s.repo.SetRoleActive(ctx, existing.ID, active); err != nil {
		return fmt.Errorf("failed to update role active flag: %w", err)
	}
	slog.Info("Updated role active flag", "role", existing.Name, "active", active)
	return nil
}

// AssignRole binds a user to a named role. Deactivated roles are still
// assignable; only access checks care about the active flag. Assigning a
// role the user already holds is a no-op.
func (s *RoleService) AssignRole(ctx context.Context, userID uuid.UUID, name string) error {
	existing, err := s.repo.GetRoleByName(ctx, name)
	if err != nil {
		return err
	}
	return s.repo.AssignRole(ctx, userID, existing.ID)
}

// RevokeRole removes a user's binding to a named role. Revoking a binding
// that does not exist succeeds silently; only an unknown role name is an
// error.
func (s *RoleService) RevokeRole(ctx context.Context, userID uuid.UUID, name string) error {
	existing, err := s.repo.GetRoleByName(ctx, name)
	if err != nil {
		return err
	}
	return s.repo.RevokeRole(ctx, userID, existing.ID)
}

// RolesForUser returns the roles bound to a user in role-creation order,
// including deactivated ones. Display path only; access checks go through
// ActiveRoleNamesForUser.
func (s *RoleService) RolesForUser(ctx context.Context, userID uuid.UUID) ([]Role, error) {
	return s.repo.FindRolesByUser(ctx, userID)
}

// ActiveRoleNamesForUser returns the role names that can satisfy an access
// check for the given user
func (s *RoleService) ActiveRoleNamesForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.repo.FindActiveRoleNamesByUser(ctx, userID)
}

// UsersForRole returns the ids of users bound to the named role
func (s *RoleService) UsersForRole(ctx context.Context, name string) ([]uuid.UUID, error) {
	existing, err := s.repo.GetRoleByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.repo.FindUsersByRole(ctx, existing.ID)
}

// GetRoleByName retrieves a live role by name
func (s *RoleService) GetRoleByName(ctx context.Context, name string) (Role, error) {
	return s.repo.GetRoleByName(ctx, name)
}

// FindRoles returns roles in creation order, optionally including
// soft-deleted ones
func (s *RoleService) FindRoles(ctx context.Context, includeDeleted bool) ([]Role, error) {
	if includeDeleted {
		return s.repo.FindAllRoles(ctx)
	}
	return s.repo.FindRoles(ctx)
}

// ResolveRequiredRoles checks that every configured guard token names a live
// role. The first unknown token is reported as ErrUnknownRequiredRole.
func (s *RoleService) ResolveRequiredRoles(ctx context.Context, names []string) error {
	for _, name := range names {
		if _, err := s.repo.GetRoleByName(ctx, name); err != nil {
			if errors.Is(err, ErrRoleNotFound) {
				return ErrUnknownRequiredRole{Name: name}
			}
			return err
		}
	}
	return nil
}
