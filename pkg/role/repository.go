package role

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rolegate/rolegate/pkg/role/roledb"
)

// RoleRepository defines the interface for role store operations.
// Implementations must reject duplicate role names and duplicate bindings at
// the store itself so concurrent creates cannot race past a service-level
// check.
type RoleRepository interface {
	CreateRole(ctx context.Context, name string) (Role, error)
	GetRoleByName(ctx context.Context, name string) (Role, error)
	FindRoles(ctx context.Context) ([]Role, error)
	FindAllRoles(ctx context.Context) ([]Role, error)
	SetRoleActive(ctx context.Context, id uuid.UUID, active bool) error
	SoftDeleteRole(ctx context.Context, id uuid.UUID) error
	CountBindings(ctx context.Context, roleID uuid.UUID) (int64, error)

	// AssignRole and RevokeRole are idempotent: assigning an existing
	// binding and revoking a missing one are both no-ops.
	AssignRole(ctx context.Context, userID, roleID uuid.UUID) error
	RevokeRole(ctx context.Context, userID, roleID uuid.UUID) error

	FindRolesByUser(ctx context.Context, userID uuid.UUID) ([]Role, error)
	FindActiveRoleNamesByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	FindUsersByRole(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error)

	// Transaction support
	WithTx(tx pgx.Tx) RoleRepository
}

// PostgresRoleRepository implements RoleRepository using roledb.Queries
type PostgresRoleRepository struct {
	queries *roledb.Queries
}

// NewPostgresRoleRepository creates a new PostgreSQL-based role repository
func NewPostgresRoleRepository(queries *roledb.Queries) *PostgresRoleRepository {
	return &PostgresRoleRepository{
		queries: queries,
	}
}

// CreateRole inserts a new role. The partial unique index on live role names
// turns a duplicate insert into ErrRoleExists.
func (r *PostgresRoleRepository) CreateRole(ctx context.Context, name string) (Role, error) {
	dbRole, err := r.queries.CreateRole(ctx, name)
	if err != nil {
		if isUniqueViolation(err) {
			return Role{}, ErrRoleExists
		}
		return Role{}, err
	}
	return toRole(dbRole), nil
}

// GetRoleByName retrieves a live (non-deleted) role by name
func (r *PostgresRoleRepository) GetRoleByName(ctx context.Context, name string) (Role, error) {
	dbRole, err := r.queries.GetRoleByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Role{}, ErrRoleNotFound
		}
		return Role{}, err
	}
	return toRole(dbRole), nil
}

// FindRoles returns all live roles in creation order
func (r *PostgresRoleRepository) FindRoles(ctx context.Context) ([]Role, error) {
	dbRoles, err := r.queries.FindRoles(ctx)
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

// FindAllRoles returns every role including soft-deleted ones
func (r *PostgresRoleRepository) FindAllRoles(ctx context.Context) ([]Role, error) {
	dbRoles, err := r.queries.FindAllRoles(ctx)
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

// SetRoleActive flips the active flag on a live role
func (r *PostgresRoleRepository) SetRoleActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.queries.SetRoleActive(ctx, roledb.SetRoleActiveParams{
		ID:       id,
		IsActive: active,
	})
}

// SoftDeleteRole marks a role deleted; the row is kept for audit
func (r *PostgresRoleRepository) SoftDeleteRole(ctx context.Context, id uuid.UUID) error {
	return r.queries.SoftDeleteRole(ctx, id)
}

// CountBindings returns the number of users bound to a role
func (r *PostgresRoleRepository) CountBindings(ctx context.Context, roleID uuid.UUID) (int64, error) {
	return r.queries.CountRoleBindings(ctx, roleID)
}

// AssignRole binds a user to a role; already-bound is a no-op
func (r *PostgresRoleRepository) AssignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	return r.queries.AssignUserRole(ctx, roledb.AssignUserRoleParams{
		UserID: userID,
		RoleID: roleID,
	})
}

// RevokeRole removes a binding; a missing binding is a no-op
func (r *PostgresRoleRepository) RevokeRole(ctx context.Context, userID, roleID uuid.UUID) error {
	_, err := r.queries.RevokeUserRole(ctx, roledb.RevokeUserRoleParams{
		UserID: userID,
		RoleID: roleID,
	})
	return err
}

// FindRolesByUser returns the user's bound roles, inactive ones included,
// in role-creation order
func (r *PostgresRoleRepository) FindRolesByUser(ctx context.Context, userID uuid.UUID) ([]Role, error) {
	dbRoles, err := r.queries.FindRolesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRoles(dbRoles), nil
}

// FindActiveRoleNamesByUser returns only the names that can satisfy an
// access check
func (r *PostgresRoleRepository) FindActiveRoleNamesByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return r.queries.FindActiveRoleNamesByUser(ctx, userID)
}

// FindUsersByRole returns the users bound to a role in binding order
func (r *PostgresRoleRepository) FindUsersByRole(ctx context.Context, roleID uuid.UUID) ([]uuid.UUID, error) {
	return r.queries.FindUsersByRole(ctx, roleID)
}

// WithTx returns a new repository with the given transaction
func (r *PostgresRoleRepository) WithTx(tx pgx.Tx) RoleRepository {
	if tx == nil {
		return r
	}
	return &PostgresRoleRepository{
		queries: r.queries.WithTx(tx),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// toRole converts a database Role to the domain model
func toRole(dbRole roledb.Role) Role {
	return Role{
		ID:             dbRole.ID,
		Name:           dbRole.Name,
		IsActive:       dbRole.IsActive,
		CreatedAt:      dbRole.CreatedAt,
		DeletedAt:      dbRole.DeletedAt.Time,
		DeletedAtValid: dbRole.DeletedAt.Valid,
	}
}

func toRoles(dbRoles []roledb.Role) []Role {
	roles := make([]Role, len(dbRoles))
	for i, dbRole := range dbRoles {
		roles[i] = toRole(dbRole)
	}
	return roles
}
