package role

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Role represents a named permission bucket a user can hold.
// Soft-deleted roles keep the active flag they had when deleted.
type Role struct {
	ID             uuid.UUID
	Name           string
	IsActive       bool
	CreatedAt      time.Time
	DeletedAt      time.Time
	DeletedAtValid bool
}

// UserRoleBinding links one user to one role. A user either has a role or
// does not; duplicates are rejected by the store.
type UserRoleBinding struct {
	UserID    uuid.UUID
	RoleID    uuid.UUID
	CreatedAt time.Time
}

// Role names start with a letter and are at least three characters long.
// Underscore and dash are the only separators allowed.
var roleNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{2,63}$`)

// IsValidRoleName reports whether name is acceptable for CreateRole.
func IsValidRoleName(name string) bool {
	return roleNamePattern.MatchString(name)
}
