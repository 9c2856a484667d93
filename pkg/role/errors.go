package role

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoleName is returned when a role name fails validation
	ErrInvalidRoleName = errors.New("role name invalid")
	// ErrRoleNotFound is returned when no live role matches the given name
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleExists is returned when an active role with the same name already exists
	ErrRoleExists = errors.New("role already exists")
)

// ErrUnknownRequiredRole is returned when a route guard is configured with a
// role name that does not resolve to any live role. This is an operator
// mistake, not an access denial, and is surfaced as such.
type ErrUnknownRequiredRole struct {
	Name string
}

func (e ErrUnknownRequiredRole) Error() string {
	return fmt.Sprintf("unknown required role: %s", e.Name)
}
