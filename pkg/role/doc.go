// Package role provides role-based access control (RBAC) for rolegate.
//
// This package manages roles and user-role bindings with support for
// PostgreSQL and alternative storage backends through repository interfaces,
// plus HTTP middleware for guarding routes by role.
//
// # Overview
//
// The role package provides:
//   - Role lifecycle management (create, list, activate, deactivate, soft delete)
//   - User-role bindings
//   - Access-decision middleware for chi routers
//   - Repository pattern for database abstraction
//
// # Basic Usage
//
//	import "github.com/rolegate/rolegate/pkg/role"
//
//	// Create service
//	repo := role.NewPostgresRoleRepository(queries)
//	service := role.NewRoleService(repo)
//
//	// Create a role
//	r, err := service.CreateRole(ctx, "editor")
//
//	// Bind a user to it
//	err = service.AssignRole(ctx, userID, "editor")
//
// # Role Management
//
//	// List live roles in creation order
//	roles, err := service.FindRoles(ctx, false)
//
//	// Deactivate without losing bindings
//	err = service.DeactivateRole(ctx, "editor")
//
//	// Soft delete; refused silently while users still hold the role
//	err = service.DeleteRole(ctx, "editor")
//
// # Route Guards
//
// RequireRole allows a request through when the caller holds at least one of
// the named roles in active state:
//
//	r.Group(func(r chi.Router) {
//		r.Use(role.RequireRole(service, "admin", "superuser"))
//		handler.RegisterRoleRoutes(r)
//	})
//
// RequireAnyRole admits any caller holding at least one active role:
//
//	r.Group(func(r chi.Router) {
//		r.Use(role.RequireAnyRole(service))
//		handler.RegisterUserRoutes(r)
//	})
//
// Both guards expect client.AuthUserMiddleware to have run first so the
// caller's identity is in the request context.
//
// # Related Packages
//
//   - pkg/client - JWT verification and authenticated-user context
//   - pkg/role/roledb - sqlc-generated PostgreSQL queries
package role
