package role

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Handler handles HTTP requests for role management
type Handler struct {
	roleService *RoleService
}

// NewHandler creates a new role handler
func NewHandler(roleService *RoleService) *Handler {
	return &Handler{
		roleService: roleService,
	}
}

// RoleResponse is the wire format for a role. The active flag is serialized
// as 1/0 for compatibility with existing clients.
type RoleResponse struct {
	Name      string `json:"name"`
	IsActive  int32  `json:"is_active"`
	DeletedAt string `json:"deleted_at,omitempty"`
}

// RoleUserResponse is the wire format for a user bound to a role
type RoleUserResponse struct {
	UserID string `json:"user_id"`
}

// RegisterRoleRoutes registers the admin-facing role routes
func (h *Handler) RegisterRoleRoutes(r chi.Router) {
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.ListRoles)
		r.Get("/{name}", h.GetRole)
		r.Post("/{name}", h.CreateRole)
		r.Delete("/{name}", h.DeleteRole)
		r.Post("/{name}/activate", h.ActivateRole)
		r.Post("/{name}/deactivate", h.DeactivateRole)
		r.Get("/{name}/users", h.RoleUsers)
	})
}

// RegisterUserRoutes registers the user-role binding routes
func (h *Handler) RegisterUserRoutes(r chi.Router) {
	r.Route("/users/{userId}/roles", func(r chi.Router) {
		r.Get("/", h.UserRoles)
		r.Post("/assign/{roleName}", h.AssignRole)
		r.Post("/revoke/{roleName}", h.RevokeRole)
	})
}

// ListRoles handles the request to list roles in creation order
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"

	roles, err := h.roleService.FindRoles(r.Context(), includeDeleted)
	if err != nil {
		http.Error(w, "Failed to list roles: "+err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, toRoleResponses(roles))
}

// GetRole handles the request to get a role by name
func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	role, err := h.roleService.GetRoleByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			writeDecision(w, http.StatusNotFound, invalidRoleBody)
			return
		}
		http.Error(w, "Failed to get role: "+err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, toRoleResponse(role))
}

// CreateRole handles the request to create a new role. A name that fails
// validation gets the plain-text body existing clients expect, not JSON.
func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	role, err := h.roleService.CreateRole(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRoleName):
			render.Status(r, http.StatusBadRequest)
			render.PlainText(w, r, "Role name invalid")
		case errors.Is(err, ErrRoleExists):
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, map[string]string{"error": "Role already exists"})
		default:
			http.Error(w, "Failed to create role: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toRoleResponse(role))
}

// DeleteRole handles the request to soft-delete a role. A role that is
// still assigned to users is kept; the response is the same either way.
func (h *Handler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	err := h.roleService.DeleteRole(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			writeDecision(w, http.StatusNotFound, invalidRoleBody)
			return
		}
		http.Error(w, "Failed to delete role: "+err.Error(), http.StatusInternalServerError)
		return
	}

	render.PlainText(w, r, http.StatusText(http.StatusOK))
}

// ActivateRole handles the request to reactivate a role
func (h *Handler) ActivateRole(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// DeactivateRole handles the request to deactivate a role
func (h *Handler) DeactivateRole(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	name := chi.URLParam(r, "name")

	var err error
	if active {
		err = h.roleService.ActivateRole(r.Context(), name)
	} else {
		err = h.roleService.DeactivateRole(r.Context(), name)
	}
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			writeDecision(w, http.StatusNotFound, invalidRoleBody)
			return
		}
		http.Error(w, "Failed to update role: "+err.Error(), http.StatusInternalServerError)
		return
	}

	render.PlainText(w, r, http.StatusText(http.StatusOK))
}

// RoleUsers handles the request to list users bound to a role
func (h *Handler) RoleUsers(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	userIDs, err := h.roleService.UsersForRole(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			writeDecision(w, http.StatusNotFound, invalidRoleBody)
			return
		}
		http.Error(w, "Failed to list role users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	users := make([]RoleUserResponse, len(userIDs))
	for i, userID := range userIDs {
		users[i] = RoleUserResponse{UserID: userID.String()}
	}
	render.JSON(w, r, users)
}

// UserRoles handles the request to list a user's roles, deactivated ones
// included
func (h *Handler) UserRoles(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	roles, err := h.roleService.RolesForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to list user roles: "+err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, toRoleResponses(roles))
}

// AssignRole handles the request to bind a user to a role
func (h *Handler) AssignRole(w http.ResponseWriter, r *http.Request) {
	h.changeBinding(w, r, h.roleService.AssignRole)
}

// RevokeRole handles the request to unbind a user from a role
func (h *Handler) RevokeRole(w http.ResponseWriter, r *http.Request) {
	h.changeBinding(w, r, h.roleService.RevokeRole)
}

func (h *Handler) changeBinding(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID uuid.UUID, name string) error) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	roleName := chi.URLParam(r, "roleName")

	if err := op(r.Context(), userID, roleName); err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			writeDecision(w, http.StatusNotFound, invalidRoleBody)
			return
		}
		slog.Error("Failed to change role binding", "user", userID, "role", roleName, "error", err)
		http.Error(w, "Failed to change role binding: "+err.Error(), http.StatusInternalServerError)
		return
	}

	render.PlainText(w, r, http.StatusText(http.StatusOK))
}

// toRoleResponse converts a domain Role to its wire format
func toRoleResponse(role Role) RoleResponse {
	var resp RoleResponse
	copier.Copy(&resp, &role)
	resp.IsActive = activeFlag(role.IsActive)
	if role.DeletedAtValid {
		resp.DeletedAt = role.DeletedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func toRoleResponses(roles []Role) []RoleResponse {
	resps := make([]RoleResponse, len(roles))
	for i, role := range roles {
		resps[i] = toRoleResponse(role)
	}
	return resps
}

func activeFlag(active bool) int32 {
	if active {
		return 1
	}
	return 0
}
