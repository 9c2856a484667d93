package role

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rolegate/rolegate/pkg/client"
)

// Fixed decision payloads. Admin tooling matches on these bytes, so they are
// written verbatim rather than through a JSON encoder.
const (
	incorrectRoleBody = `{"error":"Incorrect Role"}`
	invalidRoleBody   = `{"error":"Invalid Role ID"}`
)

// RequireRole guards a route group with a disjunctive set of role names: the
// caller passes when it holds at least one of them as an active role. An
// empty set leaves the group unrestricted. A required name that does not
// resolve to a live role is an operator mistake and fails every request with
// a 500 so it cannot be mistaken for a permission problem.
func RequireRole(service *RoleService, required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(required) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			if err := service.ResolveRequiredRoles(r.Context(), required); err != nil {
				var unknown ErrUnknownRequiredRole
				if errors.As(err, &unknown) {
					slog.Error("Route guard requires a role that does not exist", "role", unknown.Name, "path", r.URL.Path)
					writeDecision(w, http.StatusInternalServerError, invalidRoleBody)
					return
				}
				slog.Error("Failed to resolve required roles", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			authUser := client.FromContext(r.Context())
			if authUser == nil {
				// Anonymous callers hold no roles.
				writeDecision(w, http.StatusUnauthorized, incorrectRoleBody)
				return
			}

			activeNames, err := service.ActiveRoleNamesForUser(r.Context(), authUser.UserUuid)
			if err != nil {
				slog.Error("Failed to load caller roles", "user", authUser, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			for _, have := range activeNames {
				for _, want := range required {
					if strings.EqualFold(have, want) {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			slog.Warn("Denied access to role-guarded route", "user", authUser, "required", required, "path", r.URL.Path)
			writeDecision(w, http.StatusUnauthorized, incorrectRoleBody)
		})
	}
}

// RequireAnyRole guards a route group so that only callers holding at least
// one active role, whichever it is, may pass. Used for the user-facing role
// listings.
func RequireAnyRole(service *RoleService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authUser := client.FromContext(r.Context())
			if authUser == nil {
				writeDecision(w, http.StatusUnauthorized, incorrectRoleBody)
				return
			}

			activeNames, err := service.ActiveRoleNamesForUser(r.Context(), authUser.UserUuid)
			if err != nil {
				slog.Error("Failed to load caller roles", "user", authUser, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if len(activeNames) == 0 {
				slog.Warn("Denied caller without any active role", "user", authUser, "path", r.URL.Path)
				writeDecision(w, http.StatusUnauthorized, incorrectRoleBody)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeDecision(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(body))
}
