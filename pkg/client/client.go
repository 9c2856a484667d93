package client

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// AuthUser is the authenticated caller as established by the surrounding
// auth stack. The role middleware only needs an identity; role state is read
// from the store per request, never from token claims, so deactivations take
// effect immediately.
type AuthUser struct {
	UserId   string `json:"user_id,omitempty"`
	UserUuid uuid.UUID
}

func (u AuthUser) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user", u.UserId),
	)
}

// contextKey is a value for use with context.WithValue. It's used as
// a pointer so it fits in an interface{} without allocation.
type contextKey struct {
	name string
}

func (k *contextKey) String() string {
	return "rolegate context value " + k.name
}

const ACCESS_TOKEN_NAME = "access_token"

var AuthUserKey = &contextKey{"AuthUser"}

// FromContext returns the AuthUser placed in the context by
// AuthUserMiddleware, or nil for an anonymous request.
func FromContext(ctx context.Context) *AuthUser {
	authUser, ok := ctx.Value(AuthUserKey).(*AuthUser)
	if !ok {
		return nil
	}
	return authUser
}

// AuthUserMiddleware projects the verified JWT claims into an AuthUser and
// stores it in the request context. It expects jwtauth's Verifier and
// Authenticator to have run already.
func AuthUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			http.Error(w, "missing or invalid JWT", http.StatusUnauthorized)
			return
		}

		subject, _ := claims["sub"].(string)
		if subject == "" {
			http.Error(w, "missing user ID in token", http.StatusUnauthorized)
			return
		}

		authUser := &AuthUser{UserId: subject}

		userUUID, err := uuid.Parse(subject)
		if err != nil {
			slog.Warn("failed to parse user ID as UUID", "userId", subject, "error", err)
			http.Error(w, "invalid user ID in token", http.StatusUnauthorized)
			return
		}
		authUser.UserUuid = userUUID

		slog.Debug("authenticated user", "user", authUser)

		ctx := context.WithValue(r.Context(), AuthUserKey, authUser)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Verifier checks the access token from the Authorization header or the
// access_token cookie.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return jwtauth.Verify(ja, jwtauth.TokenFromHeader, TokenFromCookie)(next)
	}
}

func TokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(ACCESS_TOKEN_NAME)
	if err != nil {
		return ""
	}
	return cookie.Value
}
