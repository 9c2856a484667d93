package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolegate/rolegate/pkg/client"
	"github.com/rolegate/rolegate/pkg/tokengenerator"
)

const testSecret = "test-secret"

func newAuthedRouter(t *testing.T) (*chi.Mux, *uuid.UUID) {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte(testSecret), nil)
	var seen uuid.UUID

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(client.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))
		r.Use(client.AuthUserMiddleware)
		r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
			authUser := client.FromContext(r.Context())
			require.NotNil(t, authUser)
			seen = authUser.UserUuid
			w.WriteHeader(http.StatusOK)
		})
	})
	return r, &seen
}

func mintToken(t *testing.T, subject string) string {
	t.Helper()
	tokenGen := tokengenerator.NewJwtTokenGenerator(testSecret, "rolegate", "rolegate")
	tokenStr, _, err := tokenGen.GenerateToken(subject, 5*time.Minute, nil)
	require.NoError(t, err)
	return tokenStr
}

func TestAuthUserMiddlewareBearerHeader(t *testing.T) {
	router, seen := newAuthedRouter(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, userID.String()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, *seen)
}

func TestAuthUserMiddlewareCookie(t *testing.T) {
	router, seen := newAuthedRouter(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: client.ACCESS_TOKEN_NAME, Value: mintToken(t, userID.String())})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, *seen)
}

func TestAuthUserMiddlewareRejects(t *testing.T) {
	router, _ := newAuthedRouter(t)

	tests := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{
			name:  "missing token",
			setup: func(req *http.Request) {},
		},
		{
			name: "garbage token",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not-a-jwt")
			},
		},
		{
			name: "wrong signing key",
			setup: func(req *http.Request) {
				other := tokengenerator.NewJwtTokenGenerator("other-secret", "rolegate", "rolegate")
				tokenStr, _, err := other.GenerateToken(uuid.New().String(), 5*time.Minute, nil)
				require.NoError(t, err)
				req.Header.Set("Authorization", "Bearer "+tokenStr)
			},
		},
		{
			name: "subject is not a uuid",
			setup: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+mintToken(t, "charlie"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestFromContextAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, client.FromContext(req.Context()))
}
