package role

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*chi.Mux, *RoleService) {
	service := newTestService()
	handler := NewHandler(service)

	r := chi.NewRouter()
	handler.RegisterRoleRoutes(r)
	handler.RegisterUserRoutes(r)
	return r, service
}

func do(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeRoles(t *testing.T, rec *httptest.ResponseRecorder) []RoleResponse {
	t.Helper()
	var roles []RoleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
	return roles
}

func TestCreateRoleEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	t.Run("valid name", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/roles/intern")
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp RoleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "intern", resp.Name)
		assert.Equal(t, int32(1), resp.IsActive)
		assert.Empty(t, resp.DeletedAt)
	})

	t.Run("invalid name", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/roles/mm")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Role name invalid", rec.Body.String())
	})

	t.Run("duplicate name", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/roles/intern")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetRoleEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := do(t, router, http.MethodPost, "/roles/editor")
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("existing role", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/roles/editor")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RoleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "editor", resp.Name)
	})

	t.Run("unknown role", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/roles/ghost")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, `{"error":"Invalid Role ID"}`, rec.Body.String())
	})
}

func TestListRolesEndpoint(t *testing.T) {
	router, service := newTestRouter()

	for _, name := range []string{"zebra", "admin", "middle"} {
		rec := do(t, router, http.MethodPost, "/roles/"+name)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	require.NoError(t, service.DeleteRole(context.Background(), "middle"))

	t.Run("live roles in creation order", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/roles")
		assert.Equal(t, http.StatusOK, rec.Code)

		roles := decodeRoles(t, rec)
		require.Len(t, roles, 2)
		assert.Equal(t, "zebra", roles[0].Name)
		assert.Equal(t, "admin", roles[1].Name)
	})

	t.Run("include deleted", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/roles?include_deleted=true")
		assert.Equal(t, http.StatusOK, rec.Code)

		roles := decodeRoles(t, rec)
		require.Len(t, roles, 3)
		assert.Equal(t, "middle", roles[2].Name)
		assert.NotEmpty(t, roles[2].DeletedAt)
	})
}

func TestDeleteRoleEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := do(t, router, http.MethodPost, "/roles/operator")
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("unknown role", func(t *testing.T) {
		rec := do(t, router, http.MethodDelete, "/roles/ghost")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, `{"error":"Invalid Role ID"}`, rec.Body.String())
	})

	t.Run("role in use reports success but survives", func(t *testing.T) {
		userID := uuid.New()
		rec := do(t, router, http.MethodPost, "/users/"+userID.String()+"/roles/assign/operator")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodDelete, "/roles/operator")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, "/roles/operator")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodPost, "/users/"+userID.String()+"/roles/revoke/operator")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unused role is deleted", func(t *testing.T) {
		rec := do(t, router, http.MethodDelete, "/roles/operator")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, "/roles/operator")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestActivateDeactivateEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	rec := do(t, router, http.MethodPost, "/roles/editor")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, "/roles/editor/deactivate")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/roles/editor")
	var resp RoleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int32(0), resp.IsActive)

	rec = do(t, router, http.MethodPost, "/roles/editor/activate")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/roles/editor")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int32(1), resp.IsActive)

	rec = do(t, router, http.MethodPost, "/roles/ghost/activate")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `{"error":"Invalid Role ID"}`, rec.Body.String())
}

func TestUserRoleEndpoints(t *testing.T) {
	router, _ := newTestRouter()

	for _, name := range []string{"admin", "viewer"} {
		rec := do(t, router, http.MethodPost, "/roles/"+name)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	userID := uuid.New()

	t.Run("invalid user id", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/users/not-a-uuid/roles")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("assign unknown role", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/users/"+userID.String()+"/roles/assign/ghost")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, `{"error":"Invalid Role ID"}`, rec.Body.String())
	})

	t.Run("assign and list", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/users/"+userID.String()+"/roles/assign/viewer")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, "/users/"+userID.String()+"/roles")
		require.Equal(t, http.StatusOK, rec.Code)
		roles := decodeRoles(t, rec)
		require.Len(t, roles, 1)
		assert.Equal(t, "viewer", roles[0].Name)
		assert.Equal(t, int32(1), roles[0].IsActive)
	})

	t.Run("deactivated role stays listed with flag 0", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/roles/viewer/deactivate")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, "/users/"+userID.String()+"/roles")
		roles := decodeRoles(t, rec)
		require.Len(t, roles, 1)
		assert.Equal(t, int32(0), roles[0].IsActive)
	})

	t.Run("role users listing", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/roles/viewer/users")
		require.Equal(t, http.StatusOK, rec.Code)

		var users []RoleUserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		require.Len(t, users, 1)
		assert.Equal(t, userID.String(), users[0].UserID)
	})

	t.Run("revoke", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/users/"+userID.String()+"/roles/revoke/viewer")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, "/users/"+userID.String()+"/roles")
		roles := decodeRoles(t, rec)
		assert.Empty(t, roles)
	})
}
