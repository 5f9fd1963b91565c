package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ems_backend/internals/constants"
	"ems_backend/internals/databases"
)

func newTestApp(t *testing.T) (*fiber.App, *databases.Registry) {
	t.Helper()
	registry := databases.NewRegistry()
	app := fiber.New()

	ctl := NewRoleController(registry)
	roles := app.Group("/roles")
	roles.Get("/list", ctl.List)
	roles.Get("/summary", ctl.Summary)
	roles.Post("/", ctl.Create)
	roles.Put("/:id", ctl.Update)
	roles.Post("/:id/toggle-permission", ctl.TogglePermission)
	roles.Delete("/:id", ctl.Delete)

	return app, registry
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestTogglePermissionFlipsExactlyOne(t *testing.T) {
	app, registry := newTestApp(t)

	before, _ := registry.Roles.Get("role-hr")
	require.False(t, before.Permissions[constants.PermissionDelete])

	resp, body := doJSON(t, app, http.MethodPost, "/roles/role-hr/toggle-permission", map[string]any{
		"permission": constants.PermissionDelete,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	perms := body["data"].(map[string]any)["permissions"].(map[string]any)
	assert.Equal(t, true, perms[constants.PermissionDelete])

	after, _ := registry.Roles.Get("role-hr")
	for name, enabled := range before.Permissions {
		if name == constants.PermissionDelete {
			assert.True(t, after.Permissions[name])
			continue
		}
		assert.Equal(t, enabled, after.Permissions[name], name)
	}

	// toggle kedua kali mengembalikan nilai awal
	resp, _ = doJSON(t, app, http.MethodPost, "/roles/role-hr/toggle-permission", map[string]any{
		"permission": constants.PermissionDelete,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	after, _ = registry.Roles.Get("role-hr")
	assert.False(t, after.Permissions[constants.PermissionDelete])
}

func TestToggleUnknownPermission(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/roles/role-hr/toggle-permission", map[string]any{
		"permission": "Launch Rockets",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRolesSummary(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/roles/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(3), data["total_roles"])
	// Admin 2 + HR 3 + Employee 5
	assert.Equal(t, float64(10), data["total_assignments"])
	// hanya Admin yang punya Manage Users
	assert.Equal(t, float64(1), data["high_privilege_roles"])
	// (6 + 4 + 1) / 3
	assert.InDelta(t, 3.666, data["avg_enabled_permissions"], 0.01)
}

func TestCreateRoleNormalizesPermissions(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/roles/", map[string]any{
		"role_name":        "Auditor",
		"role_description": "Read-only compliance reviews.",
		"permissions": map[string]bool{
			constants.PermissionView:          true,
			constants.PermissionExportReports: true,
			"Launch Rockets":                  true, // key asing dibuang
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	perms := data["permissions"].(map[string]any)
	assert.Len(t, perms, len(constants.Permissions))
	_, hasForeign := perms["Launch Rockets"]
	assert.False(t, hasForeign)
	assert.Equal(t, float64(2), data["enabled_count"])
	assert.Equal(t, float64(0), data["assigned_users"])

	resp, _ = doJSON(t, app, http.MethodPost, "/roles/", map[string]any{"role_name": "auditor"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDeleteRoleIdempotent(t *testing.T) {
	app, registry := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/roles/role-employee", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, registry.Roles.Len())

	resp, _ = doJSON(t, app, http.MethodDelete, "/roles/role-employee", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, registry.Roles.Len())
}
