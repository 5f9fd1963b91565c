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

	"ems_backend/internals/databases"
	userModel "ems_backend/internals/features/users/auth/model"
)

// user_id sesi ditanam lewat middleware stub, meniru locals dari auth
func newTestApp(t *testing.T) (*fiber.App, *databases.Registry) {
	t.Helper()
	registry := databases.NewRegistry()
	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "user-admin")
		return c.Next()
	})

	ctl := NewSettingsController(registry)
	st := app.Group("/settings")
	st.Get("/theme", ctl.GetTheme)
	st.Put("/theme", ctl.UpdateTheme)
	st.Get("/organization", ctl.GetOrganization)
	st.Put("/organization", ctl.UpdateOrganization)

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

func TestThemeDefaultsToLight(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/settings/theme", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, userModel.ThemeLight, body["data"].(map[string]any)["theme"])
}

func TestUpdateThemePersistsPerUser(t *testing.T) {
	app, registry := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/settings/theme", map[string]any{"theme": "dark"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, _ := registry.Users.Get("user-admin")
	assert.Equal(t, userModel.ThemeDark, user.Theme)

	resp, body := doJSON(t, app, http.MethodGet, "/settings/theme", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, userModel.ThemeDark, body["data"].(map[string]any)["theme"])

	// nilai di luar light/dark ditolak
	resp, _ = doJSON(t, app, http.MethodPut, "/settings/theme", map[string]any{"theme": "solarized"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestOrganizationSettingsRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/settings/organization", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme Corp", body["data"].(map[string]any)["org_name"])

	resp, body = doJSON(t, app, http.MethodPut, "/settings/organization", map[string]any{
		"org_name":        "Acme International",
		"work_week_start": "Sunday",
		"work_week_end":   "Thursday",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Acme International", data["org_name"])
	assert.Equal(t, "Sunday", data["work_week_start"])
	// field yang tidak dikirim tetap
	assert.Equal(t, "Asia/Kolkata", data["timezone"])
}
