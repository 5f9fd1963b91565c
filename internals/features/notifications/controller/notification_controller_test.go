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
	notifModel "ems_backend/internals/features/notifications/model"
)

func newTestApp(t *testing.T) (*fiber.App, *databases.Registry) {
	t.Helper()
	registry := databases.NewRegistry()
	app := fiber.New()

	ctl := NewNotificationController(registry)
	notif := app.Group("/notifications")
	notif.Get("/list", ctl.List)
	notif.Post("/", ctl.Create)
	notif.Post("/mark-all-read", ctl.MarkAllRead)
	notif.Post("/:id/read", ctl.MarkRead)
	notif.Post("/:id/unread", ctl.MarkUnread)
	notif.Delete("/:id", ctl.Delete)

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

func TestListNotificationsNewestFirstWithDayGroups(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/notifications/list?per_page=50", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].([]any)
	require.Len(t, data, 7)
	assert.Equal(t, "New employee added", data[0].(map[string]any)["notification_title"])

	includes := body["includes"].(map[string]any)
	groups := includes["day_groups"].([]any)
	require.NotEmpty(t, groups)
	totalGrouped := 0
	for _, g := range groups {
		totalGrouped += int(g.(map[string]any)["count"].(float64))
	}
	assert.Equal(t, 7, totalGrouped)
	assert.Equal(t, float64(4), includes["unread_count"])
}

func TestCategoryTabFilterWithAllSentinel(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/notifications/list?category=Leave&per_page=50", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].([]any)
	require.Len(t, data, 2)
	for _, item := range data {
		assert.Equal(t, notifModel.CategoryLeave, item.(map[string]any)["notification_category"])
	}

	resp, body = doJSON(t, app, http.MethodGet, "/notifications/list?category=All&per_page=50", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 7)
}

func TestMarkReadUnreadToggle(t *testing.T) {
	app, registry := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/notifications/notif-1/read", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec, _ := registry.Notifications.Get("notif-1")
	assert.True(t, rec.IsRead)

	resp, _ = doJSON(t, app, http.MethodPost, "/notifications/notif-1/unread", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec, _ = registry.Notifications.Get("notif-1")
	assert.False(t, rec.IsRead)

	resp, _ = doJSON(t, app, http.MethodPost, "/notifications/notif-404/read", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMarkAllRead(t *testing.T) {
	app, registry := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/notifications/mark-all-read", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(4), body["data"].(map[string]any)["marked"])

	for _, n := range registry.Notifications.Snapshot() {
		assert.True(t, n.IsRead, n.NotificationID)
	}
}

func TestCreateNotificationStartsUnread(t *testing.T) {
	app, registry := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/notifications/", map[string]any{
		"notification_title":    "Payroll reminder",
		"notification_message":  "November payroll closes Friday.",
		"notification_category": notifModel.CategoryPayroll,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, false, body["data"].(map[string]any)["is_read"])
	assert.Equal(t, 8, registry.Notifications.Len())

	// kategori di luar daftar ditolak validator
	resp, _ = doJSON(t, app, http.MethodPost, "/notifications/", map[string]any{
		"notification_title":    "Bad",
		"notification_message":  "Category does not exist.",
		"notification_category": "Gossip",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUnreadOnlyFilter(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/notifications/list?unread_only=true&per_page=50", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].([]any)
	require.Len(t, data, 4)
	for _, item := range data {
		assert.Equal(t, false, item.(map[string]any)["is_read"])
	}
}
