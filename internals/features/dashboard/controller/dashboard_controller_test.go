package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ems_backend/internals/databases"
)

func TestDashboardSummaryMetrics(t *testing.T) {
	registry := databases.NewRegistry()
	app := fiber.New()
	app.Get("/dashboard/summary", NewDashboardController(registry).Summary)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	data := body["data"].(map[string]any)
	metrics := data["metrics"].(map[string]any)
	assert.Equal(t, float64(5), metrics["total_employees"])
	assert.Equal(t, float64(5), metrics["total_departments"])
	assert.Equal(t, float64(4), metrics["unread_notifications"])

	hires := data["monthly_hire_trend"].(map[string]any)
	assert.Len(t, hires["labels"].([]any), 12)
	assert.Len(t, hires["values"].([]any), 12)

	weekly := data["weekly_attendance_trend"].(map[string]any)
	assert.Len(t, weekly["values"].([]any), 4)
}

// metrik mengikuti store, bukan konstanta
func TestDashboardReflectsStoreChanges(t *testing.T) {
	registry := databases.NewRegistry()
	app := fiber.New()
	app.Get("/dashboard/summary", NewDashboardController(registry).Summary)

	registry.Employees.Delete("EMP-005")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	metrics := body["data"].(map[string]any)["metrics"].(map[string]any)
	assert.Equal(t, float64(4), metrics["total_employees"])
}
