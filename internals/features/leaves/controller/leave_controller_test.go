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
	leaveModel "ems_backend/internals/features/leaves/model"
)

func newTestApp(t *testing.T) (*fiber.App, *databases.Registry) {
	t.Helper()
	registry := databases.NewRegistry()
	app := fiber.New()

	ctl := NewLeaveController(registry)
	lv := app.Group("/leaves")
	lv.Get("/list", ctl.List)
	lv.Post("/apply", ctl.Apply)
	lv.Post("/:id/approve", ctl.Approve)
	lv.Post("/:id/reject", ctl.Reject)
	lv.Delete("/:id", ctl.Delete)

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

func TestApplyLeaveComputesInclusiveDays(t *testing.T) {
	app, registry := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/leaves/apply", map[string]any{
		"employee_id": "EMP-002",
		"leave_type":  "Vacation",
		"start_date":  "2025-11-03",
		"end_date":    "2025-11-07",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(5), data["days"])
	assert.Equal(t, leaveModel.StatusPending, data["status"])
	assert.Equal(t, leaveModel.DefaultReason, data["reason"])
	assert.Equal(t, "Rahul Sharma", data["employee_name"])

	// prepend: pengajuan baru paling atas
	snapshot := registry.Leaves.Snapshot()
	assert.Equal(t, data["leave_id"], snapshot[0].LeaveID)
}

func TestApplyLeaveEndBeforeStart(t *testing.T) {
	app, registry := newTestApp(t)
	before := registry.Leaves.Len()

	resp, _ := doJSON(t, app, http.MethodPost, "/leaves/apply", map[string]any{
		"employee_id": "EMP-001",
		"leave_type":  "Casual",
		"start_date":  "2025-11-07",
		"end_date":    "2025-11-03",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, before, registry.Leaves.Len())
}

func TestApplyLeaveUnknownEmployee(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/leaves/apply", map[string]any{
		"employee_id": "EMP-404",
		"leave_type":  "Medical",
		"start_date":  "2025-11-03",
		"end_date":    "2025-11-04",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApproveLeaveOnlyChangesStatus(t *testing.T) {
	app, registry := newTestApp(t)

	before, ok := registry.Leaves.Get("EMP-001-lv-1")
	require.True(t, ok)
	require.Equal(t, leaveModel.StatusPending, before.Status)

	resp, body := doJSON(t, app, http.MethodPost, "/leaves/EMP-001-lv-1/approve", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, leaveModel.StatusApproved, body["data"].(map[string]any)["status"])

	after, _ := registry.Leaves.Get("EMP-001-lv-1")
	assert.Equal(t, before.Days, after.Days)
	assert.Equal(t, before.StartDate, after.StartDate)
	assert.Equal(t, before.Reason, after.Reason)
}

func TestApproveDecidedLeaveConflicts(t *testing.T) {
	app, _ := newTestApp(t)

	// EMP-002-lv-2 di-seed sudah Approved
	resp, body := doJSON(t, app, http.MethodPost, "/leaves/EMP-002-lv-2/approve", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["error_code"])

	// reject juga ditolak setelah final
	resp, _ = doJSON(t, app, http.MethodPost, "/leaves/EMP-002-lv-2/reject", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRejectPendingLeave(t *testing.T) {
	app, registry := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/leaves/EMP-003-lv-3/reject", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	after, _ := registry.Leaves.Get("EMP-003-lv-3")
	assert.Equal(t, leaveModel.StatusRejected, after.Status)
}

func TestTransitionUnknownLeave(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/leaves/lv-unknown/approve", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListLeavesStatusFilter(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/leaves/list?status=Pending", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, item := range body["data"].([]any) {
		assert.Equal(t, leaveModel.StatusPending, item.(map[string]any)["status"])
	}

	// sentinel "all" tidak memfilter apa pun
	resp, body = doJSON(t, app, http.MethodGet, "/leaves/list?status=all&per_page=50", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 5)
}

func TestDeleteLeaveIdempotent(t *testing.T) {
	app, registry := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/leaves/EMP-004-lv-4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, registry.Leaves.Len())

	resp, _ = doJSON(t, app, http.MethodDelete, "/leaves/EMP-004-lv-4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, registry.Leaves.Len())
}
