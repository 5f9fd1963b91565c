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
)

func newTestApp(t *testing.T) (*fiber.App, *databases.Registry) {
	t.Helper()
	registry := databases.NewRegistry()
	app := fiber.New()

	ctl := NewEmployeeController(registry)
	emp := app.Group("/employees")
	emp.Get("/list", ctl.List)
	emp.Get("/:id", ctl.GetByID)
	emp.Post("/", ctl.Create)
	emp.Put("/:id", ctl.Update)
	emp.Delete("/:id", ctl.Delete)

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

func TestListEmployeesDefaultPage(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/employees/list", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].([]any)
	assert.Len(t, data, 5)

	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(5), pagination["total"])
	assert.Equal(t, float64(1), pagination["total_pages"])

	includes := body["includes"].(map[string]any)
	assert.Len(t, includes["department_options"].([]any), 5)
}

func TestListEmployeesFiltersCombineWithAnd(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/employees/list?search=sharma&department=Engineering", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "Rahul Sharma", first["employee_name"])

	// departemen yang tidak cocok dengan search menghasilkan kosong
	resp, body = doJSON(t, app, http.MethodGet, "/employees/list?search=sharma&department=Product", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"].([]any))
}

func TestCreateEmployeePrependsNewestFirst(t *testing.T) {
	app, registry := newTestApp(t)

	payload := map[string]any{
		"employee_name":       "Sana Kapoor",
		"employee_email":      "sana.kapoor@example.com",
		"employee_role":       "Data Analyst",
		"employee_department": "Engineering",
		"employee_join_date":  "2025-01-10",
	}
	resp, body := doJSON(t, app, http.MethodPost, "/employees/", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := body["data"].(map[string]any)
	assert.Equal(t, "Active", created["employee_status"])
	assert.NotEmpty(t, created["employee_id"])

	// record baru di posisi pertama
	snapshot := registry.Employees.Snapshot()
	require.Len(t, snapshot, 6)
	assert.Equal(t, "Sana Kapoor", snapshot[0].EmployeeName)
}

func TestCreateEmployeeValidation(t *testing.T) {
	app, registry := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/employees/", map[string]any{
		"employee_name":  "X",
		"employee_email": "not-an-email",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["errors"])

	// store tidak tersentuh
	assert.Equal(t, 5, registry.Employees.Len())
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/employees/", map[string]any{
		"employee_name":       "Anita Clone",
		"employee_email":      "ANITA.VERMA@example.com",
		"employee_role":       "HR Manager",
		"employee_department": "Human Resources",
		"employee_join_date":  "2025-01-01",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpdateEmployeePreservesOrderAndCardinality(t *testing.T) {
	app, registry := newTestApp(t)

	before := registry.Employees.Snapshot()
	resp, body := doJSON(t, app, http.MethodPut, "/employees/EMP-002", map[string]any{
		"employee_role": "Senior Software Engineer",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Senior Software Engineer", body["data"].(map[string]any)["employee_role"])

	after := registry.Employees.Snapshot()
	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].EmployeeID, after[i].EmployeeID, "urutan harus tetap")
	}
}

func TestUpdateEmployeeUnknownID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/employees/EMP-999", map[string]any{
		"employee_role": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteEmployeeIsIdempotent(t *testing.T) {
	app, registry := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/employees/EMP-003", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, registry.Employees.Len())

	// hapus kedua kali: tetap 200, store tidak berubah
	resp, _ = doJSON(t, app, http.MethodDelete, "/employees/EMP-003", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, registry.Employees.Len())
}

func TestGetEmployeeByID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/employees/EMP-001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Anita Verma", body["data"].(map[string]any)["employee_name"])

	resp, _ = doJSON(t, app, http.MethodGet, "/employees/EMP-404", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
