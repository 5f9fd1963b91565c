// file: internals/features/employees/controller/employee_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ems_backend/internals/databases"
	empDTO "ems_backend/internals/features/employees/dto"
	empModel "ems_backend/internals/features/employees/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/store"
)

type EmployeeController struct {
	Registry *databases.Registry
}

func NewEmployeeController(registry *databases.Registry) *EmployeeController {
	return &EmployeeController{Registry: registry}
}

// ===================== LIST =====================
// GET /api/a/employees/list?search=&department=&role=&status=&page=&per_page=
func (h *EmployeeController) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	department := strings.TrimSpace(c.Query("department"))
	role := strings.TrimSpace(c.Query("role"))
	status := strings.TrimSpace(c.Query("status"))
	paging := helper.ResolvePaging(c, store.DefaultPageSize, 100)

	pred := store.And(
		store.TextSearch(search, empModel.EmployeeModel.SearchFields),
		store.Exact(department, func(e empModel.EmployeeModel) string { return e.EmployeeDepartment }),
		store.Exact(role, func(e empModel.EmployeeModel) string { return e.EmployeeRole }),
		store.Exact(status, func(e empModel.EmployeeModel) string { return e.EmployeeStatus }),
	)

	filtered := store.Filter(h.Registry.Employees.Snapshot(), pred)
	pageItems, info := store.Paginate(filtered, paging.Page, paging.PerPage)

	includes := fiber.Map{
		"department_options": distinctOptions(h.Registry.Employees.Snapshot(), func(e empModel.EmployeeModel) string { return e.EmployeeDepartment }),
		"role_options":       distinctOptions(h.Registry.Employees.Snapshot(), func(e empModel.EmployeeModel) string { return e.EmployeeRole }),
		"status_options":     empModel.EmployeeStatuses,
	}

	return helper.JsonListEx(c, "employees fetched",
		empDTO.ToEmployeeResponses(pageItems),
		helper.PaginationFromView(info, len(pageItems)),
		includes,
	)
}

// opsi dropdown unik, urut kemunculan di store
func distinctOptions(records []empModel.EmployeeModel, field func(empModel.EmployeeModel) string) []string {
	seen := make(map[string]bool, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// ===================== DETAIL =====================
// GET /api/a/employees/:id
func (h *EmployeeController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	emp, ok := h.Registry.Employees.Get(id)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
	}
	return helper.JsonOK(c, "employee fetched", empDTO.ToEmployeeResponse(emp))
}

// ===================== CREATE =====================
// POST /api/a/employees
func (h *EmployeeController) Create(c *fiber.Ctx) error {
	var req empDTO.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// email harus unik di store
	email := strings.ToLower(strings.TrimSpace(req.EmployeeEmail))
	if _, exists := h.Registry.Employees.Find(func(e empModel.EmployeeModel) bool {
		return strings.EqualFold(e.EmployeeEmail, email)
	}); exists {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered to another employee")
	}

	emp := req.ToModel("emp-"+uuid.NewString(), time.Now())
	h.Registry.Employees.Prepend(emp)

	return helper.JsonCreated(c, "employee created", empDTO.ToEmployeeResponse(emp))
}

// ===================== UPDATE =====================
// PUT /api/a/employees/:id
func (h *EmployeeController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req empDTO.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.EmployeeEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*req.EmployeeEmail))
		if _, exists := h.Registry.Employees.Find(func(e empModel.EmployeeModel) bool {
			return e.EmployeeID != id && strings.EqualFold(e.EmployeeEmail, email)
		}); exists {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered to another employee")
		}
	}

	updated := h.Registry.Employees.Update(id, func(e empModel.EmployeeModel) empModel.EmployeeModel {
		req.ApplyToModel(&e, time.Now())
		return e
	})
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
	}

	emp, _ := h.Registry.Employees.Get(id)
	return helper.JsonUpdated(c, "employee updated", empDTO.ToEmployeeResponse(emp))
}

// ===================== DELETE =====================
// DELETE /api/a/employees/:id
// Idempotent: menghapus id yang sudah tidak ada tetap 200.
func (h *EmployeeController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.Registry.Employees.Delete(id)
	return helper.JsonDeleted(c, "employee deleted", fiber.Map{"employee_id": id})
}
