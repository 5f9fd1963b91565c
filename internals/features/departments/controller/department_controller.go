// file: internals/features/departments/controller/department_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ems_backend/internals/databases"
	deptDTO "ems_backend/internals/features/departments/dto"
	deptModel "ems_backend/internals/features/departments/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/store"
)

type DepartmentController struct {
	Registry *databases.Registry
}

func NewDepartmentController(registry *databases.Registry) *DepartmentController {
	return &DepartmentController{Registry: registry}
}

// ===================== LIST =====================
// GET /api/a/departments/list?search=&page=&per_page=
func (h *DepartmentController) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	paging := helper.ResolvePaging(c, store.DefaultPageSize, 100)

	pred := store.And(
		store.TextSearch(search, deptModel.DepartmentModel.SearchFields),
	)

	filtered := store.Filter(h.Registry.Departments.Snapshot(), pred)
	pageItems, info := store.Paginate(filtered, paging.Page, paging.PerPage)

	return helper.JsonList(c, "departments fetched",
		deptDTO.ToDepartmentResponses(pageItems),
		helper.PaginationFromView(info, len(pageItems)),
	)
}

// ===================== DETAIL =====================
// GET /api/a/departments/:id
func (h *DepartmentController) GetByID(c *fiber.Ctx) error {
	dept, ok := h.Registry.Departments.Get(c.Params("id"))
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
	}
	return helper.JsonOK(c, "department fetched", deptDTO.ToDepartmentResponse(dept))
}

// ===================== CREATE =====================
// POST /api/a/departments
func (h *DepartmentController) Create(c *fiber.Ctx) error {
	var req deptDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.DepartmentName)
	if _, exists := h.Registry.Departments.Find(func(d deptModel.DepartmentModel) bool {
		return strings.EqualFold(d.DepartmentName, name)
	}); exists {
		return helper.JsonError(c, fiber.StatusConflict, "Department already exists")
	}

	dept := req.ToModel("dept-"+uuid.NewString(), time.Now())
	h.Registry.Departments.Prepend(dept)

	return helper.JsonCreated(c, "department created", deptDTO.ToDepartmentResponse(dept))
}

// ===================== UPDATE =====================
// PUT /api/a/departments/:id
func (h *DepartmentController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req deptDTO.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := h.Registry.Departments.Update(id, func(d deptModel.DepartmentModel) deptModel.DepartmentModel {
		req.ApplyToModel(&d, time.Now())
		return d
	})
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
	}

	dept, _ := h.Registry.Departments.Get(id)
	return helper.JsonUpdated(c, "department updated", deptDTO.ToDepartmentResponse(dept))
}

// ===================== DELETE =====================
// DELETE /api/a/departments/:id
func (h *DepartmentController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.Registry.Departments.Delete(id)
	return helper.JsonDeleted(c, "department deleted", fiber.Map{"department_id": id})
}
