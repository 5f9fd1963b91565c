// file: internals/features/payroll/controller/salary_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	salaryDTO "ems_backend/internals/features/payroll/dto"
	salaryModel "ems_backend/internals/features/payroll/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/seeds"
	"ems_backend/internals/store"
)

type SalaryController struct {
	Registry *databases.Registry
}

func NewSalaryController(registry *databases.Registry) *SalaryController {
	return &SalaryController{Registry: registry}
}

// ===================== LIST =====================
// GET /api/a/payroll/list?search=&month=&status=&page=&per_page=
func (h *SalaryController) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	month := strings.TrimSpace(c.Query("month"))
	status := strings.TrimSpace(c.Query("status"))
	paging := helper.ResolvePaging(c, store.DefaultPageSize, 100)

	pred := store.And(
		store.TextSearch(search, salaryModel.SalaryModel.SearchFields),
		store.Exact(month, func(s salaryModel.SalaryModel) string { return s.Month }),
		store.Exact(status, func(s salaryModel.SalaryModel) string { return s.Status }),
	)

	filtered := store.Filter(h.Registry.Salaries.Snapshot(), pred)
	pageItems, info := store.Paginate(filtered, paging.Page, paging.PerPage)

	includes := fiber.Map{
		"month_options":  seeds.SalaryMonths,
		"status_options": salaryModel.SalaryStatuses,
	}

	return helper.JsonListEx(c, "payroll fetched",
		salaryDTO.ToSalaryResponses(pageItems),
		helper.PaginationFromView(info, len(pageItems)),
		includes,
	)
}

// ===================== MONTH SUMMARY =====================
// GET /api/a/payroll/summary?month=
func (h *SalaryController) Summary(c *fiber.Ctx) error {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" && len(seeds.SalaryMonths) > 0 {
		month = seeds.SalaryMonths[0]
	}

	filtered := store.Filter(h.Registry.Salaries.Snapshot(),
		store.Exact(month, func(s salaryModel.SalaryModel) string { return s.Month }))

	return helper.JsonOK(c, "payroll summary", salaryDTO.SummarizeMonth(month, filtered))
}

// ===================== CREATE =====================
// POST /api/a/payroll
func (h *SalaryController) Create(c *fiber.Ctx) error {
	var req salaryDTO.CreateSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	emp, ok := h.Registry.Employees.Get(req.EmployeeID)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
	}

	month := strings.TrimSpace(req.Month)
	recID := seeds.SalaryID(emp.EmployeeID, month)
	if _, exists := h.Registry.Salaries.Get(recID); exists {
		return helper.JsonError(c, fiber.StatusConflict, "Salary record already exists for this month")
	}

	amount := req.Amount
	if amount == 0 {
		amount = seeds.BaseSalaryForDepartment(emp.EmployeeDepartment)
	}

	rec := salaryModel.SalaryModel{
		SalaryID:     recID,
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.EmployeeName,
		Department:   emp.EmployeeDepartment,
		Role:         emp.EmployeeRole,
		Month:        month,
		Amount:       amount,
		Status:       salaryModel.StatusPending,
	}
	if remarks := strings.TrimSpace(req.Remarks); remarks != "" {
		rec.Remarks = &remarks
	}
	h.Registry.Salaries.Prepend(rec)

	return helper.JsonCreated(c, "salary record created", salaryDTO.ToSalaryResponse(rec))
}

// ===================== UPDATE =====================
// PUT /api/a/payroll/:id
func (h *SalaryController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req salaryDTO.UpdateSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := h.Registry.Salaries.Update(id, func(s salaryModel.SalaryModel) salaryModel.SalaryModel {
		req.ApplyToModel(&s)
		return s
	})
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary record not found")
	}

	rec, _ := h.Registry.Salaries.Get(id)
	return helper.JsonUpdated(c, "salary record updated", salaryDTO.ToSalaryResponse(rec))
}

// ===================== MARK PAID =====================
// POST /api/a/payroll/:id/mark-paid
// Paid bersifat final; payment_date diisi hari ini kalau belum ada,
// remarks dikosongkan.
func (h *SalaryController) MarkPaid(c *fiber.Ctx) error {
	id := c.Params("id")

	rec, ok := h.Registry.Salaries.Get(id)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Salary record not found")
	}
	if rec.Status == salaryModel.StatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Salary already paid")
	}

	h.Registry.Salaries.Update(id, func(s salaryModel.SalaryModel) salaryModel.SalaryModel {
		s.Status = salaryModel.StatusPaid
		if s.PaymentDate == nil {
			today := helper.Today()
			s.PaymentDate = &today
		}
		s.Remarks = nil
		return s
	})

	rec, _ = h.Registry.Salaries.Get(id)
	return helper.JsonUpdated(c, "salary marked as paid", salaryDTO.ToSalaryResponse(rec))
}

// ===================== DELETE =====================
// DELETE /api/a/payroll/:id
func (h *SalaryController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.Registry.Salaries.Delete(id)
	return helper.JsonDeleted(c, "salary record deleted", fiber.Map{"salary_id": id})
}
