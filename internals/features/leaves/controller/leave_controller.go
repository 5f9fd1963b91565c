// file: internals/features/leaves/controller/leave_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ems_backend/internals/databases"
	leaveDTO "ems_backend/internals/features/leaves/dto"
	leaveModel "ems_backend/internals/features/leaves/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/store"
)

type LeaveController struct {
	Registry *databases.Registry
}

func NewLeaveController(registry *databases.Registry) *LeaveController {
	return &LeaveController{Registry: registry}
}

// ===================== LIST =====================
// GET /api/a/leaves/list?search=&status=&type=&date=&page=&per_page=
// date= mem-filter pengajuan yang rentangnya memuat tanggal itu.
func (h *LeaveController) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	status := strings.TrimSpace(c.Query("status"))
	leaveType := strings.TrimSpace(c.Query("type"))
	date := strings.TrimSpace(c.Query("date"))
	paging := helper.ResolvePaging(c, store.DefaultPageSize, 100)

	pred := store.And(
		store.TextSearch(search, leaveModel.LeaveModel.SearchFields),
		store.Exact(status, func(l leaveModel.LeaveModel) string { return l.Status }),
		store.Exact(leaveType, func(l leaveModel.LeaveModel) string { return l.LeaveType }),
		store.DateWithinRange(date,
			func(l leaveModel.LeaveModel) string { return l.StartDate },
			func(l leaveModel.LeaveModel) string { return l.EndDate },
		),
	)

	filtered := store.Filter(h.Registry.Leaves.Snapshot(), pred)
	pageItems, info := store.Paginate(filtered, paging.Page, paging.PerPage)

	includes := fiber.Map{
		"type_options":   leaveModel.LeaveTypes,
		"status_options": []string{leaveModel.StatusPending, leaveModel.StatusApproved, leaveModel.StatusRejected},
	}

	return helper.JsonListEx(c, "leaves fetched",
		leaveDTO.ToLeaveResponses(pageItems),
		helper.PaginationFromView(info, len(pageItems)),
		includes,
	)
}

// ===================== APPLY =====================
// POST /api/a/leaves/apply
func (h *LeaveController) Apply(c *fiber.Ctx) error {
	var req leaveDTO.ApplyLeaveRequest
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

	start, err := helper.ParseISODate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_date tidak valid")
	}
	end, err := helper.ParseISODate(req.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date tidak valid")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = leaveModel.DefaultReason
	}

	leave := leaveModel.LeaveModel{
		LeaveID:      "lv-" + uuid.NewString(),
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.EmployeeName,
		Department:   emp.EmployeeDepartment,
		LeaveType:    req.LeaveType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Days:         helper.DaysInclusive(start, end),
		Reason:       reason,
		Status:       leaveModel.StatusPending,
		AppliedOn:    helper.Today(),
	}
	h.Registry.Leaves.Prepend(leave)

	return helper.JsonCreated(c, "leave request submitted", leaveDTO.ToLeaveResponse(leave))
}

// ===================== APPROVE / REJECT =====================
// POST /api/a/leaves/:id/approve
// POST /api/a/leaves/:id/reject
// Transisi hanya dari Pending; status final menolak perubahan (409).
func (h *LeaveController) Approve(c *fiber.Ctx) error {
	return h.transition(c, leaveModel.StatusApproved, "leave approved")
}

func (h *LeaveController) Reject(c *fiber.Ctx) error {
	return h.transition(c, leaveModel.StatusRejected, "leave rejected")
}

func (h *LeaveController) transition(c *fiber.Ctx, next, message string) error {
	id := c.Params("id")

	leave, ok := h.Registry.Leaves.Get(id)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Leave request not found")
	}
	if leave.Status != leaveModel.StatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Leave request already "+strings.ToLower(leave.Status))
	}

	h.Registry.Leaves.Update(id, func(l leaveModel.LeaveModel) leaveModel.LeaveModel {
		// guard ulang di dalam critical section
		if l.Status == leaveModel.StatusPending {
			l.Status = next
		}
		return l
	})

	leave, _ = h.Registry.Leaves.Get(id)
	return helper.JsonUpdated(c, message, leaveDTO.ToLeaveResponse(leave))
}

// ===================== DELETE =====================
// DELETE /api/a/leaves/:id
func (h *LeaveController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.Registry.Leaves.Delete(id)
	return helper.JsonDeleted(c, "leave request deleted", fiber.Map{"leave_id": id})
}
