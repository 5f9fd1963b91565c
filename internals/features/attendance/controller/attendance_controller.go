// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	attDTO "ems_backend/internals/features/attendance/dto"
	attModel "ems_backend/internals/features/attendance/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/store"
)

type AttendanceController struct {
	Registry *databases.Registry
}

func NewAttendanceController(registry *databases.Registry) *AttendanceController {
	return &AttendanceController{Registry: registry}
}

const clockLayout = "03:04 PM"

// ===================== LIST =====================
// GET /api/a/attendance/list?search=&date=&status=&page=&per_page=
func (h *AttendanceController) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	date := strings.TrimSpace(c.Query("date"))
	status := strings.TrimSpace(c.Query("status"))
	paging := helper.ResolvePaging(c, store.DefaultPageSize, 100)

	pred := store.And(
		store.TextSearch(search, attModel.AttendanceModel.SearchFields),
		store.DateEquals(date, func(a attModel.AttendanceModel) string { return a.Date }),
		store.Exact(status, func(a attModel.AttendanceModel) string { return a.Status }),
	)

	filtered := store.Filter(h.Registry.Attendance.Snapshot(), pred)
	pageItems, info := store.Paginate(filtered, paging.Page, paging.PerPage)

	includes := fiber.Map{
		"summary":        attDTO.SummaryOf(filtered),
		"status_options": attModel.AttendanceStatuses,
	}

	return helper.JsonListEx(c, "attendance fetched",
		attDTO.ToAttendanceResponses(pageItems),
		helper.PaginationFromView(info, len(pageItems)),
		includes,
	)
}

// ===================== SUMMARY =====================
// GET /api/a/attendance/summary?date=
// Default: ringkasan hari ini.
func (h *AttendanceController) Summary(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = helper.Today()
	}

	filtered := store.Filter(h.Registry.Attendance.Snapshot(),
		store.DateEquals(date, func(a attModel.AttendanceModel) string { return a.Date }))

	return helper.JsonOK(c, "attendance summary", fiber.Map{
		"date":    date,
		"summary": attDTO.SummaryOf(filtered),
	})
}

// ===================== CHECK-IN =====================
// POST /api/a/attendance/check-in
// Membuat record hari itu untuk karyawan; dobel check-in ditolak 409.
func (h *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var req attDTO.CheckInRequest
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

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = helper.Today()
	}
	checkIn := strings.TrimSpace(req.Time)
	if checkIn == "" {
		checkIn = time.Now().Format(clockLayout)
	} else if _, err := time.Parse(clockLayout, checkIn); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "time must look like 09:45 AM")
	}

	recID := emp.EmployeeID + "-" + date
	if _, exists := h.Registry.Attendance.Get(recID); exists {
		return helper.JsonError(c, fiber.StatusConflict, "Attendance already recorded for this day")
	}

	rec := attModel.AttendanceModel{
		AttendanceID: recID,
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.EmployeeName,
		Department:   emp.EmployeeDepartment,
		Role:         emp.EmployeeRole,
		Date:         date,
		CheckIn:      &checkIn,
		Status:       attModel.StatusPresent,
		TotalHours:   "0h",
	}
	h.Registry.Attendance.Prepend(rec)

	return helper.JsonCreated(c, "checked in", attDTO.ToAttendanceResponse(rec))
}

// ===================== CHECK-OUT =====================
// POST /api/a/attendance/check-out
func (h *AttendanceController) CheckOut(c *fiber.Ctx) error {
	var req attDTO.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = helper.Today()
	}
	checkOut := strings.TrimSpace(req.Time)
	if checkOut == "" {
		checkOut = time.Now().Format(clockLayout)
	} else if _, err := time.Parse(clockLayout, checkOut); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "time must look like 06:30 PM")
	}

	recID := req.EmployeeID + "-" + date
	rec, ok := h.Registry.Attendance.Get(recID)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "No check-in recorded for this day")
	}
	if rec.CheckIn == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Cannot check out without a check-in")
	}
	if rec.CheckOut != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Already checked out for this day")
	}

	h.Registry.Attendance.Update(recID, func(a attModel.AttendanceModel) attModel.AttendanceModel {
		a.CheckOut = &checkOut
		a.TotalHours = workedHours(*a.CheckIn, checkOut)
		return a
	})

	rec, _ = h.Registry.Attendance.Get(recID)
	return helper.JsonUpdated(c, "checked out", attDTO.ToAttendanceResponse(rec))
}

// ===================== MARK STATUS =====================
// POST /api/a/attendance/mark
// Tandai Absent / On Leave / Remote tanpa jam masuk.
func (h *AttendanceController) MarkStatus(c *fiber.Ctx) error {
	var req attDTO.MarkStatusRequest
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

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = helper.Today()
	}

	recID := emp.EmployeeID + "-" + date
	if updated := h.Registry.Attendance.Update(recID, func(a attModel.AttendanceModel) attModel.AttendanceModel {
		a.Status = req.Status
		if req.Status == attModel.StatusAbsent || req.Status == attModel.StatusOnLeave {
			a.CheckIn = nil
			a.CheckOut = nil
			a.TotalHours = "0h"
		}
		return a
	}); updated {
		rec, _ := h.Registry.Attendance.Get(recID)
		return helper.JsonUpdated(c, "attendance updated", attDTO.ToAttendanceResponse(rec))
	}

	rec := attModel.AttendanceModel{
		AttendanceID: recID,
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.EmployeeName,
		Department:   emp.EmployeeDepartment,
		Role:         emp.EmployeeRole,
		Date:         date,
		Status:       req.Status,
		TotalHours:   "0h",
	}
	h.Registry.Attendance.Prepend(rec)
	return helper.JsonCreated(c, "attendance recorded", attDTO.ToAttendanceResponse(rec))
}

// workedHours menghitung durasi "8h 45m" dari jam masuk/keluar format 12 jam.
func workedHours(checkIn, checkOut string) string {
	in, errIn := time.Parse(clockLayout, checkIn)
	out, errOut := time.Parse(clockLayout, checkOut)
	if errIn != nil || errOut != nil || !out.After(in) {
		return "0h"
	}
	d := out.Sub(in)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
