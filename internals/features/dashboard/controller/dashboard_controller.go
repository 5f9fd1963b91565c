// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	attModel "ems_backend/internals/features/attendance/model"
	leaveModel "ems_backend/internals/features/leaves/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/seeds"
	"ems_backend/internals/store"
)

type DashboardController struct {
	Registry *databases.Registry
}

func NewDashboardController(registry *databases.Registry) *DashboardController {
	return &DashboardController{Registry: registry}
}

// ===================== SUMMARY =====================
// GET /api/a/dashboard/summary
// Kartu metrik + data tren untuk halaman utama.
func (h *DashboardController) Summary(c *fiber.Ctx) error {
	today := helper.Today()

	todayRecords := store.Filter(h.Registry.Attendance.Snapshot(),
		store.DateEquals(today, func(a attModel.AttendanceModel) string { return a.Date }))

	attendancePct := 0
	if len(todayRecords) > 0 {
		working := 0
		for _, r := range todayRecords {
			if r.Status == attModel.StatusPresent || r.Status == attModel.StatusRemote {
				working++
			}
		}
		attendancePct = working * 100 / len(todayRecords)
	}

	now := time.Now()
	weekAhead := now.AddDate(0, 0, 7).Format(helper.ISODate)
	upcomingLeaves := 0
	for _, lv := range h.Registry.Leaves.Snapshot() {
		if lv.Status != leaveModel.StatusApproved {
			continue
		}
		// rentang cuti menyentuh 7 hari ke depan
		if lv.EndDate >= today && lv.StartDate <= weekAhead {
			upcomingLeaves++
		}
	}

	unreadNotifications := 0
	for _, n := range h.Registry.Notifications.Snapshot() {
		if !n.IsRead {
			unreadNotifications++
		}
	}

	return helper.JsonOK(c, "dashboard summary", fiber.Map{
		"metrics": fiber.Map{
			"total_employees":      h.Registry.Employees.Len(),
			"total_departments":    h.Registry.Departments.Len(),
			"attendance_today_pct": attendancePct,
			"upcoming_leaves":      upcomingLeaves,
			"unread_notifications": unreadNotifications,
		},
		"monthly_hire_trend": fiber.Map{
			"labels": seeds.MonthLabels,
			"values": seeds.MonthlyHireTrend,
		},
		"weekly_attendance_trend": fiber.Map{
			"labels": seeds.WeekLabels,
			"values": seeds.WeeklyAttendanceTrend,
		},
	})
}
