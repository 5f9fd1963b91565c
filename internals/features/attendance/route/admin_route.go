// file: internals/features/attendance/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	attCtl "ems_backend/internals/features/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := attCtl.NewAttendanceController(registry)

	att := r.Group("/attendance")
	att.Get("/list", ctl.List)
	att.Get("/summary", ctl.Summary)
	att.Post("/check-in", ctl.CheckIn)
	att.Post("/check-out", ctl.CheckOut)
	att.Post("/mark", ctl.MarkStatus)
}
