// file: internals/features/leaves/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	leaveCtl "ems_backend/internals/features/leaves/controller"
)

func LeaveAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := leaveCtl.NewLeaveController(registry)

	lv := r.Group("/leaves")
	lv.Get("/list", ctl.List)
	lv.Post("/apply", ctl.Apply)
	lv.Post("/:id/approve", ctl.Approve)
	lv.Post("/:id/reject", ctl.Reject)
	lv.Delete("/:id", ctl.Delete)
}
