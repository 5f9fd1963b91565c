// file: internals/features/dashboard/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	dashCtl "ems_backend/internals/features/dashboard/controller"
)

func DashboardAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := dashCtl.NewDashboardController(registry)

	r.Get("/dashboard/summary", ctl.Summary)
}
