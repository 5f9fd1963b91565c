// file: internals/features/employees/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	empCtl "ems_backend/internals/features/employees/controller"
)

// Rute ADMIN (harus sudah di-mount di /api/a dengan middleware auth di atasnya)
func EmployeeAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := empCtl.NewEmployeeController(registry)

	emp := r.Group("/employees")
	emp.Get("/list", ctl.List)
	emp.Get("/:id", ctl.GetByID)
	emp.Post("/", ctl.Create)
	emp.Put("/:id", ctl.Update)
	emp.Delete("/:id", ctl.Delete)
}
