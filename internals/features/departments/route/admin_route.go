// file: internals/features/departments/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	deptCtl "ems_backend/internals/features/departments/controller"
)

func DepartmentAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := deptCtl.NewDepartmentController(registry)

	dept := r.Group("/departments")
	dept.Get("/list", ctl.List)
	dept.Get("/:id", ctl.GetByID)
	dept.Post("/", ctl.Create)
	dept.Put("/:id", ctl.Update)
	dept.Delete("/:id", ctl.Delete)
}
