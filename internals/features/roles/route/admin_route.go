// file: internals/features/roles/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	roleCtl "ems_backend/internals/features/roles/controller"
)

func RoleAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := roleCtl.NewRoleController(registry)

	roles := r.Group("/roles")
	roles.Get("/list", ctl.List)
	roles.Get("/summary", ctl.Summary)
	roles.Post("/", ctl.Create)
	roles.Put("/:id", ctl.Update)
	roles.Post("/:id/toggle-permission", ctl.TogglePermission)
	roles.Delete("/:id", ctl.Delete)
}
