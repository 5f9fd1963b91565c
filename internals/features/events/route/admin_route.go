// file: internals/features/events/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	eventCtl "ems_backend/internals/features/events/controller"
)

func EventAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := eventCtl.NewEventController(registry)

	ev := r.Group("/events")
	ev.Get("/list", ctl.List)
	ev.Get("/month", ctl.MonthView)
	ev.Post("/", ctl.Create)
	ev.Put("/:id", ctl.Update)
	ev.Delete("/:id", ctl.Delete)
}
