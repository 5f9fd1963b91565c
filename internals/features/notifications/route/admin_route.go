// file: internals/features/notifications/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	notifCtl "ems_backend/internals/features/notifications/controller"
)

func NotificationAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := notifCtl.NewNotificationController(registry)

	notif := r.Group("/notifications")
	notif.Get("/list", ctl.List)
	notif.Post("/", ctl.Create)
	notif.Post("/mark-all-read", ctl.MarkAllRead)
	notif.Post("/:id/read", ctl.MarkRead)
	notif.Post("/:id/unread", ctl.MarkUnread)
	notif.Delete("/:id", ctl.Delete)
}
