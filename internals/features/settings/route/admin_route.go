// file: internals/features/settings/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	settingsCtl "ems_backend/internals/features/settings/controller"
)

func SettingsAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := settingsCtl.NewSettingsController(registry)

	st := r.Group("/settings")
	st.Get("/theme", ctl.GetTheme)
	st.Put("/theme", ctl.UpdateTheme)
	st.Get("/organization", ctl.GetOrganization)
	st.Put("/organization", ctl.UpdateOrganization)
}
