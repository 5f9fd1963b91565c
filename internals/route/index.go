// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/configs"
	"ems_backend/internals/databases"
	attRoutes "ems_backend/internals/features/attendance/route"
	dashRoutes "ems_backend/internals/features/dashboard/route"
	deptRoutes "ems_backend/internals/features/departments/route"
	empRoutes "ems_backend/internals/features/employees/route"
	eventRoutes "ems_backend/internals/features/events/route"
	leaveRoutes "ems_backend/internals/features/leaves/route"
	notifRoutes "ems_backend/internals/features/notifications/route"
	payRoutes "ems_backend/internals/features/payroll/route"
	roleRoutes "ems_backend/internals/features/roles/route"
	settingsRoutes "ems_backend/internals/features/settings/route"
	authRoutes "ems_backend/internals/features/users/auth/route"
	"ems_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh rute aplikasi:
//   - /api/auth : publik (login/register/forgot-password)
//   - /api/a    : admin, di belakang middleware JWT
func SetupRoutes(app *fiber.App, registry *databases.Registry) {
	jwtSecret := configs.JWTSecret

	api := app.Group("/api")

	authRoutes.AuthPublicRoutes(api, registry, jwtSecret)

	admin := api.Group("/a", auth.AuthMiddleware(jwtSecret, registry.Blacklist))
	authRoutes.AuthProtectedRoutes(admin, registry, jwtSecret)
	dashRoutes.DashboardAdminRoutes(admin, registry)
	empRoutes.EmployeeAdminRoutes(admin, registry)
	deptRoutes.DepartmentAdminRoutes(admin, registry)
	attRoutes.AttendanceAdminRoutes(admin, registry)
	leaveRoutes.LeaveAdminRoutes(admin, registry)
	payRoutes.PayrollAdminRoutes(admin, registry)
	roleRoutes.RoleAdminRoutes(admin, registry)
	notifRoutes.NotificationAdminRoutes(admin, registry)
	eventRoutes.EventAdminRoutes(admin, registry)
	settingsRoutes.SettingsAdminRoutes(admin, registry)
}
