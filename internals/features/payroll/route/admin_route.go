// file: internals/features/payroll/route/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	salaryCtl "ems_backend/internals/features/payroll/controller"
)

func PayrollAdminRoutes(r fiber.Router, registry *databases.Registry) {
	ctl := salaryCtl.NewSalaryController(registry)

	pay := r.Group("/payroll")
	pay.Get("/list", ctl.List)
	pay.Get("/summary", ctl.Summary)
	pay.Post("/", ctl.Create)
	pay.Put("/:id", ctl.Update)
	pay.Post("/:id/mark-paid", ctl.MarkPaid)
	pay.Delete("/:id", ctl.Delete)
}
