// file: internals/features/users/auth/route/auth_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	authCtl "ems_backend/internals/features/users/auth/controller"
	"ems_backend/internals/middlewares"
)

// Rute publik /api/auth (rate limit ketat per endpoint).
func AuthPublicRoutes(r fiber.Router, registry *databases.Registry, jwtSecret string) {
	ctl := authCtl.NewAuthController(registry, jwtSecret)

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctl.ForgotPassword)
}

// Rute sesi di belakang middleware auth (/api/a).
func AuthProtectedRoutes(r fiber.Router, registry *databases.Registry, jwtSecret string) {
	ctl := authCtl.NewAuthController(registry, jwtSecret)

	r.Get("/me", ctl.Me)
	r.Post("/logout", ctl.Logout)
}
