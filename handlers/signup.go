package handlers

import (
	"oporun-backend/middleware"
	"oporun-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSignupRoutes(app *fiber.App, signupService *services.SignupService) {
	// 🔓 Public route consumed by the signup modal/form
	app.Post("/api/signup", signupService.Signup)

	// 🔒 Admin-only routes
	admin := app.Group("/api/admin", middleware.AdminAuthMiddleware())
	admin.Get("/submissions", signupService.ListSubmissions)
	admin.Post("/submissions/export", signupService.ExportSubmissions)
}
