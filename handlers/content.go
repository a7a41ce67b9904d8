package handlers

import (
	"oporun-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App, contentService *services.ContentService) {
	// 🔓 Public content consumed by the marketing pages
	app.Get("/api/blog", contentService.ListBlogPosts)
	app.Get("/api/blog/:slug", contentService.GetBlogPost)
}
