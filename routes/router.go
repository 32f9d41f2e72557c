package routes

import (
	"strings"

	"nightsky.wedding/configs"
	"nightsky.wedding/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes installs the global middleware and all route groups.
func SetupRoutes(app *fiber.App, store repositories.Store, cfg *configs.Config) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	registerPageRoutes(app)
	registerAPIRoutes(app, store)
	registerAdminRoutes(app, store, cfg)

	// Catches everything the groups above did not match.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	path := c.Path()
	if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/admin") {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page not found"})
}
