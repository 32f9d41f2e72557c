package routes

import (
	"github.com/gofiber/fiber/v2"
)

// registerPageRoutes wires the public content pages. Layout and styling live
// in the templates; the handlers only pick the view.
func registerPageRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("home", fiber.Map{"Title": "Welcome"})
	})
	app.Get("/rsvp", func(c *fiber.Ctx) error {
		return c.Render("rsvp", fiber.Map{"Title": "RSVP"})
	})
}
