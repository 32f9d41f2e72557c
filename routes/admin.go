package routes

import (
	"nightsky.wedding/configs"
	adminhandlers "nightsky.wedding/handlers/admin"
	"nightsky.wedding/repositories"
	"nightsky.wedding/services"

	"github.com/gofiber/fiber/v2"
)

// registerAdminRoutes wires the password-gated admin API under /admin.
// Login and logout sit outside the session gate; everything else is behind it.
func registerAdminRoutes(app *fiber.App, store repositories.Store, cfg *configs.Config) {
	authHandler := adminhandlers.NewAuthHandler(cfg.AdminPasswordHash)
	guestHandler := adminhandlers.NewGuestHandler(services.NewGuestService(store))
	messageHandler := adminhandlers.NewMessageHandler(services.NewMessageService(store))
	maintenanceHandler := adminhandlers.NewMaintenanceHandler(
		services.NewMaintenanceService(store, cfg.AllowDestructive),
	)

	group := app.Group("/admin")
	group.Post("/login", authHandler.Login)
	group.Post("/logout", authHandler.Logout)

	group.Use(adminhandlers.RequireSession(cfg.AdminPasswordHash))
	group.Get("/guests", guestHandler.List)
	group.Post("/guests", guestHandler.Create)
	group.Post("/guests/batch", guestHandler.CreateBatch)
	group.Get("/guests/:id/permissions", guestHandler.GetPermissions)
	group.Put("/guests/:id/permissions", guestHandler.SetPermissions)
	group.Get("/messages", messageHandler.List)
	group.Patch("/messages/:id", messageHandler.Moderate)
	group.Post("/wipe", maintenanceHandler.Wipe)
}
