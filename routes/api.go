package routes

import (
	apihandlers "nightsky.wedding/handlers/api"
	"nightsky.wedding/repositories"
	"nightsky.wedding/services"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes wires the guest-facing RSVP flow under /api.
func registerAPIRoutes(app *fiber.App, store repositories.Store) {
	rsvpHandler := apihandlers.NewRSVPHandler(
		services.NewLookupService(store),
		services.NewAuthorizationService(store),
		services.NewRSVPService(store),
	)
	messageHandler := apihandlers.NewMessageHandler(services.NewMessageService(store))

	api := app.Group("/api")
	api.Post("/rsvp/lookup", rsvpHandler.Lookup)
	api.Post("/rsvp/submit", rsvpHandler.Submit)
	api.Post("/rsvp/latest", rsvpHandler.Latest)
	api.Get("/guests/:id/can-rsvp-for", rsvpHandler.AllowedGuests)
	api.Post("/messages", messageHandler.Post)
}
