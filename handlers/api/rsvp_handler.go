package api

import (
	"errors"
	"sort"
	"strings"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"
	"nightsky.wedding/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler serves the guest-facing RSVP flow: name lookup, allowed-guest
// resolution, batch submission and latest-status reads.
type RSVPHandler struct {
	lookupService services.ILookupService
	authService   services.IAuthorizationService
	rsvpService   services.IRSVPService
}

func NewRSVPHandler(
	lookupService services.ILookupService,
	authService services.IAuthorizationService,
	rsvpService services.IRSVPService,
) *RSVPHandler {
	return &RSVPHandler{
		lookupService: lookupService,
		authService:   authService,
		rsvpService:   rsvpService,
	}
}

type lookupRequest struct {
	Name string `json:"name"`
}

// Lookup (POST /api/rsvp/lookup) returns candidate guests for a free-text
// name query. Under-length queries return an empty list, not an error.
func (h *RSVPHandler) Lookup(c *fiber.Ctx) error {
	var req lookupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	matches, err := h.lookupService.Lookup(c.UserContext(), req.Name)
	if err != nil {
		configslog.Log.Error("Lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"matches": []models.Guest{}})
	}
	return c.JSON(fiber.Map{"matches": matches})
}

// AllowedGuests (GET /api/guests/:id/can-rsvp-for) returns the actor's
// allowed set with the actor itself first, the rest sorted by last name then
// first name. An unknown actor yields an empty set, never an error.
func (h *RSVPHandler) AllowedGuests(c *fiber.Ctx) error {
	actorID := c.Params("id")
	guests, err := h.authService.AllowedGuests(c.UserContext(), actorID)
	if err != nil {
		configslog.Log.Error("AllowedGuests failed", zap.String("actor", actorID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not resolve allowed guests"})
	}
	sort.SliceStable(guests, func(i, j int) bool {
		// Self first, everyone else by name.
		if guests[i].ID == actorID {
			return true
		}
		if guests[j].ID == actorID {
			return false
		}
		li, lj := strings.ToLower(guests[i].LastName), strings.ToLower(guests[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(guests[i].FirstName) < strings.ToLower(guests[j].FirstName)
	})
	return c.JSON(fiber.Map{"guests": guests})
}

type submitRequest struct {
	RSVPBy string                   `json:"rsvpBy"`
	Guests []services.GuestResponse `json:"guests"`
}

// Submit (POST /api/rsvp/submit) appends one batch of responses. The batch
// is all-or-nothing: any unknown or unauthorized guest rejects the whole
// submission and leaves the ledger untouched.
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	err := h.rsvpService.Submit(c.UserContext(), req.RSVPBy, req.Guests)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRSVPInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
		case errors.Is(err, services.ErrRSVPUnknownGuest):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": err.Error()})
		case errors.Is(err, services.ErrRSVPForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"ok": false, "error": err.Error()})
		default:
			configslog.Log.Error("Submit failed", zap.String("actor", req.RSVPBy), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false})
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

type latestRequest struct {
	GuestIDs []string `json:"guestIds"`
}

// Latest (POST /api/rsvp/latest) returns the current status per guest,
// resolved purely by timestamp.
func (h *RSVPHandler) Latest(c *fiber.Ctx) error {
	var req latestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"latest": []models.RSVPEntry{}})
	}
	entries, err := h.rsvpService.Latest(c.UserContext(), req.GuestIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"latest": []models.RSVPEntry{}})
	}
	return c.JSON(fiber.Map{"latest": entries})
}
