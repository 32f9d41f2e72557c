package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler manages the admin login session.
type AuthHandler struct {
	passwordHash string
}

func NewAuthHandler(passwordHash string) *AuthHandler {
	return &AuthHandler{passwordHash: passwordHash}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login (POST /admin/login) verifies the password against the configured
// bcrypt hash and sets the derived session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if h.passwordHash == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false, "error": "admin console is not configured"})
	}
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false, "error": "wrong password"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    deriveToken(h.passwordHash),
		Expires:  time.Now().Add(sessionMaxAge),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"ok": true})
}

// Logout (POST /admin/logout) clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"ok": true})
}
