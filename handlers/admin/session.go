package admin

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionCookieName = "admin_auth"
	sessionMaxAge     = 24 * time.Hour
	tokenContext      = "admin-cookie-v1" // HMAC context string
)

// deriveToken derives the session cookie value from the configured secret.
// The token is stable per secret, so no session state is stored server-side.
func deriveToken(secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(tokenContext))
	return hex.EncodeToString(mac.Sum(nil))
}

// RequireSession gates the admin routes behind the admin_auth cookie.
// A missing password hash disables the console entirely.
func RequireSession(passwordHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if passwordHash == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "admin console is not configured"})
		}
		cookie := c.Cookies(sessionCookieName)
		expected := deriveToken(passwordHash)
		if subtle.ConstantTimeCompare([]byte(cookie), []byte(expected)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
