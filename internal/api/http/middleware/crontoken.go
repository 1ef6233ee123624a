package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
)

// CronToken guards scheduler-invoked endpoints with a shared secret passed
// in the X-Cron-Token header. An empty configured token rejects every
// request rather than leaving the endpoint open.
func CronToken(token string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token == "" {
			return fiber.ErrForbidden
		}

		got := c.Get("X-Cron-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return fiber.ErrUnauthorized
		}

		return c.Next()
	}
}
