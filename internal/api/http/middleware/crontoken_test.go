package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func cronApp(token string) *fiber.App {
	app := fiber.New()
	app.Get("/cron", CronToken(token), func(c fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestCronToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"matching token", "s3cret", "s3cret", fiber.StatusOK},
		{"wrong token", "s3cret", "guess", fiber.StatusUnauthorized},
		{"missing header", "s3cret", "", fiber.StatusUnauthorized},
		{"empty configured token rejects everything", "", "", fiber.StatusForbidden},
		{"empty configured token rejects even empty match", "", "anything", fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/cron", nil)
			if tt.header != "" {
				req.Header.Set("X-Cron-Token", tt.header)
			}

			resp, err := cronApp(tt.configured).Test(req)
			if err != nil {
				t.Fatalf("Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
