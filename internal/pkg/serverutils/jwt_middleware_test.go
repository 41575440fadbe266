package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"tutorhive-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    role,
		"exp":     time.Now().Add(time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// Tokens are signed with the config secret and verified by the
// middleware; both must resolve to the same JWT_SECRET value.
func TestJwtMiddlewareAcceptsConfigSignedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	cfg := config.Load()

	if cfg.Auth.JWTSecret != "middleware-test-secret" {
		t.Fatalf("config secret %q does not track JWT_SECRET", cfg.Auth.JWTSecret)
	}

	app := fiber.New()
	app.Get("/secure", JwtMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/tutor-only", JwtMiddleware, RequireRole("tutor"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{"config-signed token accepted", "/secure", signToken(t, cfg.Auth.JWTSecret, "student"), fiber.StatusOK},
		{"missing token rejected", "/secure", "", fiber.StatusUnauthorized},
		{"foreign secret rejected", "/secure", signToken(t, "some-other-secret", "student"), fiber.StatusUnauthorized},
		{"wrong role rejected", "/tutor-only", signToken(t, cfg.Auth.JWTSecret, "student"), fiber.StatusForbidden},
		{"matching role accepted", "/tutor-only", signToken(t, cfg.Auth.JWTSecret, "tutor"), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
