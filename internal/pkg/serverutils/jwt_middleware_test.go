package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret, userId, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userId,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(JwtMiddleware(secret))
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"user_id": ctx.Locals("user_id"),
			"role":    ctx.Locals("role"),
		})
	})
	return app
}

func TestJwtMiddlewareAcceptsTokenSignedWithSameSecret(t *testing.T) {
	// Issuing and verifying share one injected secret, so a token signed
	// the way the auth service signs it must pass the middleware.
	secret := "integration-shared-secret"
	app := protectedApp(secret)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, "u1", "analyst"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestJwtMiddlewareRejectsTokenSignedWithDifferentSecret(t *testing.T) {
	app := protectedApp("verification-secret")

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "some-other-secret", "u1", "analyst"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	app := protectedApp("secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	secret := "secret"
	app := fiber.New()
	app.Use(JwtMiddleware(secret))
	app.Post("/admin-only", RequireRole("admin"), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		role string
		want int
	}{
		{"admin", fiber.StatusOK},
		{"minister", fiber.StatusForbidden},
		{"analyst", fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, secret, "u1", tc.role))

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
