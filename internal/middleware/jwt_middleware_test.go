package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang/internal/middleware"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

func setup(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	auth := services.NewAuthService(repositories.NewMockUserRepository(), "secret", time.Hour)
	require.NoError(t, auth.EnsureUser("admin", "admin@example.com", "password", models.RoleAdmin))
	require.NoError(t, auth.EnsureUser("clerk", "clerk@example.com", "password", models.RoleStaff))

	app := fiber.New()
	app.Use(middleware.AuthRequired(auth))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserID(c))
	})
	app.Delete("/admin", middleware.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, auth
}

func token(t *testing.T, auth *services.AuthService, username string) string {
	t.Helper()
	tok, _, err := auth.LoginUser(username, "password")
	require.NoError(t, err)
	return tok
}

func TestAuthRequired(t *testing.T) {
	app, auth := setup(t)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", fiber.StatusUnauthorized},
		{"valid token", "Bearer " + token(t, auth, "admin"), fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRequireRole(t *testing.T) {
	app, auth := setup(t)

	req := httptest.NewRequest("DELETE", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, auth, "clerk"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, auth, "admin"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
