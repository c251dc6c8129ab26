package middleware

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/pkg/jwt"
	"context"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryDenylist struct {
	revoked map[string]bool
}

func (d *memoryDenylist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	d.revoked[jti] = true
	return nil
}

func (d *memoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return d.revoked[jti], nil
}

func newApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	jwtService := jwt.NewJWTService(jwt.NewNoopDenylist())
	m := NewMiddleware()
	whoami := func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatUint(uint64(UserID(c)), 10))
	}

	app := fiber.New()
	app.Use(m.MetricsMiddleware())
	app.Get("/private", m.AuthMiddleware(jwtService), whoami)
	app.Get("/public", m.OptionalAuthMiddleware(jwtService), whoami)
	return app, jwtService
}

func get(t *testing.T, app *fiber.App, path, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthMiddleware(t *testing.T) {
	app, jwtService := newApp(t)
	token, err := jwtService.GenerateTokenUser(5, domain.RoleUser)
	require.NoError(t, err)

	code, body := get(t, app, "/private", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "5", body)

	code, body = get(t, app, "/private", "Token "+token)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "5", body)

	code, _ = get(t, app, "/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = get(t, app, "/private", "Bearer broken")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = get(t, app, "/private", "Basic dXNlcjpwYXNz")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	app, jwtService := newApp(t)
	token, err := jwtService.GenerateTokenUser(9, domain.RoleUser)
	require.NoError(t, err)

	code, body := get(t, app, "/public", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "0", body)

	code, body = get(t, app, "/public", "Token "+token)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "9", body)

	code, _ = get(t, app, "/public", "Token broken")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestRevokedTokenIsRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	denylist := &memoryDenylist{revoked: map[string]bool{}}
	jwtService := jwt.NewJWTService(denylist)
	m := NewMiddleware()

	app := fiber.New()
	app.Get("/private", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	token, err := jwtService.GenerateTokenUser(1, domain.RoleUser)
	require.NoError(t, err)
	require.NoError(t, jwtService.RevokeToken(context.Background(), token))

	code, _ := get(t, app, "/private", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
