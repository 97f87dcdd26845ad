package auth_test

import (
	"net/http/httptest"
	"testing"

	"match-tracker/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthRejectsMissingKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthRejectsWrongKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-API-Key", "wrong")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthAcceptsValidKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-API-Key", "secret")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthDisabledWithoutKey(t *testing.T) {
	app := setupApp("")

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
