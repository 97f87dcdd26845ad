package rayid_test

import (
	"net/http/httptest"
	"testing"

	"match-tracker/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayIDAssigned(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals("ray_id").(string)
		assert.NotEmpty(t, rid)
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
}

func TestRayIDKeepsCallerSuppliedID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "ray-from-caller")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, "ray-from-caller", resp.Header.Get(rayid.HeaderName))
}
