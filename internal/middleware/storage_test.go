package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnder(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/data", true},
		{"/data/schedule.db", true},
		{"/Data/x", true},
		{"/database", false},
		{"/dat", false},
		{"/", false},
		{"/public/data", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isUnder(tt.path, "/data"), tt.path)
	}
}

func TestBlockPrefix(t *testing.T) {
	app := fiber.New()
	app.Use(BlockPrefix("data/"))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("served")
	})

	for _, target := range []string{
		"/data/schedule.json",
		"/%64ata/schedule.json",
		"/%2e/data/schedule.json",
		"/data%2fschedule.json",
		"/%2564ata/schedule.json",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, target)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBlockPrefixEmptyIsNoop(t *testing.T) {
	for _, prefix := range []string{"", ".", "/"} {
		app := fiber.New()
		app.Use(BlockPrefix(prefix))
		app.Get("/*", func(c *fiber.Ctx) error {
			return c.SendString("served")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/anything", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "prefix %q", prefix)
	}
}
