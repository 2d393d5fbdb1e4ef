package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyEndpointMapped(t *testing.T) {
	assert.True(t, LegacyEndpointMapped(fiber.MethodGet, "statistics"))
	assert.True(t, LegacyEndpointMapped(fiber.MethodGet, "muzakki"))
	assert.True(t, LegacyEndpointMapped(fiber.MethodGet, "chat"))
	assert.True(t, LegacyEndpointMapped(fiber.MethodPost, "chat"))

	// Stub yang memang tidak pernah dipetakan
	assert.False(t, LegacyEndpointMapped(fiber.MethodGet, "donations"))
	assert.False(t, LegacyEndpointMapped(fiber.MethodGet, "regus"))
	assert.False(t, LegacyEndpointMapped(fiber.MethodPost, "muzakki"))
	assert.False(t, LegacyEndpointMapped(fiber.MethodGet, "uploads"))
}

func TestLegacyRoutes_UnmappedReturns501(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api")
	LegacyRoutes(api, nil)

	for _, target := range []string{
		"/api/legacy/donations",
		"/api/legacy/regus",
		"/api/legacy/uploads/generate",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotImplemented, resp.StatusCode, target)
	}
}
