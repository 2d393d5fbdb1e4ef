package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziswaf_backend/internals/constants"
)

// App dengan DB nil: semua kasus di bawah HARUS ditolak sebelum
// query apa pun, kalau tidak handler akan panic.
func newMuzakkiTestApp(role string, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		if userID != uuid.Nil {
			c.Locals("user_id", userID.String())
		}
		return c.Next()
	})
	ctrl := NewMuzakkiController(nil)
	app.Get("/api/muzakki", ctrl.GetByRelawan)
	return app
}

func TestGetByRelawan_BlankScopeRejectedBeforeDB(t *testing.T) {
	app := newMuzakkiTestApp(constants.RoleRelawan, uuid.New())

	for _, target := range []string{
		"/api/muzakki",
		"/api/muzakki?relawan_id=",
		"/api/muzakki?relawan_id=%20%20",
		"/api/muzakki?relawan_id=bukan-uuid",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
}

func TestGetByRelawan_OtherRelawanForbidden(t *testing.T) {
	app := newMuzakkiTestApp(constants.RoleRelawan, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/muzakki?relawan_id="+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetByRelawan_PembimbingTanpaReguForbidden(t *testing.T) {
	// Klaim regu_id tidak diset, jadi penolakan terjadi sebelum DB disentuh
	app := newMuzakkiTestApp(constants.RolePembimbing, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/api/muzakki?relawan_id="+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
