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

// App dengan DB nil: setiap kasus di sini harus ditolak sebelum
// controller menyentuh DB, kalau tidak handler akan panic.
func newDonationTestApp(role string, userID uuid.UUID, reguID string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		if userID != uuid.Nil {
			c.Locals("user_id", userID.String())
		}
		if reguID != "" {
			c.Locals("regu_id", reguID)
		}
		return c.Next()
	})
	ctrl := NewDonationController(nil)
	app.Get("/api/donations", ctrl.GetAll)
	return app
}

func TestGetAll_BlankScopeRejectedBeforeDB(t *testing.T) {
	app := newDonationTestApp(constants.RoleRelawan, uuid.New(), "")

	for _, target := range []string{
		"/api/donations",
		"/api/donations?relawan_id=",
		"/api/donations?relawan_id=%20%20",
		"/api/donations?relawan_id=bukan-uuid",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
}

func TestGetAll_TanpaRoleTetapWajibScope(t *testing.T) {
	// Token tanpa role diperlakukan seperti non-admin
	app := newDonationTestApp("", uuid.Nil, "")

	req := httptest.NewRequest(http.MethodGet, "/api/donations", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAll_RelawanLainForbidden(t *testing.T) {
	app := newDonationTestApp(constants.RoleRelawan, uuid.New(), "")

	req := httptest.NewRequest(http.MethodGet, "/api/donations?relawan_id="+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetAll_PembimbingTanpaReguForbidden(t *testing.T) {
	// Pembimbing tanpa klaim regu_id ditolak sebelum query membership
	app := newDonationTestApp(constants.RolePembimbing, uuid.New(), "")

	req := httptest.NewRequest(http.MethodGet, "/api/donations?relawan_id="+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
