package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCanValidate(t *testing.T) {
	assert.NoError(t, EnsureCanValidate("pending"))
	// Donasi yang ditolak masih boleh divalidasi ulang oleh admin
	assert.NoError(t, EnsureCanValidate("rejected"))

	err := EnsureCanValidate("validated")
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestEnsureCanDelete(t *testing.T) {
	assert.NoError(t, EnsureCanDelete("pending"))
	assert.NoError(t, EnsureCanDelete("rejected"))

	err := EnsureCanDelete("validated")
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}
