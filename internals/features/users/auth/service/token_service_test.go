package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziswaf_backend/internals/configs"
	userModel "ziswaf_backend/internals/features/users/user/model"
)

func testUser() *userModel.UserModel {
	reguID := uuid.New()
	return &userModel.UserModel{
		UserID:   uuid.New(),
		FullName: "Ahmad Fauzi",
		Phone:    "+628123456789",
		Role:     "relawan",
		ReguID:   &reguID,
		IsActive: true,
	}
}

func TestCreateAndParseAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret-token-service"
	u := testUser()
	now := time.Now().UTC()

	token, err := CreateAccessToken(u, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.UserID.String(), claims["id"])
	assert.Equal(t, "Ahmad Fauzi", claims["full_name"])
	assert.Equal(t, "relawan", claims["role"])
	assert.Equal(t, u.ReguID.String(), claims["regu_id"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Equal(t, now.Add(AccessTTLDefault).Unix(), int64(exp))
}

func TestBuildAccessClaims_NoRegu(t *testing.T) {
	u := testUser()
	u.ReguID = nil

	claims := BuildAccessClaims(u, time.Now())
	_, hasRegu := claims["regu_id"]
	assert.False(t, hasRegu, "user tanpa regu tidak boleh punya klaim regu_id")
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	configs.JWTSecret = "secret-a"
	u := testUser()

	token, err := CreateAccessToken(u, time.Now())
	require.NoError(t, err)

	configs.JWTSecret = "secret-b"
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}

func TestCreateAccessToken_MissingSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := CreateAccessToken(testUser(), time.Now())
	assert.Error(t, err)
}
