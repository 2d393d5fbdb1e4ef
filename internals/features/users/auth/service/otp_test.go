package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateOtpCode_SixDigits(t *testing.T) {
	re := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 20; i++ {
		code, err := generateOtpCode()
		require.NoError(t, err)
		assert.Regexp(t, re, code)
	}
}

// Round-trip hash seperti yang dilakukan SendOtp lalu Login:
// kode benar lolos, kode lain ditolak.
func TestOtpHashRoundTrip(t *testing.T) {
	code, err := generateOtpCode()
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte(code)))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("kode-salah")))
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"08123456789", "+628123456789"},
		{"0812-3456-789", "+628123456789"},
		{"62812 3456 789", "+628123456789"},
		{"+628123456789", "+628123456789"},
		{" 08123456789 ", "+628123456789"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizePhone(tc.in), tc.in)
	}
}
