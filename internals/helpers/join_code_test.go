package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJoinCode_ShapeAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateJoinCode()
		require.NoError(t, err)
		assert.Len(t, code, JoinCodeLength)

		for _, r := range code {
			assert.Contains(t, joinCodeAlphabet, string(r),
				"karakter %q di luar alfabet join code", r)
		}

		// Karakter ambigu tidak boleh muncul
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
	}
}

func TestGenerateJoinCode_NotConstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateJoinCode()
		require.NoError(t, err)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "50 kode tidak mungkin identik semua")
}

func TestGenerateReceiptNumberShape(t *testing.T) {
	no := GenerateReceiptNumber(time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC))

	parts := strings.Split(no, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "KWT", parts[0])
	assert.Equal(t, "20250315", parts[1])
	assert.Len(t, parts[2], 6)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}
