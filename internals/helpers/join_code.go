package helper

import (
	"crypto/rand"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Alfabet join code: tanpa 0/O/1/I biar gampang dibaca & diketik dari poster.
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const JoinCodeLength = 6

// GenerateJoinCode membuat kode join acak (crypto/rand) sepanjang JoinCodeLength.
func GenerateJoinCode() (string, error) {
	buf := make([]byte, JoinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("gagal generate join code: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}

// JoinCodeOptions menentukan cara cek keunikan kode di DB.
type JoinCodeOptions struct {
	// Nama tabel di DB, contoh: "regus"
	Table string
	// Nama kolom untuk kode, contoh: "regu_join_code"
	CodeColumn string
	// Kolom soft-delete (NULL berarti belum terhapus). Kosongkan jika tidak pakai.
	SoftDeleteColumn string
}

// EnsureUniqueJoinCode generate kode lalu cek tabrakan di DB; retry beberapa kali.
func EnsureUniqueJoinCode(db *gorm.DB, opts JoinCodeOptions) (string, error) {
	if opts.Table == "" || opts.CodeColumn == "" {
		return "", errors.New("join code options: table/code column required")
	}

	const maxAttempts = 5
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := GenerateJoinCode()
		if err != nil {
			return "", err
		}

		q := db.Table(opts.Table).Where(fmt.Sprintf("%s = ?", opts.CodeColumn), code)
		if opts.SoftDeleteColumn != "" {
			q = q.Where(fmt.Sprintf("%s IS NULL", opts.SoftDeleteColumn))
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("gagal mendapatkan join code unik, coba lagi")
}
