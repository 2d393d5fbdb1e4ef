// internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"ziswaf_backend/internals/configs"
	authModel "ziswaf_backend/internals/features/users/auth/model"
	userModel "ziswaf_backend/internals/features/users/user/model"
)

const AccessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

// BuildAccessClaims menyusun klaim access token untuk user ZISWAF.
// regu ikut di klaim supaya fitur chat/regu tidak perlu query user lagi.
func BuildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"full_name": u.FullName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTTLDefault).Unix(),
	}
	if u.ReguID != nil {
		claims["regu_id"] = u.ReguID.String()
	}
	return claims
}

// CreateAccessToken sign klaim dengan HS256.
func CreateAccessToken(u *userModel.UserModel, now time.Time) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, BuildAccessClaims(u, now)).
		SignedString([]byte(secret))
}

// ParseAccessToken verifikasi signature & kembalikan klaim (untuk test/insight).
func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid")
	}
	return claims, nil
}

// BlacklistToken menandai token tidak bisa dipakai lagi (logout).
func BlacklistToken(db *gorm.DB, tokenString string, expiredAt time.Time) error {
	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}
