// internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ziswaf_backend/internals/configs"
	authDTO "ziswaf_backend/internals/features/users/auth/dto"
	authModel "ziswaf_backend/internals/features/users/auth/model"
	userDTO "ziswaf_backend/internals/features/users/user/dto"
	userModel "ziswaf_backend/internals/features/users/user/model"
	helper "ziswaf_backend/internals/helpers"
)

const (
	otpTTL    = 5 * time.Minute
	otpDigits = 6
)

var validate = validator.New()

/* ==========================
   SEND OTP
========================== */

// POST /api/auth/send-otp
func SendOtp(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.SendOtpRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	phone := normalizePhone(body.Phone)

	code, err := generateOtpCode()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kode OTP")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kode OTP")
	}

	// OTP lama untuk nomor yang sama hangus
	now := time.Now().UTC()
	if err := db.Model(&authModel.OtpCode{}).
		Where("otp_phone = ? AND otp_used_at IS NULL", phone).
		Update("otp_used_at", now).Error; err != nil {
		log.Printf("[OTP] gagal invalidasi OTP lama: %v", err)
	}

	entry := authModel.OtpCode{
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(otpTTL),
	}
	if err := db.Create(&entry).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kode OTP")
	}

	// TODO: integrasi gateway WhatsApp/SMS untuk kirim kode ke nomor user.
	data := fiber.Map{"expires_at": entry.ExpiresAt}
	if !configs.IsProduction() {
		// Dev only: echo kode biar gampang testing tanpa gateway
		data["otp"] = code
	}

	return helper.Success(c, "Kode OTP telah dikirim", data)
}

/* ==========================
   LOGIN (phone + OTP)
========================== */

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	phone := normalizePhone(body.Phone)
	now := time.Now().UTC()

	var otp authModel.OtpCode
	if err := db.
		Where("otp_phone = ? AND otp_used_at IS NULL AND otp_expires_at > ?", phone, now).
		Order("created_at DESC").
		First(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Kode OTP tidak ditemukan atau sudah kadaluarsa")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(body.Otp)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Kode OTP salah")
	}

	// Tandai OTP terpakai (sekali pakai)
	if err := db.Model(&otp).Update("otp_used_at", now).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	var user userModel.UserModel
	if err := db.Where("user_phone = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Nomor belum terdaftar, silakan daftar dulu")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return issueToken(c, &user, "Login berhasil")
}

/* ==========================
   REGISTER
========================== */

// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	user := userModel.UserModel{
		FullName: strings.TrimSpace(body.FullName),
		Phone:    normalizePhone(body.Phone),
		City:     strings.TrimSpace(body.City),
		Role:     "relawan",
		IsActive: true,
	}

	if err := db.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "Nomor HP sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return issueToken(c, &user, "Pendaftaran berhasil")
}

/* ==========================
   LOGIN GOOGLE (admin web)
========================== */

// POST /api/auth/login-google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.LoginGoogleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	clientID := configs.GoogleClientID
	if clientID == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{clientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Gagal membaca klaim Google")
	}

	// Akun admin diprovisikan manual; Google hanya jalur login, bukan pendaftaran.
	var user userModel.UserModel
	if err := db.Where("user_email = ?", claimSet.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusForbidden, "Email tidak terdaftar sebagai pengelola")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if user.GoogleID == nil && claimSet.Sub != "" {
		sub := claimSet.Sub
		_ = db.Model(&user).Update("user_google_id", sub).Error
	}

	return issueToken(c, &user, "Login berhasil")
}

/* ==========================
   LOGOUT
========================== */

// POST /api/auth/logout — blacklist token yang sedang dipakai
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	expiredAt := time.Now().UTC().Add(AccessTTLDefault)
	if claims, err := ParseAccessToken(tokenString); err == nil {
		if expF, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expF), 0).UTC()
		}
	}

	if err := BlacklistToken(db, tokenString, expiredAt); err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	c.ClearCookie("access_token")
	return helper.Success(c, "Logout berhasil", nil)
}

/* ==========================
   Small helpers
========================== */

func issueToken(c *fiber.Ctx, user *userModel.UserModel, message string) error {
	token, err := CreateAccessToken(user, nowUTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.Success(c, message, fiber.Map{
		"access_token": token,
		"user":         userDTO.ToUserResponse(user),
	})
}

// normalizePhone menyeragamkan nomor: buang spasi/dash, "08..." jadi "+628...".
func normalizePhone(phone string) string {
	p := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(p, "08") {
		p = "+62" + p[1:]
	} else if strings.HasPrefix(p, "62") {
		p = "+" + p
	}
	return p
}

func generateOtpCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
