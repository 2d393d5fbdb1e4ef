package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpCode menyimpan kode OTP login per nomor HP; kode disimpan sebagai bcrypt hash.
type OtpCode struct {
	OtpID    uuid.UUID `gorm:"column:otp_id;type:uuid;default:gen_random_uuid();primaryKey" json:"otp_id"`
	Phone    string    `gorm:"column:otp_phone;size:20;not null;index" json:"phone"`
	CodeHash string    `gorm:"column:otp_code_hash;type:text;not null" json:"-"`

	ExpiresAt time.Time  `gorm:"column:otp_expires_at;not null" json:"expires_at"`
	UsedAt    *time.Time `gorm:"column:otp_used_at" json:"used_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OtpCode) TableName() string {
	return "otp_codes"
}
