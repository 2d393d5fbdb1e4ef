package model

import (
	"time"

	"github.com/google/uuid"
)

// Komunikasi = catatan kontak relawan dengan muzakki (call/whatsapp/meeting).
type Komunikasi struct {
	KomunikasiID uuid.UUID `gorm:"column:komunikasi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"komunikasi_id"`

	KomunikasiMuzakkiID uuid.UUID `gorm:"column:komunikasi_muzakki_id;type:uuid;not null;index" json:"komunikasi_muzakki_id"`
	KomunikasiAuthorID  uuid.UUID `gorm:"column:komunikasi_author_id;type:uuid;not null" json:"komunikasi_author_id"`

	KomunikasiType string `gorm:"column:komunikasi_type;type:varchar(20);not null" json:"komunikasi_type"`
	KomunikasiNote string `gorm:"column:komunikasi_note;type:text" json:"komunikasi_note"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Komunikasi) TableName() string {
	return "komunikasis"
}
