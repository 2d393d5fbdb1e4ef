package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Muzakki = prospek/pendonor yang dibina satu relawan.
type Muzakki struct {
	MuzakkiID uuid.UUID `gorm:"column:muzakki_id;type:uuid;default:gen_random_uuid();primaryKey" json:"muzakki_id"`

	MuzakkiName  string `gorm:"column:muzakki_name;size:100;not null" json:"muzakki_name"`
	MuzakkiPhone string `gorm:"column:muzakki_phone;size:20" json:"muzakki_phone"`
	MuzakkiCity  string `gorm:"column:muzakki_city;size:100" json:"muzakki_city"`

	// Status bebas berpindah: baru | follow-up | donasi
	MuzakkiStatus string `gorm:"column:muzakki_status;type:varchar(20);not null;default:'baru'" json:"muzakki_status"`
	MuzakkiNotes  string `gorm:"column:muzakki_notes;type:text" json:"muzakki_notes"`

	// Scoping list per relawan pemilik
	MuzakkiRelawanID uuid.UUID `gorm:"column:muzakki_relawan_id;type:uuid;not null;index" json:"muzakki_relawan_id"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Muzakki) TableName() string {
	return "muzakkis"
}
