package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donation struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	// Relawan pencatat & muzakki terkait (opsional untuk donasi anonim/penyaluran)
	DonationRelawanID uuid.UUID  `gorm:"column:donation_relawan_id;type:uuid;not null;index" json:"donation_relawan_id"`
	DonationMuzakkiID *uuid.UUID `gorm:"column:donation_muzakki_id;type:uuid;index" json:"donation_muzakki_id,omitempty"`

	DonationAmount   int    `gorm:"column:donation_amount;not null;check:donation_amount > 0" json:"donation_amount"`
	DonationCategory string `gorm:"column:donation_category;type:varchar(20);not null" json:"donation_category"` // zakat|infaq|sedekah|wakaf
	DonationType     string `gorm:"column:donation_type;type:varchar(20);not null;default:'incoming'" json:"donation_type"`
	DonationNote     string `gorm:"column:donation_note;type:text" json:"donation_note"`

	// Nomor kwitansi unik, dibuat saat pencatatan
	DonationReceiptNo string `gorm:"column:donation_receipt_no;type:varchar(30);not null;unique" json:"donation_receipt_no"`

	// Bukti transfer (diisi setelah upload; boleh kosong bila upload gagal)
	DonationBuktiURL string `gorm:"column:donation_bukti_url;type:text" json:"donation_bukti_url"`

	// Field validasi HANYA diubah lewat aksi admin validate/reject
	DonationStatus          string     `gorm:"column:donation_status;type:varchar(20);not null;default:'pending'" json:"donation_status"` // pending|validated|rejected
	DonationValidatedBy     *uuid.UUID `gorm:"column:donation_validated_by;type:uuid" json:"donation_validated_by,omitempty"`
	DonationValidatedAt     *time.Time `gorm:"column:donation_validated_at" json:"donation_validated_at,omitempty"`
	DonationRejectionReason string     `gorm:"column:donation_rejection_reason;type:text" json:"donation_rejection_reason,omitempty"`

	// Kanal online (Midtrans) — kosong untuk pencatatan manual
	DonationOrderID        *string `gorm:"column:donation_order_id;type:varchar(100);unique" json:"donation_order_id,omitempty"`
	DonationPaymentToken   string `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token,omitempty"`
	DonationPaymentGateway string `gorm:"column:donation_payment_gateway;type:varchar(50)" json:"donation_payment_gateway,omitempty"`
	DonationPaidAt         *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}
