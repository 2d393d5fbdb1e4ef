package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Regu adalah tim relawan yang dibina seorang pembimbing.
type Regu struct {
	ReguID   uuid.UUID `gorm:"column:regu_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"regu_id"`
	ReguName string    `gorm:"column:regu_name;size:100;not null" json:"regu_name"`

	// 🔑 Kode unik untuk bergabung, dibagikan pembimbing ke relawan
	ReguJoinCode string `gorm:"column:regu_join_code;type:varchar(10);not null;unique" json:"regu_join_code"`

	ReguPembimbingID uuid.UUID `gorm:"column:regu_pembimbing_id;type:uuid;not null;index" json:"regu_pembimbing_id"`

	// 🎯 Target penghimpunan (rupiah), 0 = belum ditetapkan
	ReguTargetAmount int64 `gorm:"column:regu_target_amount;not null;default:0" json:"regu_target_amount"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Regu) TableName() string {
	return "regus"
}
