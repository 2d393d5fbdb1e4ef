package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	FullName string    `gorm:"column:user_full_name;size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Phone    string    `gorm:"column:user_phone;size:20;unique;not null" json:"phone" validate:"required,min=9,max=20"`
	City     string    `gorm:"column:user_city;size:100" json:"city"`
	Email    *string   `gorm:"column:user_email;size:255;unique" json:"email,omitempty"`
	GoogleID *string   `gorm:"column:user_google_id;size:255;unique" json:"-"`

	Role   string     `gorm:"column:user_role;type:varchar(20);not null;default:'relawan'" json:"role"`
	ReguID *uuid.UUID `gorm:"column:user_regu_id;type:uuid" json:"regu_id,omitempty"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
