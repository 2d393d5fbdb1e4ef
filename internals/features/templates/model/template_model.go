package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MessageTemplate adalah templat pesan WA/SMS untuk follow-up muzakki.
// Placeholder ditulis {{nama}}, daftar variabelnya disimpan eksplisit
// supaya client bisa render form pengisian.
type MessageTemplate struct {
	TemplateID    uuid.UUID `gorm:"column:template_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"template_id"`
	TemplateTitle string    `gorm:"column:template_title;size:100;not null" json:"template_title"`
	TemplateBody  string    `gorm:"column:template_body;type:text;not null" json:"template_body"`

	// Contoh: {"nama","jumlah","kategori"}
	TemplateVariables pq.StringArray `gorm:"column:template_variables;type:text[]" json:"template_variables"`

	TemplateCategory string `gorm:"column:template_category;size:50;index" json:"template_category"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (MessageTemplate) TableName() string {
	return "message_templates"
}
