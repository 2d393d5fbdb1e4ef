package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Program adalah program penghimpunan (mis. Ramadhan, Qurban) yang bisa
// dirujuk dari templat pesan dan materi kampanye.
type Program struct {
	ProgramID          uuid.UUID `gorm:"column:program_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"program_id"`
	ProgramName        string    `gorm:"column:program_name;size:100;not null" json:"program_name"`
	ProgramDescription string    `gorm:"column:program_description;type:text" json:"program_description"`
	ProgramCategory    string    `gorm:"column:program_category;size:50;index" json:"program_category"`
	ProgramIsActive    bool      `gorm:"column:program_is_active;not null;default:true" json:"program_is_active"`

	// Metadata bebas: target, periode, link materi, dst.
	ProgramMetadata datatypes.JSON `gorm:"column:program_metadata;type:jsonb" json:"program_metadata,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Program) TableName() string {
	return "programs"
}
