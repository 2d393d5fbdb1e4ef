package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage adalah pesan koordinasi di dalam sebuah regu.
type ChatMessage struct {
	ChatID       uuid.UUID `gorm:"column:chat_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"chat_id"`
	ChatReguID   uuid.UUID `gorm:"column:chat_regu_id;type:uuid;not null;index" json:"chat_regu_id"`
	ChatSenderID uuid.UUID `gorm:"column:chat_sender_id;type:uuid;not null" json:"chat_sender_id"`
	ChatText     string    `gorm:"column:chat_text;type:text;not null" json:"chat_text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
