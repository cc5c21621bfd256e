package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

type ChatSession struct {
	gorm.Model
	UserID   uuid.UUID     `gorm:"type:uuid;index;not null" json:"userId"`
	Title    string        `gorm:"not null" json:"title"`
	Subject  string        `json:"subject"`
	IsActive bool          `gorm:"default:true" json:"isActive"`
	Messages []ChatMessage `gorm:"foreignKey:SessionID" json:"-"`
}

type ChatMessage struct {
	gorm.Model
	SessionID uint           `gorm:"index;not null" json:"sessionId"`
	Role      string         `gorm:"not null" json:"role"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
}
