package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadedFile struct {
	gorm.Model
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	SessionID   *uint     `gorm:"index" json:"sessionId"`
	FileName    string    `gorm:"not null" json:"fileName"`
	FilePath    string    `gorm:"not null" json:"filePath"`
	FileSize    int64     `gorm:"not null" json:"fileSize"`
	MimeType    string    `gorm:"not null" json:"mimeType"`
	IsProcessed bool      `gorm:"default:false" json:"isProcessed"`
}
