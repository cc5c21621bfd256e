package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PerformanceAnalytics is one assessment result. Rows are immutable after
// creation.
type PerformanceAnalytics struct {
	gorm.Model
	UserID          uuid.UUID                   `gorm:"type:uuid;index;not null" json:"userId"`
	SessionID       *uint                       `gorm:"index" json:"sessionId"`
	Subject         string                      `gorm:"not null" json:"subject"`
	Chapter         string                      `json:"chapter"`
	Score           float64                     `gorm:"type:decimal(5,2)" json:"score"`
	TotalQuestions  int                         `json:"totalQuestions"`
	CorrectAnswers  int                         `json:"correctAnswers"`
	WeakAreas       datatypes.JSONSlice[string] `json:"weakAreas"`
	Recommendations datatypes.JSONSlice[string] `json:"recommendations"`
}
