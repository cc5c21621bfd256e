package services

import (
	"edumate_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsServiceDB defines the interface for performance-analytics rows.
// Rows are written once per assessment submission and never mutated.
type AnalyticsServiceDB interface {
	CreateAnalytics(analytics *models.PerformanceAnalytics) error
	GetAnalyticsByUserID(userID uuid.UUID, subject string) ([]models.PerformanceAnalytics, error)
}

type DefaultAnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsServiceDB(db *gorm.DB) AnalyticsServiceDB {
	return &DefaultAnalyticsService{db: db}
}

func (s *DefaultAnalyticsService) CreateAnalytics(analytics *models.PerformanceAnalytics) error {
	return s.db.Create(analytics).Error
}

// GetAnalyticsByUserID lists the caller's analytics newest first, optionally
// filtered to one subject.
func (s *DefaultAnalyticsService) GetAnalyticsByUserID(userID uuid.UUID, subject string) ([]models.PerformanceAnalytics, error) {
	analytics := []models.PerformanceAnalytics{}
	query := s.db.Where("user_id = ?", userID)
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	result := query.Order("created_at desc").Find(&analytics)
	if result.Error != nil {
		return nil, result.Error
	}
	return analytics, nil
}
