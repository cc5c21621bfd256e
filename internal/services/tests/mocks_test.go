package services_test

import (
	"context"

	"edumate_go_backend/internal/models"
	"edumate_go_backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	args := m.Called(ctx, prompt, jsonOutput)
	return args.String(0), args.Error(1)
}

type MockAnalyticsServiceDB struct {
	mock.Mock
}

func (m *MockAnalyticsServiceDB) CreateAnalytics(analytics *models.PerformanceAnalytics) error {
	args := m.Called(analytics)
	return args.Error(0)
}

func (m *MockAnalyticsServiceDB) GetAnalyticsByUserID(userID uuid.UUID, subject string) ([]models.PerformanceAnalytics, error) {
	args := m.Called(userID, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PerformanceAnalytics), args.Error(1)
}

type MockWeaknessAnalyzer struct {
	mock.Mock
}

func (m *MockWeaknessAnalyzer) AnalyzeWeaknesses(ctx context.Context, subject, chapter string, score float64, totalQuestions, correctAnswers int, results []services.AnswerResult) ([]string, []string, error) {
	args := m.Called(ctx, subject, chapter, score, totalQuestions, correctAnswers, results)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]string), args.Get(1).([]string), args.Error(2)
}
