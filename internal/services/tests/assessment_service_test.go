package services_test

import (
	"context"
	"errors"
	"testing"

	"edumate_go_backend/internal/models"
	"edumate_go_backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScore(t *testing.T) {
	assert.Equal(t, 0.0, services.Score(0, 0))
	assert.Equal(t, 0.0, services.Score(0, 5))
	assert.Equal(t, 100.0, services.Score(5, 5))
	assert.Equal(t, 50.0, services.Score(2, 4))
	assert.Equal(t, 33.33, services.Score(1, 3))
	assert.Equal(t, 66.67, services.Score(2, 3))
}

func TestAnalyzePerformance(t *testing.T) {
	analyzer := new(MockWeaknessAnalyzer)
	analyticsStore := new(MockAnalyticsServiceDB)
	assessmentService := services.NewAssessmentService(analyzer, analyticsStore)

	userID := uuid.New()
	answers := []services.AnswerSubmission{
		{QuestionID: 1, UserAnswer: 0, CorrectAnswer: 0},
		{QuestionID: 2, UserAnswer: 1, CorrectAnswer: 3},
		{QuestionID: 3, UserAnswer: 2, CorrectAnswer: 2},
	}
	expectedResults := []services.AnswerResult{
		{QuestionID: 1, Correct: true},
		{QuestionID: 2, Correct: false},
		{QuestionID: 3, Correct: true},
	}

	analyzer.On("AnalyzeWeaknesses", mock.Anything, "الرياضيات", "الكسور", 66.67, 3, 2, expectedResults).
		Return([]string{"الكسور العشرية"}, []string{"حل تمارين إضافية"}, nil)
	analyticsStore.On("CreateAnalytics", mock.AnythingOfType("*models.PerformanceAnalytics")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.PerformanceAnalytics).ID = 1
		}).
		Return(nil)

	analytics, err := assessmentService.AnalyzePerformance(context.Background(), userID, nil, "الرياضيات", "الكسور", answers)

	assert.NoError(t, err)
	assert.Equal(t, userID, analytics.UserID)
	assert.Equal(t, 66.67, analytics.Score)
	assert.Equal(t, 3, analytics.TotalQuestions)
	assert.Equal(t, 2, analytics.CorrectAnswers)
	assert.Equal(t, []string{"الكسور العشرية"}, []string(analytics.WeakAreas))
	assert.Equal(t, []string{"حل تمارين إضافية"}, []string(analytics.Recommendations))
	analyzer.AssertExpectations(t)
	analyticsStore.AssertExpectations(t)
}

func TestAnalyzePerformanceAnalyzerError(t *testing.T) {
	analyzer := new(MockWeaknessAnalyzer)
	analyticsStore := new(MockAnalyticsServiceDB)
	assessmentService := services.NewAssessmentService(analyzer, analyticsStore)

	analyzer.On("AnalyzeWeaknesses", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("model unavailable"))

	analytics, err := assessmentService.AnalyzePerformance(context.Background(), uuid.New(), nil, "الفيزياء", "", []services.AnswerSubmission{{QuestionID: 1, UserAnswer: 0, CorrectAnswer: 1}})

	assert.Nil(t, analytics)
	assert.Error(t, err)
	analyticsStore.AssertNotCalled(t, "CreateAnalytics", mock.Anything)
}
