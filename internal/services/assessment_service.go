package services

import (
	"context"
	"math"

	"edumate_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WeaknessAnalyzer is the slice of the AI gateway the assessment flow needs.
type WeaknessAnalyzer interface {
	AnalyzeWeaknesses(ctx context.Context, subject, chapter string, score float64, totalQuestions, correctAnswers int, results []AnswerResult) ([]string, []string, error)
}

// AnswerSubmission is one answered question from the client.
type AnswerSubmission struct {
	QuestionID    int `json:"questionId"`
	UserAnswer    int `json:"userAnswer"`
	CorrectAnswer int `json:"correctAnswer"`
}

// AssessmentService computes assessment scores locally and delegates only
// weak-area and recommendation extraction to the AI gateway.
type AssessmentService struct {
	analyzer  WeaknessAnalyzer
	analytics AnalyticsServiceDB
}

func NewAssessmentService(analyzer WeaknessAnalyzer, analytics AnalyticsServiceDB) *AssessmentService {
	return &AssessmentService{analyzer: analyzer, analytics: analytics}
}

// Score returns 100 * correct / total rounded to two decimals.
func Score(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}

// AnalyzePerformance grades the submission, asks the AI gateway for weak
// areas and recommendations seeded with the computed score and the
// right/wrong pattern, and persists the full result.
func (s *AssessmentService) AnalyzePerformance(ctx context.Context, userID uuid.UUID, sessionID *uint, subject, chapter string, answers []AnswerSubmission) (*models.PerformanceAnalytics, error) {
	results := make([]AnswerResult, len(answers))
	correct := 0
	for i, a := range answers {
		results[i] = AnswerResult{QuestionID: a.QuestionID, Correct: a.UserAnswer == a.CorrectAnswer}
		if results[i].Correct {
			correct++
		}
	}
	total := len(answers)
	score := Score(correct, total)

	weakAreas, recommendations, err := s.analyzer.AnalyzeWeaknesses(ctx, subject, chapter, score, total, correct, results)
	if err != nil {
		return nil, err
	}

	analytics := &models.PerformanceAnalytics{
		UserID:          userID,
		SessionID:       sessionID,
		Subject:         subject,
		Chapter:         chapter,
		Score:           score,
		TotalQuestions:  total,
		CorrectAnswers:  correct,
		WeakAreas:       datatypes.NewJSONSlice(weakAreas),
		Recommendations: datatypes.NewJSONSlice(recommendations),
	}
	if err := s.analytics.CreateAnalytics(analytics); err != nil {
		return nil, err
	}
	return analytics, nil
}
