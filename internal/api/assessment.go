package api

import (
	"net/http"

	apperrors "edumate_go_backend/internal/errors"
	"edumate_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 20
)

func validDifficulty(d string) bool {
	switch d {
	case "easy", "medium", "hard":
		return true
	}
	return false
}

func generateQuestionsHandler(aiService *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Subject    string `json:"subject" binding:"required"`
			Chapter    string `json:"chapter"`
			Difficulty string `json:"difficulty"`
			Count      int    `json:"count"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("الموضوع مطلوب"))
			return
		}

		if request.Difficulty == "" {
			request.Difficulty = "medium"
		}
		if !validDifficulty(request.Difficulty) {
			apperrors.HandleError(c, apperrors.New400Error("مستوى الصعوبة غير صالح"))
			return
		}
		if request.Count == 0 {
			request.Count = defaultQuestionCount
		}
		if request.Count < 1 || request.Count > maxQuestionCount {
			apperrors.HandleError(c, apperrors.New400Error("عدد الأسئلة غير صالح"))
			return
		}

		questions, err := aiService.GenerateAssessmentQuestions(c.Request.Context(), request.Subject, request.Chapter, request.Difficulty, request.Count)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في توليد الأسئلة التقييمية", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"questions": questions})
	}
}

func analyzePerformanceHandler(assessmentService *services.AssessmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var request struct {
			Subject   string                      `json:"subject" binding:"required"`
			Chapter   string                      `json:"chapter"`
			Answers   []services.AnswerSubmission `json:"answers" binding:"required,min=1"`
			SessionID *uint                       `json:"sessionId"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("الموضوع والإجابات مطلوبة"))
			return
		}

		analysis, err := assessmentService.AnalyzePerformance(c.Request.Context(), user.ID, request.SessionID, request.Subject, request.Chapter, request.Answers)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في تحليل الأداء", err))
			return
		}

		c.JSON(http.StatusOK, analysis)
	}
}

func listAnalyticsHandler(analyticsService services.AnalyticsServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		analytics, err := analyticsService.GetAnalyticsByUserID(user.ID, c.Query("subject"))
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في جلب تحليلات الأداء", err))
			return
		}

		c.JSON(http.StatusOK, analytics)
	}
}
