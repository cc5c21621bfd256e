package api

import (
	"net/http"

	apperrors "edumate_go_backend/internal/errors"
	"edumate_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func translateHandler(aiService *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Content        string `json:"content" binding:"required"`
			TargetLanguage string `json:"targetLanguage"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("المحتوى مطلوب للترجمة"))
			return
		}
		if request.TargetLanguage == "" {
			request.TargetLanguage = "ar"
		}
		if !services.ValidTargetLanguage(request.TargetLanguage) {
			apperrors.HandleError(c, apperrors.New400Error("لغة الترجمة غير مدعومة"))
			return
		}

		translation, err := aiService.TranslateContent(c.Request.Context(), request.Content, request.TargetLanguage)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في الترجمة", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"translation": translation})
	}
}

func generateSummaryHandler(aiService *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Content     string   `json:"content" binding:"required"`
			FocusAreas  []string `json:"focusAreas"`
			SummaryType string   `json:"summaryType"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("المحتوى مطلوب لإنشاء الملخص"))
			return
		}
		if request.SummaryType == "" {
			request.SummaryType = services.SummaryTypeGeneral
		}
		if !services.ValidSummaryType(request.SummaryType) {
			apperrors.HandleError(c, apperrors.New400Error("نوع الملخص غير صالح"))
			return
		}

		summary, err := aiService.GenerateSummary(c.Request.Context(), request.Content, request.FocusAreas, request.SummaryType)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في إنشاء الملخص", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"summary": summary})
	}
}
