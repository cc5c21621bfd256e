package api

import (
	"strconv"

	"edumate_go_backend/internal/auth"
	"edumate_go_backend/internal/models"
	"edumate_go_backend/internal/services"
	"edumate_go_backend/internal/services/mailer"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	userService *services.UserService,
	chatService services.ChatServiceDB,
	fileService services.FileServiceDB,
	analyticsService services.AnalyticsServiceDB,
	supportService services.SupportServiceDB,
	aiService *services.AIService,
	assessmentService *services.AssessmentService,
	uploadService *services.UploadService,
	stripeService *services.StripeService,
	mail mailer.Mailer,
	supportInbox string,
) {
	authed := auth.AuthMiddleware(userService)

	api := r.Group("/api")
	{
		api.GET("/plans", getPlans)
		api.POST("/create-subscription", authed, createSubscriptionHandler(stripeService))

		api.POST("/chat/sessions", authed, createChatSessionHandler(chatService))
		api.GET("/chat/sessions", authed, listChatSessionsHandler(chatService))
		api.GET("/chat/sessions/:id", authed, getChatSessionHandler(chatService))
		api.POST("/chat/sessions/:id/messages", authed, postChatMessageHandler(chatService, aiService))

		api.POST("/files/upload", authed, uploadFileHandler(uploadService, fileService, chatService, aiService))
		api.GET("/files", authed, listFilesHandler(fileService))

		api.POST("/translate", authed, translateHandler(aiService))
		api.POST("/assessment/generate", authed, generateQuestionsHandler(aiService))
		api.POST("/assessment/analyze", authed, analyzePerformanceHandler(assessmentService))
		api.POST("/summary/generate", authed, generateSummaryHandler(aiService))
		api.GET("/analytics/performance", authed, listAnalyticsHandler(analyticsService))

		api.POST("/support/tickets", auth.OptionalAuthMiddleware(userService), createSupportTicketHandler(supportService, mail, supportInbox))
		api.GET("/support/tickets", authed, listSupportTicketsHandler(supportService))
		api.PATCH("/support/tickets/:id/status", authed, updateTicketStatusHandler(supportService))
	}
}

// currentUser returns the user placed in the context by the auth
// middleware.
func currentUser(c *gin.Context) *models.User {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	userModel, ok := user.(*models.User)
	if !ok {
		return nil
	}
	return userModel
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
