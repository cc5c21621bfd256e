package api

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "edumate_go_backend/internal/errors"
	"edumate_go_backend/internal/models"
	"edumate_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// chatContextMessages bounds how many prior messages accompany each AI chat
// turn.
const chatContextMessages = 10

func createChatSessionHandler(chatService services.ChatServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var request struct {
			Title   string `json:"title" binding:"required"`
			Subject string `json:"subject"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("عنوان الجلسة مطلوب"))
			return
		}

		if !user.SubscriptionActive(time.Now()) {
			apperrors.HandleError(c, apperrors.New403Error("الاشتراك غير نشط. يرجى تجديد الاشتراك."))
			return
		}

		session, err := chatService.CreateSessionWithCredit(user.ID, request.Title, request.Subject)
		if err != nil {
			if err == services.ErrNoSessionsRemaining {
				apperrors.HandleError(c, apperrors.New403Error("لا توجد جلسات متبقية. يرجى تجديد الاشتراك."))
				return
			}
			apperrors.HandleError(c, apperrors.New500Error("فشل في إنشاء جلسة المحادثة", err))
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func listChatSessionsHandler(chatService services.ChatServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		sessions, err := chatService.GetSessionsByUserID(user.ID)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في جلب جلسات المحادثة", err))
			return
		}

		c.JSON(http.StatusOK, sessions)
	}
}

// ownedSession loads a session and enforces the ownership rule: a missing
// session and someone else's session produce the identical not-found error.
func ownedSession(chatService services.ChatServiceDB, c *gin.Context, user *models.User) (*models.ChatSession, *apperrors.CustomError) {
	id, ok := parseIDParam(c)
	if !ok {
		return nil, apperrors.New404Error("جلسة المحادثة غير موجودة")
	}
	session, err := chatService.GetSessionByID(id)
	if err != nil {
		return nil, apperrors.New500Error("فشل في جلب جلسة المحادثة", err)
	}
	if session == nil || session.UserID != user.ID {
		return nil, apperrors.New404Error("جلسة المحادثة غير موجودة")
	}
	return session, nil
}

func getChatSessionHandler(chatService services.ChatServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		session, cerr := ownedSession(chatService, c, user)
		if cerr != nil {
			apperrors.HandleError(c, cerr)
			return
		}

		messages, err := chatService.GetMessagesBySessionID(session.ID)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في جلب جلسة المحادثة", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"session": session, "messages": messages})
	}
}

func postChatMessageHandler(chatService services.ChatServiceDB, aiService *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var request struct {
			Content string `json:"content" binding:"required"`
			Role    string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("محتوى الرسالة مطلوب"))
			return
		}
		if request.Role != models.MessageRoleUser {
			apperrors.HandleError(c, apperrors.New400Error("دور الرسالة غير صالح"))
			return
		}

		session, cerr := ownedSession(chatService, c, user)
		if cerr != nil {
			apperrors.HandleError(c, cerr)
			return
		}

		// Bounded context: the turns that happened before this message.
		history, err := chatService.GetRecentMessages(session.ID, chatContextMessages)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في إرسال الرسالة", err))
			return
		}

		userMessage, err := chatService.SaveMessage(session.ID, models.MessageRoleUser, request.Content, nil)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في إرسال الرسالة", err))
			return
		}
		// The session saw activity regardless of how generation goes.
		if err := chatService.TouchSession(session.ID); err != nil {
			log.Warn().Err(err).Uint("sessionID", session.ID).Msg("failed to refresh session timestamp")
		}

		aiResponse, err := aiService.GenerateChatResponse(c.Request.Context(), request.Content, history, session.Subject)
		if err != nil {
			// The user message stays persisted; surface the partial
			// success alongside the generation failure.
			apperrors.HandleError(c, apperrors.New500Error("فشل في الحصول على رد المساعد", err).
				WithExtra(gin.H{"userMessage": userMessage}))
			return
		}

		metadata, err := json.Marshal(aiResponse.Metadata)
		if err != nil {
			metadata = nil
		}
		aiMessage, err := chatService.SaveMessage(session.ID, models.MessageRoleAssistant, aiResponse.Content, datatypes.JSON(metadata))
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في إرسال الرسالة", err).
				WithExtra(gin.H{"userMessage": userMessage}))
			return
		}

		c.JSON(http.StatusOK, gin.H{"userMessage": userMessage, "aiMessage": aiMessage})
	}
}
