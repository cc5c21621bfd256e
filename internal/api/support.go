package api

import (
	"fmt"
	"net/http"

	apperrors "edumate_go_backend/internal/errors"
	"edumate_go_backend/internal/models"
	"edumate_go_backend/internal/services"
	"edumate_go_backend/internal/services/mailer"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func createSupportTicketHandler(supportService services.SupportServiceDB, mail mailer.Mailer, supportInbox string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			FirstName string `json:"firstName" binding:"required"`
			LastName  string `json:"lastName" binding:"required"`
			Email     string `json:"email" binding:"required,email"`
			Category  string `json:"category" binding:"required"`
			Subject   string `json:"subject" binding:"required"`
			Message   string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("جميع الحقول مطلوبة"))
			return
		}

		ticket := &models.SupportTicket{
			FirstName: request.FirstName,
			LastName:  request.LastName,
			Email:     request.Email,
			Category:  request.Category,
			Subject:   request.Subject,
			Message:   request.Message,
		}
		// Anonymous submission is allowed; attach the user only when the
		// optional auth middleware resolved one.
		if user := currentUser(c); user != nil {
			ticket.UserID = &user.ID
		}

		if err := supportService.CreateTicket(ticket); err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في إرسال طلب الدعم", err))
			return
		}

		// Notify the support inbox; mail failures never fail the request.
		go func(t models.SupportTicket) {
			err := mail.Send(mailer.Message{
				ToName:  "Support",
				ToEmail: supportInbox,
				Subject: fmt.Sprintf("[%s] %s", t.Category, t.Subject),
				Body: fmt.Sprintf("New support ticket #%d from %s %s <%s>\n\n%s",
					t.ID, t.FirstName, t.LastName, t.Email, t.Message),
			})
			if err != nil {
				log.Error().Err(err).Uint("ticketID", t.ID).Msg("failed to send support notification")
			}
		}(*ticket)

		c.JSON(http.StatusOK, ticket)
	}
}

func listSupportTicketsHandler(supportService services.SupportServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		tickets, err := supportService.GetTicketsByUserID(user.ID)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في جلب طلبات الدعم", err))
			return
		}

		c.JSON(http.StatusOK, tickets)
	}
}

func updateTicketStatusHandler(supportService services.SupportServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var request struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil || !models.ValidTicketStatus(request.Status) {
			apperrors.HandleError(c, apperrors.New400Error("حالة الطلب غير صالحة"))
			return
		}

		id, ok := parseIDParam(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New404Error("طلب الدعم غير موجود"))
			return
		}
		ticket, err := supportService.GetTicketByID(id)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في تحديث طلب الدعم", err))
			return
		}
		if ticket == nil || ticket.UserID == nil || *ticket.UserID != user.ID {
			apperrors.HandleError(c, apperrors.New404Error("طلب الدعم غير موجود"))
			return
		}

		if err := supportService.UpdateTicketStatus(id, request.Status); err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في تحديث طلب الدعم", err))
			return
		}
		ticket.Status = request.Status

		c.JSON(http.StatusOK, ticket)
	}
}
