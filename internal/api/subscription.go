package api

import (
	"net/http"

	apperrors "edumate_go_backend/internal/errors"
	"edumate_go_backend/internal/models"
	"edumate_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func getPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": models.SubscriptionPlans})
}

func createSubscriptionHandler(stripeService *services.StripeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var request struct {
			PlanID string `json:"planId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("خطة اشتراك غير صالحة"))
			return
		}

		result, err := stripeService.CreateSubscription(user, request.PlanID)
		if err != nil {
			switch err {
			case services.ErrInvalidPlan:
				apperrors.HandleError(c, apperrors.New400Error("خطة اشتراك غير صالحة"))
			case services.ErrEmailRequired:
				apperrors.HandleError(c, apperrors.New400Error("البريد الإلكتروني مطلوب"))
			default:
				apperrors.HandleError(c, apperrors.New500Error("فشل في إنشاء الاشتراك", err))
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
