package services

import (
	"testing"

	"edumate_go_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v79"
)

func TestCreateSubscriptionInvalidPlan(t *testing.T) {
	stripeService := NewStripeService("pk_test", "sk_test", "prod_test", nil)

	result, err := stripeService.CreateSubscription(&models.User{Email: "student@example.com"}, "enterprise")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestCreateSubscriptionEmailRequired(t *testing.T) {
	stripeService := NewStripeService("pk_test", "sk_test", "prod_test", nil)

	result, err := stripeService.CreateSubscription(&models.User{}, models.PlanBasic)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestPaymentClientSecret(t *testing.T) {
	assert.Equal(t, "", paymentClientSecret(&stripe.Subscription{}))
	assert.Equal(t, "", paymentClientSecret(&stripe.Subscription{LatestInvoice: &stripe.Invoice{}}))

	sub := &stripe.Subscription{
		LatestInvoice: &stripe.Invoice{
			PaymentIntent: &stripe.PaymentIntent{ClientSecret: "pi_secret"},
		},
	}
	assert.Equal(t, "pi_secret", paymentClientSecret(sub))
}
