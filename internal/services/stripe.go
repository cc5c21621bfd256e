package services

import (
	"errors"
	"fmt"
	"time"

	"edumate_go_backend/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/subscription"
)

var (
	// ErrInvalidPlan signals a plan id outside the fixed catalog.
	ErrInvalidPlan = errors.New("invalid subscription plan")
	// ErrEmailRequired signals that a provider-side customer cannot be
	// created without an email address.
	ErrEmailRequired = errors.New("email is required")
)

// SubscriptionResult is what the client needs to continue payment.
type SubscriptionResult struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret"`
}

type StripeService struct {
	publicKey string
	secretKey string
	productID string
	users     *UserService
}

func NewStripeService(publicKey, secretKey, productID string, users *UserService) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		publicKey: publicKey,
		secretKey: secretKey,
		productID: productID,
		users:     users,
	}
}

// CreateSubscription creates a provider-side subscription for the given
// plan and mirrors plan/expiry/session credit onto the user record once the
// provider confirms. If the user already holds an active provider
// subscription its payment-continuation token is returned unchanged, so the
// call is idempotent while a subscription is live. A provider failure leaves
// local subscription state untouched.
func (s *StripeService) CreateSubscription(user *models.User, planID string) (*SubscriptionResult, error) {
	plan, ok := models.PlanByID(planID)
	if !ok {
		return nil, ErrInvalidPlan
	}

	if user.StripeSubscriptionID != "" {
		params := &stripe.SubscriptionParams{}
		params.AddExpand("latest_invoice.payment_intent")
		existing, err := subscription.Get(user.StripeSubscriptionID, params)
		if err == nil && existing.Status == stripe.SubscriptionStatusActive {
			return &SubscriptionResult{
				SubscriptionID: existing.ID,
				ClientSecret:   paymentClientSecret(existing),
			}, nil
		}
	}

	if user.Email == "" {
		return nil, ErrEmailRequired
	}

	customerID := user.StripeCustomerID
	if customerID == "" {
		cust, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(user.Email),
			Name:  stripe.String(fmt.Sprintf("%s %s", user.FirstName, user.LastName)),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create customer: %v", err)
		}
		customerID = cust.ID
		if err := s.users.UpdateStripeInfo(user.ID, customerID, user.StripeSubscriptionID); err != nil {
			return nil, err
		}
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{
				PriceData: &stripe.SubscriptionItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencySAR)),
					Product:  stripe.String(s.productID),
					Recurring: &stripe.SubscriptionItemPriceDataRecurringParams{
						Interval: stripe.String("month"),
					},
					UnitAmount: stripe.Int64(plan.Price * 100), // halalas
				},
			},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := subscription.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %v", err)
	}

	// Local mirror only after the provider confirmed creation.
	if err := s.users.UpdateStripeInfo(user.ID, customerID, sub.ID); err != nil {
		return nil, err
	}
	expiresAt := time.Now().AddDate(0, 0, plan.DurationDays)
	if err := s.users.ApplySubscription(user.ID, plan.ID, expiresAt, plan.Sessions); err != nil {
		return nil, err
	}

	log.Info().
		Str("userID", user.ID.String()).
		Str("plan", plan.ID).
		Str("subscriptionID", sub.ID).
		Msg("subscription created")

	return &SubscriptionResult{
		SubscriptionID: sub.ID,
		ClientSecret:   paymentClientSecret(sub),
	}, nil
}

func paymentClientSecret(sub *stripe.Subscription) string {
	if sub.LatestInvoice == nil || sub.LatestInvoice.PaymentIntent == nil {
		return ""
	}
	return sub.LatestInvoice.PaymentIntent.ClientSecret
}
