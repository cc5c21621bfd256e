package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AuthID                string         `gorm:"unique;not null" json:"-"`
	Email                 string         `gorm:"unique;not null" json:"email"`
	FirstName             string         `json:"firstName"`
	LastName              string         `json:"lastName"`
	ProfileImageURL       string         `json:"profileImageUrl"`
	StripeCustomerID      string         `json:"-"`
	StripeSubscriptionID  string         `json:"-"`
	CurrentPlan           string         `json:"currentPlan"`
	SubscriptionExpiresAt *time.Time     `json:"subscriptionExpiresAt"`
	SessionsRemaining     int            `gorm:"default:0" json:"sessionsRemaining"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

// SubscriptionActive reports whether the user's plan is still within its
// paid period. Expiry is derived from SubscriptionExpiresAt, never stored.
func (u *User) SubscriptionActive(now time.Time) bool {
	return u.CurrentPlan != "" && u.SubscriptionExpiresAt != nil && now.Before(*u.SubscriptionExpiresAt)
}
