package services

import (
	"time"

	"edumate_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateOrUpdateUser upserts the user row keyed by the external identity id.
// Called on every authenticated request: first login creates the row, later
// logins refresh the profile fields from the token.
func (s *UserService) CreateOrUpdateUser(authID, email, firstName, lastName, profileImageURL string) (*models.User, error) {
	var user models.User
	profile := map[string]interface{}{
		"email":             email,
		"first_name":        firstName,
		"last_name":         lastName,
		"profile_image_url": profileImageURL,
	}
	result := s.db.Where(models.User{AuthID: authID}).Assign(profile).FirstOrCreate(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// GetUserByID returns (nil, nil) when no row exists.
func (s *UserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	result := s.db.Where("id = ?", id).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// UpdateStripeInfo persists the provider-side customer and subscription ids.
func (s *UserService) UpdateStripeInfo(id uuid.UUID, customerID, subscriptionID string) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stripe_customer_id":     customerID,
			"stripe_subscription_id": subscriptionID,
		}).Error
}

// ApplySubscription mirrors a confirmed provider subscription onto the user:
// plan, expiry and the plan's full session credit. Only called after the
// provider confirms creation.
func (s *UserService) ApplySubscription(id uuid.UUID, planID string, expiresAt time.Time, sessions int) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_plan":            planID,
			"subscription_expires_at": expiresAt,
			"sessions_remaining":      sessions,
		}).Error
}
