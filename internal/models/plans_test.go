package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionPlanCatalog(t *testing.T) {
	assert.Len(t, SubscriptionPlans, 3)

	emergency, ok := PlanByID(PlanEmergency)
	assert.True(t, ok)
	assert.Equal(t, "الخطة الطارئة", emergency.Name)
	assert.Equal(t, int64(20), emergency.Price)
	assert.Equal(t, 30, emergency.DurationDays)
	assert.Equal(t, 2, emergency.Sessions)
	assert.True(t, emergency.IsSpecial)

	basic, ok := PlanByID(PlanBasic)
	assert.True(t, ok)
	assert.Equal(t, "الخطة الأساسية", basic.Name)
	assert.Equal(t, int64(35), basic.Price)
	assert.Equal(t, 90, basic.DurationDays)
	assert.Equal(t, 4, basic.Sessions)

	premium, ok := PlanByID(PlanPremium)
	assert.True(t, ok)
	assert.Equal(t, "الخطة المميزة", premium.Name)
	assert.Equal(t, int64(60), premium.Price)
	assert.Equal(t, 180, premium.DurationDays)
	assert.Equal(t, 6, premium.Sessions)
}

func TestPlanByIDUnknown(t *testing.T) {
	_, ok := PlanByID("enterprise")
	assert.False(t, ok)
	_, ok = PlanByID("")
	assert.False(t, ok)
}

func TestSubscriptionActive(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	active := &User{CurrentPlan: PlanBasic, SubscriptionExpiresAt: &future}
	assert.True(t, active.SubscriptionActive(now))

	expired := &User{CurrentPlan: PlanBasic, SubscriptionExpiresAt: &past}
	assert.False(t, expired.SubscriptionActive(now))

	neverSubscribed := &User{}
	assert.False(t, neverSubscribed.SubscriptionActive(now))

	planWithoutExpiry := &User{CurrentPlan: PlanPremium}
	assert.False(t, planWithoutExpiry.SubscriptionActive(now))
}

func TestValidTicketStatus(t *testing.T) {
	assert.True(t, ValidTicketStatus(TicketStatusOpen))
	assert.True(t, ValidTicketStatus(TicketStatusInProgress))
	assert.True(t, ValidTicketStatus(TicketStatusResolved))
	assert.True(t, ValidTicketStatus(TicketStatusClosed))
	assert.False(t, ValidTicketStatus("archived"))
	assert.False(t, ValidTicketStatus(""))
}
