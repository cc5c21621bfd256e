package models

// Plan is one entry of the fixed subscription catalog. Prices are in SAR.
// The same table feeds both billing (priced amount) and quota logic
// (credited sessions), so the two can never drift apart.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	NameEn       string   `json:"nameEn"`
	Price        int64    `json:"price"`
	DurationDays int      `json:"duration"`
	Sessions     int      `json:"sessions"`
	Features     []string `json:"features"`
	IsSpecial    bool     `json:"isSpecial,omitempty"`
}

const (
	PlanEmergency = "emergency"
	PlanBasic     = "basic"
	PlanPremium   = "premium"
)

var SubscriptionPlans = map[string]Plan{
	PlanEmergency: {
		ID:           PlanEmergency,
		Name:         "الخطة الطارئة",
		NameEn:       "Emergency Plan",
		Price:        20,
		DurationDays: 30,
		Sessions:     2,
		Features: []string{
			"بحوث مخصصة",
			"تصميم عروض تقديمية",
			"دعم أولوية",
		},
		IsSpecial: true,
	},
	PlanBasic: {
		ID:           PlanBasic,
		Name:         "الخطة الأساسية",
		NameEn:       "Basic Plan",
		Price:        35,
		DurationDays: 90,
		Sessions:     4,
		Features: []string{
			"دردشة GPT-4",
			"تقارير تحليل الضعف",
		},
	},
	PlanPremium: {
		ID:           PlanPremium,
		Name:         "الخطة المميزة",
		NameEn:       "Premium Plan",
		Price:        60,
		DurationDays: 180,
		Sessions:     6,
		Features: []string{
			"جميع مميزات الأساسية",
			"تحليلات متقدمة",
			"رفع ملفات غير محدود",
		},
	},
}

// PlanByID looks up a catalog entry, rejecting unknown plan ids.
func PlanByID(id string) (Plan, bool) {
	p, ok := SubscriptionPlans[id]
	return p, ok
}
