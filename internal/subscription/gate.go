package subscription

import (
	"math"
	"time"

	"github.com/fitpro-app/fitpro/internal/profile"
)

// DefaultTrialDays is how long a fresh account can use the app before
// payment is required.
const DefaultTrialDays = 30

type Stage string

const (
	StageActive         Stage = "ACTIVE"
	StageUnderReview    Stage = "UNDER_REVIEW"
	StagePaymentPending Stage = "PAYMENT_PENDING"
	StageTrial          Stage = "TRIAL"
	StageExpired        Stage = "EXPIRED"
)

type Status struct {
	Stage         Stage `json:"stage"`
	TrialDaysLeft int   `json:"trialDaysLeft"`
	Valid         bool  `json:"valid"`
}

// GetStatus evaluates the subscription decision table with the default
// trial length.
func GetStatus(prof profile.UserProfile, now time.Time) Status {
	return GetStatusWithTrial(prof, now, DefaultTrialDays)
}

// GetStatusWithTrial maps the profile's subscription fields to a stage.
// Rules apply in fixed priority order: a paid active subscription wins
// over everything, review and payment states come next, and only then
// do trial dates matter.
func GetStatusWithTrial(prof profile.UserProfile, now time.Time, trialDays int) Status {
	if prof.SubscriptionStatus == "active" && prof.SubscriptionTier != "" && prof.SubscriptionTier != "free" {
		return Status{Stage: StageActive, Valid: true}
	}
	if prof.SubscriptionStatus == "needs_review" || prof.SubscriptionStatus == "pending" {
		return Status{Stage: StageUnderReview}
	}
	if prof.SubscriptionStatus == "waiting" {
		return Status{Stage: StagePaymentPending}
	}

	start := prof.CreatedAt
	if prof.TrainingStartDate != nil {
		start = *prof.TrainingStartDate
	}
	daysUsed := int(math.Ceil(now.Sub(start).Hours() / 24))
	trialDaysLeft := trialDays - daysUsed
	if trialDaysLeft > 0 {
		return Status{Stage: StageTrial, TrialDaysLeft: trialDaysLeft, Valid: true}
	}
	return Status{Stage: StageExpired}
}

// Modules that require a valid subscription. Everything else stays
// reachable so an expired user can still manage the account and pay.
var lockedModules = map[string]bool{
	"dashboard":   true,
	"training":    true,
	"nutrition":   true,
	"supplements": true,
	"performance": true,
	"health":      true,
	"scan":        true,
}

// IsModuleLocked reports whether a view must redirect to the upsell
// screen. Never locks anything while the subscription is valid.
func IsModuleLocked(view string, prof profile.UserProfile, now time.Time) bool {
	if GetStatus(prof, now).Valid {
		return false
	}
	return lockedModules[view]
}
