package subscription

import (
	"testing"
	"time"

	"github.com/fitpro-app/fitpro/internal/profile"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestGetStatus_decisionTable(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		prof          profile.UserProfile
		expectedStage Stage
		expectedValid bool
		trialDaysLeft int
	}{
		{
			name: "activePaidTier",
			prof: profile.UserProfile{
				SubscriptionStatus: "active",
				SubscriptionTier:   "elite",
			},
			expectedStage: StageActive,
			expectedValid: true,
		},
		{
			name: "activeFreeTierFallsThroughToTrial",
			prof: profile.UserProfile{
				SubscriptionStatus: "active",
				SubscriptionTier:   "free",
				CreatedAt:          now.AddDate(0, 0, -5),
			},
			expectedStage: StageTrial,
			expectedValid: true,
			trialDaysLeft: 25,
		},
		{
			name:          "needsReview",
			prof:          profile.UserProfile{SubscriptionStatus: "needs_review"},
			expectedStage: StageUnderReview,
		},
		{
			name:          "pending",
			prof:          profile.UserProfile{SubscriptionStatus: "pending"},
			expectedStage: StageUnderReview,
		},
		{
			name:          "waitingForPayment",
			prof:          profile.UserProfile{SubscriptionStatus: "waiting"},
			expectedStage: StagePaymentPending,
		},
		{
			name: "freshTrial",
			prof: profile.UserProfile{
				CreatedAt: now.AddDate(0, 0, -1),
			},
			expectedStage: StageTrial,
			expectedValid: true,
			trialDaysLeft: 29,
		},
		{
			name: "trainingStartDateWinsOverCreatedAt",
			prof: profile.UserProfile{
				CreatedAt:         now.AddDate(0, 0, -100),
				TrainingStartDate: timePtr(now.AddDate(0, 0, -10)),
			},
			expectedStage: StageTrial,
			expectedValid: true,
			trialDaysLeft: 20,
		},
		{
			name: "trialExpired",
			prof: profile.UserProfile{
				CreatedAt: now.AddDate(0, 0, -31),
			},
			expectedStage: StageExpired,
		},
		{
			name: "lastTrialDayIsExpired",
			prof: profile.UserProfile{
				CreatedAt: now.AddDate(0, 0, -30),
			},
			expectedStage: StageExpired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status := GetStatus(tc.prof, now)
			assert.Equal(t, tc.expectedStage, status.Stage)
			assert.Equal(t, tc.expectedValid, status.Valid)
			assert.Equal(t, tc.trialDaysLeft, status.TrialDaysLeft)
		})
	}
}

func TestGetStatus_activeAlwaysWinsOverTrialDates(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	prof := profile.UserProfile{
		SubscriptionStatus: "active",
		SubscriptionTier:   "elite",
		CreatedAt:          now.AddDate(-2, 0, 0), // trial long gone
	}
	status := GetStatus(prof, now)
	assert.Equal(t, StageActive, status.Stage)
	assert.True(t, status.Valid)
}

func TestGetStatus_ceilCountsPartialDays(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	// 29 days and one hour used => ceil to 30 days => expired
	prof := profile.UserProfile{
		CreatedAt: now.Add(-29*24*time.Hour - time.Hour),
	}
	status := GetStatus(prof, now)
	assert.Equal(t, StageExpired, status.Stage)
}

func TestIsModuleLocked(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	trialProf := profile.UserProfile{CreatedAt: now.AddDate(0, 0, -5)}
	expiredProf := profile.UserProfile{CreatedAt: now.AddDate(0, 0, -60)}

	// valid subscription unlocks everything
	assert.False(t, IsModuleLocked("dashboard", trialProf, now))
	assert.False(t, IsModuleLocked("training", trialProf, now))

	// expired locks only the listed modules
	assert.True(t, IsModuleLocked("dashboard", expiredProf, now))
	assert.True(t, IsModuleLocked("performance", expiredProf, now))
	assert.False(t, IsModuleLocked("settings", expiredProf, now))
	assert.False(t, IsModuleLocked("billing", expiredProf, now))
}
