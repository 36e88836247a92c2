package performance

import (
	"testing"

	"github.com/fitpro-app/fitpro/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainingWithSets(status profile.TrainingStatus, sets int) profile.TrainingLog {
	tl := profile.TrainingLog{
		Date:   "2026-08-30",
		Status: status,
	}
	ex := profile.Exercise{Name: "Squat"}
	for i := 0; i < sets; i++ {
		ex.Sets = append(ex.Sets, profile.ExerciseSet{PerformedReps: 5, Completed: true})
	}
	tl.Exercises = []profile.Exercise{ex}
	return tl
}

func TestReduce_unknownEventTypeIsNoOp(t *testing.T) {
	state := DefaultState()
	next, err := reduce(state, Event{Type: "solar_flare_detected"}, profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, state, next)
}

func TestReduce_trainingCompleted(t *testing.T) {
	state := DefaultState()

	next, err := reduce(state, NewTrainingLoggedEvent(trainingWithSets(profile.TrainingStatusCompleted, 10)), profile.UserProfile{})
	require.NoError(t, err)
	// 20 + 10x1.5
	assert.Equal(t, float64(35), next.FatigueLevel)
	assert.Equal(t, InjuryRiskLow, next.InjuryRisk)

	// untouched fields carry over
	assert.Equal(t, state.InflammationScore, next.InflammationScore)
	assert.Equal(t, state.DailyCalorieTarget, next.DailyCalorieTarget)
	assert.Equal(t, state.DailyHydrationTarget, next.DailyHydrationTarget)
}

func TestReduce_fatigueClampAndRiskThresholds(t *testing.T) {
	state := DefaultState()
	state.FatigueLevel = 48

	next, err := reduce(state, NewTrainingLoggedEvent(trainingWithSets(profile.TrainingStatusCompleted, 2)), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(51), next.FatigueLevel)
	assert.Equal(t, InjuryRiskMedium, next.InjuryRisk)

	// pathologically large set count still clamps to 100
	next, err = reduce(next, NewTrainingLoggedEvent(trainingWithSets(profile.TrainingStatusCompleted, 100000)), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(100), next.FatigueLevel)
	assert.Equal(t, InjuryRiskHigh, next.InjuryRisk)
}

func TestReduce_restDay(t *testing.T) {
	state := DefaultState()
	state.FatigueLevel = 50
	state.InjuryRisk = InjuryRiskHigh

	next, err := reduce(state, NewTrainingLoggedEvent(trainingWithSets(profile.TrainingStatusRest, 0)), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(20), next.FatigueLevel)
	assert.Equal(t, InjuryRiskLow, next.InjuryRisk)

	// floors at zero
	state.FatigueLevel = 20
	next, err = reduce(state, NewTrainingLoggedEvent(trainingWithSets(profile.TrainingStatusRest, 0)), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(0), next.FatigueLevel)
	assert.Equal(t, InjuryRiskLow, next.InjuryRisk)
}

func TestReduce_nutrition(t *testing.T) {
	sugary := profile.NutritionDayLog{
		Date: "2026-08-30",
		Meals: []profile.Meal{
			{Name: "Breakfast", Ingredients: []profile.Ingredient{{Name: "Brown Sugar"}}},
		},
	}
	clean := profile.NutritionDayLog{
		Date:   "2026-08-30",
		Status: profile.NutritionStatusCompleted,
		Meals: []profile.Meal{
			{Name: "Lunch", Ingredients: []profile.Ingredient{{Name: "Chicken Breast"}}},
		},
	}

	state := DefaultState()

	next, err := reduce(state, NewNutritionLoggedEvent(sugary), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(15), next.InflammationScore)

	next, err = reduce(next, NewNutritionLoggedEvent(clean), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(10), next.InflammationScore)

	// sugary but completed: +5 then -5
	sugaryCompleted := sugary
	sugaryCompleted.Status = profile.NutritionStatusCompleted
	next, err = reduce(next, NewNutritionLoggedEvent(sugaryCompleted), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(10), next.InflammationScore)

	// floors at zero
	state.InflammationScore = 3
	next, err = reduce(state, NewNutritionLoggedEvent(clean), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(0), next.InflammationScore)
}

func TestReduce_bodyUpdated(t *testing.T) {
	prof := profile.UserProfile{CurrentWeight: 80}

	next, err := reduce(DefaultState(), NewBodyUpdatedEvent(BodyUpdate{}), prof)
	require.NoError(t, err)
	assert.Equal(t, 3200, next.DailyHydrationTarget)
	assert.Equal(t, 2880, next.DailyCalorieTarget)

	// payload weight wins over the profile snapshot
	next, err = reduce(DefaultState(), NewBodyUpdatedEvent(BodyUpdate{WeightKg: 75}), prof)
	require.NoError(t, err)
	assert.Equal(t, 3000, next.DailyHydrationTarget)
	assert.Equal(t, 2700, next.DailyCalorieTarget)

	// intensity and weather flags add to the hydration target only
	prof.HighIntensity = true
	prof.HotWeather = true
	next, err = reduce(DefaultState(), NewBodyUpdatedEvent(BodyUpdate{}), prof)
	require.NoError(t, err)
	assert.Equal(t, 4700, next.DailyHydrationTarget)
	assert.Equal(t, 2880, next.DailyCalorieTarget)
}

func TestReduce_bioEvents(t *testing.T) {
	recoveryIndex := func(f float64) *profile.AdvancedHealth {
		return &profile.AdvancedHealth{RecoveryIndex: &f}
	}

	// no advanced health snapshot defaults to 50
	next, err := reduce(DefaultState(), NewSleepLoggedEvent(SleepReport{Hours: 8}), profile.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, float64(50), next.RecoveryIndex)
	assert.Equal(t, AdaptationNone, next.Adaptation)

	next, err = reduce(DefaultState(), NewSleepLoggedEvent(SleepReport{Hours: 4}), profile.UserProfile{AdvancedHealth: recoveryIndex(30)})
	require.NoError(t, err)
	assert.Equal(t, float64(30), next.RecoveryIndex)
	assert.Equal(t, AdaptationDeload, next.Adaptation)

	next, err = reduce(DefaultState(), NewScanAnalyzedEvent(ScanReport{Source: "dexa"}), profile.UserProfile{AdvancedHealth: recoveryIndex(90)})
	require.NoError(t, err)
	assert.Equal(t, float64(90), next.RecoveryIndex)
	assert.Equal(t, AdaptationIntensify, next.Adaptation)
}

func TestReduce_invalidPayload(t *testing.T) {
	state := DefaultState()

	for _, event := range []Event{
		{Type: EventTypeTrainingLogged, Payload: "junk"},
		{Type: EventTypeTrainingLogged, Payload: nil},
		{Type: EventTypeNutritionLogged, Payload: 42},
		{Type: EventTypeBodyUpdated, Payload: "junk"},
		{Type: EventTypeSleepLogged, Payload: 3.14},
		{Type: EventTypeScanAnalyzed, Payload: []string{"scan"}},
	} {
		next, err := reduce(state, event, profile.UserProfile{})
		require.ErrorIs(t, err, ErrInvalidEventPayload, "event type %s", event.Type)
		assert.Equal(t, state, next)
	}
}
