package performance

import (
	"math"
	"strings"

	"github.com/fitpro-app/fitpro/internal/profile"
	"github.com/fitpro-app/fitpro/internal/scoring"
)

// reduce derives the next state from an event and the current profile
// snapshot. Pure function: each event type touches only the fields it
// owns, everything else carries over from the previous state. An
// unknown event type reduces to the unchanged state.
func reduce(state State, event Event, prof profile.UserProfile) (State, error) {
	if err := event.Validate(); err != nil {
		return state, err
	}

	next := state
	switch event.Type {
	case EventTypeTrainingLogged:
		tl := event.Payload.(profile.TrainingLog)
		switch tl.Status {
		case profile.TrainingStatusCompleted:
			next.FatigueLevel = math.Min(100, state.FatigueLevel+float64(tl.SetCount())*1.5)
			if next.FatigueLevel > 80 {
				next.InjuryRisk = InjuryRiskHigh
			} else if next.FatigueLevel > 50 {
				next.InjuryRisk = InjuryRiskMedium
			}
		case profile.TrainingStatusRest:
			next.FatigueLevel = math.Max(0, state.FatigueLevel-30)
			next.InjuryRisk = InjuryRiskLow
		}
	case EventTypeNutritionLogged:
		nl := event.Payload.(profile.NutritionDayLog)
		if hasSugarIngredient(nl) {
			next.InflammationScore += 5
		}
		if nl.Status == profile.NutritionStatusCompleted {
			next.InflammationScore = math.Max(0, next.InflammationScore-5)
		}
	case EventTypeBodyUpdated:
		weight := prof.CurrentWeight
		if bu, ok := event.Payload.(BodyUpdate); ok && bu.WeightKg > 0 {
			weight = bu.WeightKg
		}
		next.DailyHydrationTarget = scoring.ScientificWaterNeeds(weight, prof.HighIntensity, prof.HotWeather)
		next.DailyCalorieTarget = int(math.Round(weight * 24 * 1.5))
	case EventTypeSleepLogged, EventTypeScanAnalyzed:
		recoveryIndex := prof.RecoveryIndexOrDefault()
		next.RecoveryIndex = recoveryIndex
		switch {
		case recoveryIndex < 40:
			next.Adaptation = AdaptationDeload
		case recoveryIndex > 85:
			next.Adaptation = AdaptationIntensify
		default:
			next.Adaptation = AdaptationNone
		}
	}
	return next, nil
}

func hasSugarIngredient(nl profile.NutritionDayLog) bool {
	for _, meal := range nl.Meals {
		for _, ingredient := range meal.Ingredients {
			if strings.Contains(ingredient.Name, "Sugar") {
				return true
			}
		}
	}
	return false
}
