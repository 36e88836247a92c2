package scoring

import "math"

type HydrationStatus string

const (
	HydrationDehydrated HydrationStatus = "dehydrated"
	HydrationGood       HydrationStatus = "good"
	HydrationOptimal    HydrationStatus = "optimal"
)

// ScientificWaterNeeds returns the daily water target in milliliters:
// weight/25 liters, plus half a liter for high intensity training and a
// full liter for hot weather.
func ScientificWaterNeeds(weightKg float64, highIntensity, hotWeather bool) int {
	liters := weightKg / 25
	if highIntensity {
		liters += 0.5
	}
	if hotWeather {
		liters += 1.0
	}
	return int(math.Round(1000 * liters))
}

// HydrationStatusFor grades current intake against the daily goal.
// A zero goal means there is nothing to miss, so it reads as optimal.
func HydrationStatusFor(currentMl, goalMl int) HydrationStatus {
	if goalMl <= 0 {
		return HydrationOptimal
	}
	ratio := float64(currentMl) / float64(goalMl)
	switch {
	case ratio < 0.5:
		return HydrationDehydrated
	case ratio < 0.9:
		return HydrationGood
	default:
		return HydrationOptimal
	}
}
