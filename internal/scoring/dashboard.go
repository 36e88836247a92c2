package scoring

import (
	"math"
	"time"

	profile "github.com/fitpro-app/fitpro/internal/profiledomain"
)

type DashboardKPIs struct {
	ProfileCompleteness  int     `json:"profileCompleteness"`
	Consistency          int     `json:"consistency"`
	ProgramAdherence     int     `json:"programAdherence"`
	TrainingVolume       float64 `json:"trainingVolume"`
	NutritionAdherence   int     `json:"nutritionAdherence"`
	SupplementCompliance int     `json:"supplementCompliance"`
	PersonalRecords      int     `json:"personalRecords"`
	InflammationProxy    int     `json:"inflammationProxy"`
}

// CalculateDashboardKPIs recomputes every dashboard number from the raw
// logs. All ratios guard their denominators; empty inputs yield the
// neutral answer, never NaN.
func CalculateDashboardKPIs(prof profile.UserProfile, now time.Time) DashboardKPIs {
	return DashboardKPIs{
		ProfileCompleteness:  profileCompleteness(prof),
		Consistency:          activityConsistency(prof.DailyLogs, now),
		ProgramAdherence:     programAdherence(prof.TrainingLogs, now),
		TrainingVolume:       trainingVolume(prof.TrainingLogs, prof.DailyLogs, now),
		NutritionAdherence:   nutritionAdherence(prof.NutritionLogs, now),
		SupplementCompliance: supplementCompliance(prof.Supplements, prof.SupplementLogs, now),
		PersonalRecords:      len(prof.Records),
		InflammationProxy:    inflammationProxy(prof.DailyLogs, now),
	}
}

// 5 required profile fields: name, email, goal, weight, height.
func profileCompleteness(prof profile.UserProfile) int {
	filled := 0
	if prof.Name != "" {
		filled++
	}
	if prof.Email != "" {
		filled++
	}
	if prof.Goal != "" {
		filled++
	}
	if prof.CurrentWeight > 0 {
		filled++
	}
	if prof.HeightCm > 0 {
		filled++
	}
	return int(math.Round(100 * float64(filled) / 5))
}

func activityConsistency(dailyLogs []profile.DailyLog, now time.Time) int {
	activeDays := make(map[string]bool)
	for _, dl := range dailyLogs {
		if withinDays(dl.Date, now, 30) {
			activeDays[dl.Date] = true
		}
	}
	return int(math.Round(100 * float64(len(activeDays)) / 30))
}

// 4 workouts per week is the program target.
func programAdherence(trainingLogs []profile.TrainingLog, now time.Time) int {
	workouts := 0
	for _, tl := range trainingLogs {
		if tl.Status == profile.TrainingStatusCompleted && withinDays(tl.Date, now, 7) {
			workouts++
		}
	}
	adherence := int(math.Round(100 * float64(workouts) / 4))
	if adherence > 100 {
		adherence = 100
	}
	return adherence
}

func trainingVolume(trainingLogs []profile.TrainingLog, dailyLogs []profile.DailyLog, now time.Time) float64 {
	var volume float64
	detailed := false
	for _, tl := range trainingLogs {
		if tl.Status != profile.TrainingStatusCompleted || !withinDays(tl.Date, now, 7) {
			continue
		}
		for _, ex := range tl.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				detailed = true
				volume += set.PerformedWeight * float64(set.PerformedReps)
			}
		}
	}
	if detailed {
		return volume
	}

	// no per-set data, fall back to the crude workout-score estimate
	var scoreSum float64
	days := 0
	for _, dl := range dailyLogs {
		if withinDays(dl.Date, now, 7) {
			scoreSum += dl.WorkoutScore
			days++
		}
	}
	if days == 0 {
		return 0
	}
	return math.Round(scoreSum / float64(days) * 100)
}

func nutritionAdherence(nutritionLogs []profile.NutritionDayLog, now time.Time) int {
	var actualSum float64
	var target float64
	days := 0
	for _, nl := range nutritionLogs {
		if !withinDays(nl.Date, now, 7) {
			continue
		}
		actualSum += nl.ActualCalories
		days++
		if nl.PlannedCalories > 0 {
			target = nl.PlannedCalories
		}
	}
	if days == 0 || target == 0 {
		return 0
	}
	adherence := int(math.Round(100 * actualSum / float64(days) / target))
	if adherence > 100 {
		adherence = 100
	}
	return adherence
}

func supplementCompliance(stack []profile.Supplement, logs []profile.SupplementLog, now time.Time) int {
	activeCount := 0
	for _, s := range stack {
		if s.Active {
			activeCount++
		}
	}
	if activeCount == 0 {
		return 100
	}

	today := now.Format(profile.DateLayout)
	consumed := 0
	for _, l := range logs {
		if l.Date == today && l.Consumed {
			consumed++
		}
	}
	compliance := int(math.Round(100 * float64(consumed) / float64(activeCount)))
	if compliance > 100 {
		compliance = 100
	}
	return compliance
}

// Inverse of the average nutrition score, a rough stand-in until a real
// inflammation marker exists. No data reads as the neutral midpoint.
func inflammationProxy(dailyLogs []profile.DailyLog, now time.Time) int {
	var scoreSum float64
	days := 0
	for _, dl := range dailyLogs {
		if withinDays(dl.Date, now, 7) {
			scoreSum += dl.NutritionScore
			days++
		}
	}
	if days == 0 {
		return 50
	}
	proxy := int(math.Round(100 - scoreSum/float64(days)))
	if proxy < 0 {
		proxy = 0
	}
	if proxy > 100 {
		proxy = 100
	}
	return proxy
}

func withinDays(date string, now time.Time, days int) bool {
	d, err := time.Parse(profile.DateLayout, date)
	if err != nil {
		return false
	}
	cutoff := now.AddDate(0, 0, -days)
	return d.After(cutoff) && !d.After(now)
}
