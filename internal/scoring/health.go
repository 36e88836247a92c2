package scoring

import (
	"math"
	"time"

	profile "github.com/fitpro-app/fitpro/internal/profiledomain"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

const InsufficientDataInsight = "insufficient data: log at least 3 days for a reliable risk analysis"

type HealthRiskResult struct {
	OvertrainingScore float64   `json:"overtrainingScore"`
	InjuryRisk        RiskLevel `json:"injuryRisk"`
	FatigueLevel      int       `json:"fatigueLevel"`
	Insights          []string  `json:"insights"`
	Recommendations   []string  `json:"recommendations"`
}

// AnalyzeHealthRisk computes an overtraining score over the last 7 daily
// logs. With fewer than 3 logs it returns a neutral zero-risk result
// rather than guessing from noise.
func AnalyzeHealthRisk(dailyLogs []profile.DailyLog) HealthRiskResult {
	if len(dailyLogs) > 7 {
		dailyLogs = dailyLogs[len(dailyLogs)-7:]
	}

	if len(dailyLogs) < 3 {
		return HealthRiskResult{
			OvertrainingScore: 0,
			InjuryRisk:        RiskLow,
			FatigueLevel:      0,
			Insights:          []string{InsufficientDataInsight},
			Recommendations:   []string{"keep logging your days to unlock risk analysis"},
		}
	}

	var loadSum, sleepSum float64
	highIntensityDays := 0
	for _, dl := range dailyLogs {
		loadSum += dl.WorkoutScore
		if dl.SleepHours != nil {
			sleepSum += *dl.SleepHours
		} else {
			sleepSum += 7
		}
		if dl.WorkoutScore > 80 {
			highIntensityDays++
		}
	}
	avgLoad := loadSum / float64(len(dailyLogs))
	avgSleep := sleepSum / float64(len(dailyLogs))

	score := avgLoad / 100 * 5
	if avgSleep < 6 {
		score += 3
	} else if avgSleep < 7 {
		score += 1
	}
	if highIntensityDays > 5 {
		score += 2
	}
	score = math.Round(math.Min(10, math.Max(0, score))*10) / 10

	risk := RiskLow
	switch {
	case score > 7:
		risk = RiskHigh
	case score > 4:
		risk = RiskMedium
	}

	fatigue := int(math.Round(score * 10))
	lastLog := dailyLogs[len(dailyLogs)-1]
	if lastLog.NutritionScore < 50 {
		fatigue += 10
	}
	fatigue = int(math.Min(100, math.Max(0, float64(fatigue))))

	var insights, recommendations []string
	if avgLoad > 80 {
		insights = append(insights, "training load has been very high this week")
		recommendations = append(recommendations, "schedule a deload or an extra rest day")
	}
	if avgSleep < 6 {
		insights = append(insights, "average sleep is below 6 hours")
		recommendations = append(recommendations, "prioritize sleep before adding training volume")
	} else if avgSleep < 7 {
		insights = append(insights, "average sleep is below 7 hours")
	}
	if highIntensityDays > 5 {
		insights = append(insights, "more than 5 high intensity days in the last week")
		recommendations = append(recommendations, "alternate hard days with easy ones")
	}
	if lastLog.NutritionScore < 50 {
		insights = append(insights, "yesterday's nutrition score was poor")
		recommendations = append(recommendations, "hit your macro targets to support recovery")
	}
	if len(insights) == 0 {
		insights = append(insights, "training and recovery look balanced")
	}

	return HealthRiskResult{
		OvertrainingScore: score,
		InjuryRisk:        risk,
		FatigueLevel:      fatigue,
		Insights:          insights,
		Recommendations:   recommendations,
	}
}

// HealthConsistency measures module engagement over the last N calendar
// days. Each day contributes min(1, modulesInteracted/5); a day without
// a log contributes 0.
func HealthConsistency(activityLogs []profile.HealthActivityLog, days int, now time.Time) int {
	if days <= 0 {
		return 0
	}

	modulesByDate := make(map[string]int, len(activityLogs))
	for _, al := range activityLogs {
		modulesByDate[al.Date] = len(al.ModulesInteracted)
	}

	var sum float64
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -i).Format(profile.DateLayout)
		modules, ok := modulesByDate[date]
		if !ok {
			continue
		}
		sum += math.Min(1, float64(modules)/5)
	}
	return int(math.Round(100 * sum / float64(days)))
}
