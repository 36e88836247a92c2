package scoring

import (
	"math"
	"strings"
	"time"

	profile "github.com/fitpro-app/fitpro/internal/profiledomain"
)

// StackAdherence is the percentage of essential supplements currently
// active. A stack without essentials adheres trivially (100).
func StackAdherence(stack []profile.Supplement) int {
	totalEssentials := 0
	activeEssentials := 0
	for _, s := range stack {
		if !s.Essential {
			continue
		}
		totalEssentials++
		if s.Active {
			activeEssentials++
		}
	}
	if totalEssentials == 0 {
		return 100
	}
	return int(math.Round(100 * float64(activeEssentials) / float64(totalEssentials)))
}

// GoalAlignment scores how well the active stack matches the training
// goal: base 50, goal-keyed bonuses, capped at 100.
func GoalAlignment(stack []profile.Supplement, goal profile.Goal) int {
	score := 50
	switch goal {
	case profile.GoalMuscleGain:
		if stackContains(stack, "creatine") {
			score += 25
		}
		if stackContains(stack, "protein") {
			score += 25
		}
	case profile.GoalFatLoss:
		if stackContains(stack, "protein") {
			score += 30
		}
		if stackContains(stack, "fat-burner") {
			score += 10
		}
	default:
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return score
}

func stackContains(stack []profile.Supplement, kind string) bool {
	for _, s := range stack {
		if !s.Active {
			continue
		}
		if strings.EqualFold(s.Category, kind) ||
			strings.Contains(strings.ToLower(s.Name), kind) {
			return true
		}
	}
	return false
}

// SupplementStreak walks backward from today, up to a year, counting
// consecutive days where at least half the active stack was consumed.
// Today not being logged yet skips the day without breaking the streak.
func SupplementStreak(stack []profile.Supplement, logs []profile.SupplementLog, now time.Time) int {
	activeCount := 0
	for _, s := range stack {
		if s.Active {
			activeCount++
		}
	}
	if activeCount == 0 {
		return 0
	}

	consumedByDate := make(map[string]int)
	loggedDates := make(map[string]bool)
	for _, l := range logs {
		loggedDates[l.Date] = true
		if l.Consumed {
			consumedByDate[l.Date]++
		}
	}

	today := now.Format(profile.DateLayout)
	streak := 0
	for i := 0; i < 365; i++ {
		date := now.AddDate(0, 0, -i).Format(profile.DateLayout)
		if date == today && !loggedDates[date] {
			continue
		}
		ratio := float64(consumedByDate[date]) / float64(activeCount)
		if ratio < 0.5 {
			break
		}
		streak++
	}
	return streak
}
