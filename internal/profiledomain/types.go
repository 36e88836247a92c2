package profiledomain

import (
	"time"
)

// DateLayout is the canonical key format for all per-day records.
// Locale formatting happens at render time, never in storage.
const DateLayout = "2006-01-02"

type Goal string

const (
	GoalMuscleGain Goal = "muscle_gain"
	GoalFatLoss    Goal = "fat_loss"
	GoalEndurance  Goal = "endurance"
	GoalGeneral    Goal = "general_fitness"
)

type TrainingStatus string

const (
	TrainingStatusPlanned   TrainingStatus = "planned"
	TrainingStatusCompleted TrainingStatus = "completed"
	TrainingStatusRest      TrainingStatus = "rest"
	TrainingStatusSkipped   TrainingStatus = "skipped"
)

type ExerciseSet struct {
	PlannedReps     int     `json:"plannedReps"`
	PerformedReps   int     `json:"performedReps"`
	PlannedWeight   float64 `json:"plannedWeight"`
	PerformedWeight float64 `json:"performedWeight"`
	Completed       bool    `json:"completed"`
}

type Exercise struct {
	Name string        `json:"name"`
	Sets []ExerciseSet `json:"sets"`
}

type TrainingLog struct {
	ID        int            `json:"id"`
	Date      string         `json:"date"` // DateLayout
	Status    TrainingStatus `json:"status"`
	Exercises []Exercise     `json:"exercises"`
}

// SetCount is the total number of sets across all exercises,
// completed or not.
func (tl TrainingLog) SetCount() int {
	count := 0
	for _, ex := range tl.Exercises {
		count += len(ex.Sets)
	}
	return count
}

type NutritionStatus string

const (
	NutritionStatusPlanned   NutritionStatus = "planned"
	NutritionStatusCompleted NutritionStatus = "completed"
	NutritionStatusSkipped   NutritionStatus = "skipped"
)

type Ingredient struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Meal struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

type NutritionDayLog struct {
	ID              int             `json:"id"`
	Date            string          `json:"date"` // DateLayout
	Status          NutritionStatus `json:"status"`
	Meals           []Meal          `json:"meals"`
	PlannedCalories float64         `json:"plannedCalories"`
	ActualCalories  float64         `json:"actualCalories"`
	WaterIntakeMl   int             `json:"waterIntakeMl"`
}

// DailyLog is one row per calendar date holding the day's
// aggregate scores and readiness inputs.
type DailyLog struct {
	Date           string   `json:"date"` // DateLayout
	WorkoutScore   float64  `json:"workoutScore"`
	NutritionScore float64  `json:"nutritionScore"`
	SleepHours     *float64 `json:"sleepHours,omitempty"`
	Mood           int      `json:"mood"`
	Readiness      int      `json:"readiness"`
}

type Supplement struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Essential bool   `json:"essential"`
	Active    bool   `json:"active"`
}

type SupplementLog struct {
	Date         string `json:"date"` // DateLayout
	SupplementID int    `json:"supplementId"`
	Consumed     bool   `json:"consumed"`
}

type HealthActivityLog struct {
	Date              string   `json:"date"` // DateLayout
	ModulesInteracted []string `json:"modulesInteracted"`
}

type PersonalRecord struct {
	Exercise string  `json:"exercise"`
	Value    float64 `json:"value"`
	Date     string  `json:"date"`
}

type AdvancedHealth struct {
	RecoveryIndex *float64 `json:"recoveryIndex,omitempty"`
	RestingHR     *int     `json:"restingHr,omitempty"`
	HRV           *float64 `json:"hrv,omitempty"`
}

type UserProfile struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	Goal               Goal       `json:"goal"`
	CurrentWeight      float64    `json:"currentWeight"` // kilos
	HeightCm           float64    `json:"heightCm"`
	HighIntensity      bool       `json:"highIntensity"`
	HotWeather         bool       `json:"hotWeather"`
	TrainingStartDate  *time.Time `json:"trainingStartDate,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	SubscriptionStatus string     `json:"subscriptionStatus"`
	SubscriptionTier   string     `json:"subscriptionTier"`

	AdvancedHealth     *AdvancedHealth     `json:"advancedHealth,omitempty"`
	Supplements        []Supplement        `json:"supplements,omitempty"`
	SupplementLogs     []SupplementLog     `json:"supplementLogs,omitempty"`
	HealthActivityLogs []HealthActivityLog `json:"healthActivityLogs,omitempty"`
	Records            []PersonalRecord    `json:"records,omitempty"`
	TrainingLogs       []TrainingLog       `json:"trainingLogs,omitempty"`
	NutritionLogs      []NutritionDayLog   `json:"nutritionLogs,omitempty"`
	DailyLogs          []DailyLog          `json:"dailyLogs,omitempty"`
}

// RecoveryIndexOrDefault returns the advanced-health recovery index,
// or 50 when no snapshot is present.
func (p UserProfile) RecoveryIndexOrDefault() float64 {
	if p.AdvancedHealth == nil || p.AdvancedHealth.RecoveryIndex == nil {
		return 50
	}
	return *p.AdvancedHealth.RecoveryIndex
}
