package profile

import (
	"github.com/fitpro-app/fitpro/internal/profiledomain"
)

// The domain types are declared in internal/profiledomain so that
// internal/scoring can consume them without importing this package
// (profile's handlers call into scoring, which would otherwise be an
// import cycle). The aliases below keep profile's exported surface
// unchanged.

// DateLayout is the canonical key format for all per-day records.
// Locale formatting happens at render time, never in storage.
const DateLayout = profiledomain.DateLayout

type Goal = profiledomain.Goal

const (
	GoalMuscleGain = profiledomain.GoalMuscleGain
	GoalFatLoss    = profiledomain.GoalFatLoss
	GoalEndurance  = profiledomain.GoalEndurance
	GoalGeneral    = profiledomain.GoalGeneral
)

type TrainingStatus = profiledomain.TrainingStatus

const (
	TrainingStatusPlanned   = profiledomain.TrainingStatusPlanned
	TrainingStatusCompleted = profiledomain.TrainingStatusCompleted
	TrainingStatusRest      = profiledomain.TrainingStatusRest
	TrainingStatusSkipped   = profiledomain.TrainingStatusSkipped
)

type ExerciseSet = profiledomain.ExerciseSet

type Exercise = profiledomain.Exercise

type TrainingLog = profiledomain.TrainingLog

type NutritionStatus = profiledomain.NutritionStatus

const (
	NutritionStatusPlanned   = profiledomain.NutritionStatusPlanned
	NutritionStatusCompleted = profiledomain.NutritionStatusCompleted
	NutritionStatusSkipped   = profiledomain.NutritionStatusSkipped
)

type Ingredient = profiledomain.Ingredient

type Meal = profiledomain.Meal

type NutritionDayLog = profiledomain.NutritionDayLog

type DailyLog = profiledomain.DailyLog

type Supplement = profiledomain.Supplement

type SupplementLog = profiledomain.SupplementLog

type HealthActivityLog = profiledomain.HealthActivityLog

type PersonalRecord = profiledomain.PersonalRecord

type AdvancedHealth = profiledomain.AdvancedHealth

type UserProfile = profiledomain.UserProfile
