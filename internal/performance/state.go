package performance

type InjuryRisk string

const (
	InjuryRiskLow    InjuryRisk = "low"
	InjuryRiskMedium InjuryRisk = "medium"
	InjuryRiskHigh   InjuryRisk = "high"
)

type Adaptation string

const (
	AdaptationNone      Adaptation = "none"
	AdaptationDeload    Adaptation = "deload"
	AdaptationIntensify Adaptation = "intensify"
)

// State is the derived performance snapshot the app renders from:
// fatigue accumulated from training volume, inflammation from nutrition
// quality signals, hydration and calorie targets from body weight, and
// the recovery-driven adaptation advice.
type State struct {
	FatigueLevel         float64    `json:"fatigueLevel"`      // [0,100]
	InjuryRisk           InjuryRisk `json:"injuryRisk"`        // from fatigue thresholds
	InflammationScore    float64    `json:"inflammationScore"` // >= 0
	RecoveryIndex        float64    `json:"recoveryIndex"`     // [0,100]
	ConsistencyScore     float64    `json:"consistencyScore"`
	DailyCalorieTarget   int        `json:"dailyCalorieTarget"`
	DailyHydrationTarget int        `json:"dailyHydrationTarget"` // ml
	Adaptation           Adaptation `json:"adaptation"`
}

func DefaultState() State {
	return State{
		FatigueLevel:         20,
		InjuryRisk:           InjuryRiskLow,
		InflammationScore:    10,
		RecoveryIndex:        75,
		ConsistencyScore:     0,
		DailyCalorieTarget:   2200,
		DailyHydrationTarget: 3000,
		Adaptation:           AdaptationNone,
	}
}
