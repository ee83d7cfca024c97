// Package energy estimates daily energy expenditure from a biometric profile
// using the Mifflin-St Jeor equation.
package energy

import (
	"github.com/fdg312/bmi-planner/internal/biometrics"
)

// activityFactors maps activity levels to their TDEE multiplier. This is the
// single source of truth for the supported levels; unknown levels fall back
// to the sedentary factor.
var activityFactors = map[biometrics.ActivityLevel]float64{
	biometrics.ActivitySedentary:  1.2,
	biometrics.ActivityLight:      1.375,
	biometrics.ActivityModerate:   1.55,
	biometrics.ActivityVeryActive: 1.725,
	biometrics.ActivityExtra:      1.9,
}

const defaultActivityFactor = 1.2

// goalOffsets maps weight-management goals to a daily kcal adjustment on top
// of TDEE. Unknown goals get the map's zero value, i.e. maintain.
var goalOffsets = map[biometrics.Goal]int{
	biometrics.GoalMaintain: 0,
	biometrics.GoalMildLoss: -250,
	biometrics.GoalLoss:     -500,
	biometrics.GoalMildGain: 250,
	biometrics.GoalGain:     500,
}

// Estimate holds the derived energy numbers for one profile.
type Estimate struct {
	BMR           float64 `json:"bmr"`
	TDEE          int     `json:"tdee"`
	CalorieTarget int     `json:"calorie_target"`
}

// BasalMetabolicRate computes BMR via Mifflin-St Jeor. For "other" the mean
// of the male and female equations is used, matching the behavior of the
// original planner rather than any clinical reference.
func BasalMetabolicRate(in biometrics.Input) float64 {
	base := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	switch in.Sex {
	case biometrics.SexMale:
		return base + 5
	case biometrics.SexFemale:
		return base - 161
	default:
		male := base + 5
		female := base - 161
		return (male + female) / 2
	}
}

// ActivityFactor returns the TDEE multiplier for a level, defaulting to 1.2
// for unknown levels.
func ActivityFactor(level biometrics.ActivityLevel) float64 {
	if f, ok := activityFactors[level]; ok {
		return f
	}
	return defaultActivityFactor
}

// GoalOffset returns the daily kcal adjustment for a goal, defaulting to 0
// for unknown goals.
func GoalOffset(goal biometrics.Goal) int {
	return goalOffsets[goal]
}

// Compute derives BMR, TDEE and the daily calorie target. TDEE truncates
// toward zero (int cast, not rounding) so regenerated reports match ones
// produced by the original planner byte for byte.
func Compute(in biometrics.Input) Estimate {
	bmr := BasalMetabolicRate(in)
	tdee := int(bmr * ActivityFactor(in.ActivityLevel))
	return Estimate{
		BMR:           bmr,
		TDEE:          tdee,
		CalorieTarget: tdee + GoalOffset(in.Goal),
	}
}
