package biometrics

import "fmt"

// Sex is the biological sex used by the BMR formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ActivityLevel is a self-reported physical activity level. Values outside
// the known set are accepted and resolve to the sedentary factor downstream.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "lightly_active"
	ActivityModerate   ActivityLevel = "moderately_active"
	ActivityVeryActive ActivityLevel = "very_active"
	ActivityExtra      ActivityLevel = "extra_active"
)

// Goal is a weight-management goal. Values outside the known set are
// accepted and resolve to a zero calorie offset downstream.
type Goal string

const (
	GoalMaintain Goal = "maintain"
	GoalMildLoss Goal = "mild_loss"
	GoalLoss     Goal = "loss"
	GoalMildGain Goal = "mild_gain"
	GoalGain     Goal = "gain"
)

// Input is one person's biometric profile for a single calculation run.
type Input struct {
	Age           int           `json:"age"`
	Sex           Sex           `json:"sex"`
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// Validate checks the input against the supported ranges. ActivityLevel and
// Goal are deliberately not checked here: unknown values fall back to safe
// defaults (factor 1.2, offset 0) instead of failing.
func (i Input) Validate() error {
	if i.Age < 5 || i.Age > 120 {
		return fmt.Errorf("age must be between 5 and 120")
	}
	if i.Sex != SexMale && i.Sex != SexFemale && i.Sex != SexOther {
		return fmt.Errorf("sex must be one of: male, female, other")
	}
	if i.HeightCm < 100 || i.HeightCm > 220 {
		return fmt.Errorf("height_cm must be between 100 and 220")
	}
	if i.WeightKg < 30 || i.WeightKg > 200 {
		return fmt.Errorf("weight_kg must be between 30 and 200")
	}
	return nil
}
