package biometrics

import "fmt"

// Category is a BMI band. The string values are the display names used in
// rendered reports and must stay stable.
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// BMIResult pairs a computed BMI value with its category.
type BMIResult struct {
	Value    float64  `json:"value"`
	Category Category `json:"category"`
}

// CalculateBMI computes weight / (height/100)^2. Rounding happens at render
// time only. Height and weight are range-checked by Input.Validate, but
// non-positive values are guarded here as well so the division is safe for
// direct callers.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, fmt.Errorf("height_cm must be positive")
	}
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight_kg must be positive")
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// Categorize maps a BMI value onto its band. Bands are left-inclusive:
// exactly 18.5, 25 and 30 belong to the upper category.
func Categorize(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// Assess computes the BMI and its category in one step.
func Assess(weightKg, heightCm float64) (BMIResult, error) {
	bmi, err := CalculateBMI(weightKg, heightCm)
	if err != nil {
		return BMIResult{}, err
	}
	return BMIResult{Value: bmi, Category: Categorize(bmi)}, nil
}
