package biometrics

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	cases := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"reference adult", 70, 170, 70 / (1.7 * 1.7)},
		{"tall heavy", 100, 200, 25.0},
		{"short light", 45, 150, 20.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateBMI(tc.weightKg, tc.heightCm)
			if err != nil {
				t.Fatalf("CalculateBMI(%v, %v) returned error: %v", tc.weightKg, tc.heightCm, err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("CalculateBMI(%v, %v) = %v, want %v", tc.weightKg, tc.heightCm, got, tc.want)
			}
			if got <= 0 {
				t.Errorf("BMI must be positive, got %v", got)
			}
		})
	}
}

func TestCalculateBMI_InvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		weightKg float64
		heightCm float64
	}{
		{"zero height", 70, 0},
		{"negative height", 70, -170},
		{"zero weight", 0, 170},
		{"negative weight", -70, 170},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CalculateBMI(tc.weightKg, tc.heightCm); err == nil {
				t.Errorf("CalculateBMI(%v, %v) expected error, got nil", tc.weightKg, tc.heightCm)
			}
		})
	}
}

// TestCategorize_Boundaries pins the band edges: each threshold belongs to
// the upper category.
func TestCategorize_Boundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want Category
	}{
		{10, CategoryUnderweight},
		{18.49, CategoryUnderweight},
		{18.5, CategoryNormal},
		{24.99, CategoryNormal},
		{25.0, CategoryOverweight},
		{29.99, CategoryOverweight},
		{30.0, CategoryObese},
		{45, CategoryObese},
	}

	for _, tc := range cases {
		if got := Categorize(tc.bmi); got != tc.want {
			t.Errorf("Categorize(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestAssess(t *testing.T) {
	res, err := Assess(70, 170)
	if err != nil {
		t.Fatalf("Assess returned error: %v", err)
	}
	if res.Category != CategoryNormal {
		t.Errorf("Assess(70, 170) category = %q, want %q", res.Category, CategoryNormal)
	}
	if math.Abs(res.Value-24.221453287197235) > 1e-9 {
		t.Errorf("Assess(70, 170) value = %v, want ~24.2215", res.Value)
	}

	if _, err := Assess(70, 0); err == nil {
		t.Error("Assess with zero height expected error, got nil")
	}
}
