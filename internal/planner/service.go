// Package planner runs the full calculation pipeline: validated biometric
// input through BMI, energy estimation and meal plan generation.
package planner

import (
	"fmt"

	"github.com/fdg312/bmi-planner/internal/biometrics"
	"github.com/fdg312/bmi-planner/internal/energy"
	"github.com/fdg312/bmi-planner/internal/mealplan"
)

// Result is the output of one pipeline run. It carries the input it was
// derived from so renderers need nothing else.
type Result struct {
	Input  biometrics.Input     `json:"input"`
	BMI    biometrics.BMIResult `json:"bmi"`
	Energy energy.Estimate      `json:"energy"`
	Plan   mealplan.Plan        `json:"plan"`
}

// Compute evaluates the pipeline for one input. Pure and reentrant: no
// shared state, no clock, no randomness — identical inputs produce identical
// results. Validation failures stop the run before any derivation.
func Compute(in biometrics.Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid input: %w", err)
	}

	bmi, err := biometrics.Assess(in.WeightKg, in.HeightCm)
	if err != nil {
		return Result{}, fmt.Errorf("invalid input: %w", err)
	}

	est := energy.Compute(in)

	return Result{
		Input:  in,
		BMI:    bmi,
		Energy: est,
		Plan:   mealplan.Generate(est.CalorieTarget, bmi.Category),
	}, nil
}
