package mealplan

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/fdg312/bmi-planner/internal/biometrics"
)

// TestSlotShares verifies the base split covers the whole target:
// 0.25 + 0.35 + 0.10 + 0.30 = 1.00.
func TestSlotShares(t *testing.T) {
	var sum float64
	for _, slot := range Slots {
		sum += slotShares[slot]
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("slot shares sum to %v, want 1.0", sum)
	}
}

// TestGenerate_PortionAdjustments checks the adjusted kcal numbers for a
// 2000 kcal target across all four categories. Base portions: breakfast 500,
// lunch 700, snack 200, dinner 600.
func TestGenerate_PortionAdjustments(t *testing.T) {
	cases := []struct {
		category  biometrics.Category
		breakfast int
		lunch     int
		snack     int
		dinner    int
	}{
		{biometrics.CategoryUnderweight, 650, 900, 350, 750},
		{biometrics.CategoryNormal, 500, 700, 200, 600},
		{biometrics.CategoryOverweight, 400, 600, 150, 550},
		{biometrics.CategoryObese, 350, 550, 150, 500},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			plan := Generate(2000, tc.category)

			wantKcal := map[Slot]int{
				SlotBreakfast: tc.breakfast,
				SlotLunch:     tc.lunch,
				SlotSnack:     tc.snack,
				SlotDinner:    tc.dinner,
			}
			for slot, kcal := range wantKcal {
				text := plan.Suggestion(slot)
				marker := "(~" + strconv.Itoa(kcal) + " kcal)"
				if !strings.Contains(text, marker) {
					t.Errorf("%s suggestion %q does not contain %q", slot, text, marker)
				}
			}
		})
	}
}

// TestGenerate_Templates pins the template strings for a normal-weight plan;
// these are part of the report wire format.
func TestGenerate_Templates(t *testing.T) {
	plan := Generate(2000, biometrics.CategoryNormal)

	want := Plan{
		Notes:     "Maintain balanced macros and regular activity.",
		Breakfast: "Vegetable omelette/tofu scramble + wholegrain toast (~500 kcal)",
		Lunch:     "Grilled chicken/fish or paneer + salad + brown rice (~700 kcal)",
		Snack:     "Fruit or yogurt (~200 kcal)",
		Dinner:    "Light curry + roti + salad (~600 kcal)",
	}
	if plan != want {
		t.Errorf("Generate(2000, normal) = %+v, want %+v", plan, want)
	}
}

// TestGenerate_Truncation verifies that base portions truncate toward zero:
// a 1999 kcal target splits into 499/699/199/599, where rounding would have
// produced 500/700/200/600.
func TestGenerate_Truncation(t *testing.T) {
	plan := Generate(1999, biometrics.CategoryNormal)

	wantKcal := map[Slot]int{
		SlotBreakfast: 499,
		SlotLunch:     699,
		SlotSnack:     199,
		SlotDinner:    599,
	}
	for slot, kcal := range wantKcal {
		text := plan.Suggestion(slot)
		marker := "(~" + strconv.Itoa(kcal) + " kcal)"
		if !strings.Contains(text, marker) {
			t.Errorf("%s suggestion %q does not contain %q", slot, text, marker)
		}
	}
}

func TestGenerate_NotesPerCategory(t *testing.T) {
	cases := []struct {
		category biometrics.Category
		want     string
	}{
		{biometrics.CategoryUnderweight, "Focus on calorie-dense nutritious foods: nuts, dairy, healthy oils, and protein."},
		{biometrics.CategoryNormal, "Maintain balanced macros and regular activity."},
		{biometrics.CategoryOverweight, "Reduce refined carbs & added sugars; prioritize protein and fiber."},
		{biometrics.CategoryObese, "Aim for modest calorie deficit, high fiber, lean proteins. Consult a professional for personalised plan."},
	}

	for _, tc := range cases {
		if got := Generate(1800, tc.category).Notes; got != tc.want {
			t.Errorf("notes for %s = %q, want %q", tc.category, got, tc.want)
		}
	}
}

// TestGenerate_UnknownCategory verifies the fallback: an unknown category
// renders the obese row instead of panicking or returning empty strings.
func TestGenerate_UnknownCategory(t *testing.T) {
	got := Generate(2000, biometrics.Category("mystery"))
	want := Generate(2000, biometrics.CategoryObese)
	if got != want {
		t.Errorf("unknown category plan = %+v, want obese fallback %+v", got, want)
	}
}

