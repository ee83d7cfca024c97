// Package mealplan turns a daily calorie target and a BMI category into a
// fixed four-meal sample plan. This is presentation templating, not a
// nutrition engine: suggestions are static strings parameterized only by an
// adjusted kcal number.
package mealplan

import (
	"fmt"

	"github.com/fdg312/bmi-planner/internal/biometrics"
)

// Slot is one of the four daily meal slots.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotSnack     Slot = "snack"
	SlotDinner    Slot = "dinner"
)

// Slots lists the meal slots in serving order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotSnack, SlotDinner}

// slotShares is the base split of the daily calorie target across slots.
// The shares sum to 1.0; each portion truncates to a whole kcal.
var slotShares = map[Slot]float64{
	SlotBreakfast: 0.25,
	SlotLunch:     0.35,
	SlotSnack:     0.10,
	SlotDinner:    0.30,
}

// Plan is a generated sample meal plan.
type Plan struct {
	Notes     string `json:"notes"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Snack     string `json:"snack"`
	Dinner    string `json:"dinner"`
}

// Suggestion returns the plan text for a slot.
func (p Plan) Suggestion(slot Slot) string {
	switch slot {
	case SlotBreakfast:
		return p.Breakfast
	case SlotLunch:
		return p.Lunch
	case SlotSnack:
		return p.Snack
	case SlotDinner:
		return p.Dinner
	}
	return ""
}

// suggestion is one cell of the category x slot template table: a format
// string taking the adjusted kcal number, and the kcal delta applied to the
// slot's base portion before formatting.
type suggestion struct {
	template   string
	adjustKcal int
}

// categoryRow holds the four slot templates and the advisory note for one
// BMI category.
type categoryRow struct {
	notes string
	slots map[Slot]suggestion
}

// suggestionTable is the full 4x4 template matrix. Template strings and
// adjustments are fixed; changing them changes the report wire format.
var suggestionTable = map[biometrics.Category]categoryRow{
	biometrics.CategoryUnderweight: {
		notes: "Focus on calorie-dense nutritious foods: nuts, dairy, healthy oils, and protein.",
		slots: map[Slot]suggestion{
			SlotBreakfast: {"Oats with whole milk, banana, and peanut butter (~%d kcal)", 150},
			SlotLunch:     {"Rice/roti + dal + paneer/chicken + veggies (~%d kcal)", 200},
			SlotSnack:     {"Nuts & dried fruit or smoothie (~%d kcal)", 150},
			SlotDinner:    {"Rice/roti + lentils + salad + yogurt (~%d kcal)", 150},
		},
	},
	biometrics.CategoryNormal: {
		notes: "Maintain balanced macros and regular activity.",
		slots: map[Slot]suggestion{
			SlotBreakfast: {"Vegetable omelette/tofu scramble + wholegrain toast (~%d kcal)", 0},
			SlotLunch:     {"Grilled chicken/fish or paneer + salad + brown rice (~%d kcal)", 0},
			SlotSnack:     {"Fruit or yogurt (~%d kcal)", 0},
			SlotDinner:    {"Light curry + roti + salad (~%d kcal)", 0},
		},
	},
	biometrics.CategoryOverweight: {
		notes: "Reduce refined carbs & added sugars; prioritize protein and fiber.",
		slots: map[Slot]suggestion{
			SlotBreakfast: {"Greek yogurt + berries + seeds (~%d kcal)", -100},
			SlotLunch:     {"Grilled protein + large salad + quinoa (~%d kcal)", -100},
			SlotSnack:     {"Raw veggies or an apple (~%d kcal)", -50},
			SlotDinner:    {"Steamed fish/beans + veggies (~%d kcal)", -50},
		},
	},
	biometrics.CategoryObese: {
		notes: "Aim for modest calorie deficit, high fiber, lean proteins. Consult a professional for personalised plan.",
		slots: map[Slot]suggestion{
			SlotBreakfast: {"Oatmeal with berries (~%d kcal)", -150},
			SlotLunch:     {"Large salad with lean protein (~%d kcal)", -150},
			SlotSnack:     {"Veg sticks or a small fruit (~%d kcal)", -50},
			SlotDinner:    {"Light vegetable soup + lean protein (~%d kcal)", -100},
		},
	},
}

// Generate builds the sample plan for a calorie target and category. Total
// over its domain: an unknown category uses the Obese row, mirroring the
// original planner's final else branch (unreachable via Categorize).
func Generate(calorieTarget int, category biometrics.Category) Plan {
	row, ok := suggestionTable[category]
	if !ok {
		row = suggestionTable[biometrics.CategoryObese]
	}

	render := func(slot Slot) string {
		base := int(float64(calorieTarget) * slotShares[slot])
		s := row.slots[slot]
		return fmt.Sprintf(s.template, base+s.adjustKcal)
	}

	return Plan{
		Notes:     row.notes,
		Breakfast: render(SlotBreakfast),
		Lunch:     render(SlotLunch),
		Snack:     render(SlotSnack),
		Dinner:    render(SlotDinner),
	}
}
