package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/fdg312/bmi-planner/internal/biometrics"
	"github.com/fdg312/bmi-planner/internal/mealplan"
	"github.com/fdg312/bmi-planner/internal/planner"
)

// sexLabels maps the wire values onto the display names used in reports.
var sexLabels = map[biometrics.Sex]string{
	biometrics.SexMale:   "Male",
	biometrics.SexFemale: "Female",
	biometrics.SexOther:  "Other",
}

// slotLabels maps meal slots onto the display names used in reports and the
// CSV meal column.
var slotLabels = map[mealplan.Slot]string{
	mealplan.SlotBreakfast: "Breakfast",
	mealplan.SlotLunch:     "Lunch",
	mealplan.SlotSnack:     "Snack",
	mealplan.SlotDinner:    "Dinner",
}

// Generator renders pipeline results as TXT/CSV/PDF reports.
type Generator struct{}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a result in the requested format and wraps it in report
// metadata. The rendered bytes depend only on the result; ID and CreatedAt
// live on the envelope so identical inputs still produce identical files.
func (g *Generator) Generate(res planner.Result, format string) (Report, error) {
	var data []byte
	var err error

	switch format {
	case FormatText:
		data = g.generateText(res)
	case FormatCSV:
		data, err = g.generateCSV(res)
	case FormatPDF:
		data, err = g.generatePDF(res)
	default:
		return Report{}, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return Report{}, err
	}

	return Report{
		ID:        uuid.New(),
		Format:    format,
		SizeBytes: int64(len(data)),
		CreatedAt: time.Now().UTC(),
		Data:      data,
	}, nil
}

// generateText renders the plain-text report. Field order, labels and
// number formatting reproduce the original planner's downloadable TXT byte
// for byte — do not reshuffle.
func (g *Generator) generateText(res planner.Result) []byte {
	var b bytes.Buffer

	b.WriteString("BMI Report\n")
	fmt.Fprintf(&b, "Age: %d\n", res.Input.Age)
	fmt.Fprintf(&b, "Gender: %s\n", sexLabels[res.Input.Sex])
	fmt.Fprintf(&b, "Height (cm): %s\n", formatNumber(res.Input.HeightCm))
	fmt.Fprintf(&b, "Weight (kg): %s\n\n", formatNumber(res.Input.WeightKg))

	fmt.Fprintf(&b, "BMI: %.2f (%s)\n", res.BMI.Value, res.BMI.Category)
	fmt.Fprintf(&b, "BMR: %d kcal/day\n", int(res.Energy.BMR))
	fmt.Fprintf(&b, "TDEE: %d kcal/day\n", res.Energy.TDEE)
	fmt.Fprintf(&b, "Calorie target: %d kcal/day\n\n", res.Energy.CalorieTarget)

	b.WriteString("Sample Meal Plan:\n")
	for _, slot := range mealplan.Slots {
		fmt.Fprintf(&b, "%s: %s\n", slotLabels[slot], res.Plan.Suggestion(slot))
	}

	return b.Bytes()
}

// generateCSV renders the meal plan as a two-column CSV: header
// "meal,suggestion", one row per slot in serving order.
func (g *Generator) generateCSV(res planner.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"meal", "suggestion"}); err != nil {
		return nil, err
	}
	for _, slot := range mealplan.Slots {
		if err := w.Write([]string{slotLabels[slot], res.Plan.Suggestion(slot)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// generatePDF renders the same report content as an A4 PDF. Layout is not
// part of the stable wire format; the TXT report is.
func (g *Generator) generatePDF(res planner.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "BMI Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Age: %d", res.Input.Age))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Gender: %s", sexLabels[res.Input.Sex]))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Height (cm): %s", formatNumber(res.Input.HeightCm)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Weight (kg): %s", formatNumber(res.Input.WeightKg)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("BMI: %.2f (%s)", res.BMI.Value, res.BMI.Category))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("BMR: %d kcal/day", int(res.Energy.BMR)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("TDEE: %d kcal/day", res.Energy.TDEE))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Calorie target: %d kcal/day", res.Energy.CalorieTarget))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Sample Meal Plan")
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 5, res.Plan.Notes, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	for _, slot := range mealplan.Slots {
		pdf.CellFormat(26, 6, slotLabels[slot], "1", 0, "L", false, 0, "")
		pdf.MultiCell(0, 6, res.Plan.Suggestion(slot), "1", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// formatNumber prints a measurement without trailing zeros, so whole-number
// heights and weights render the way the original planner printed them
// ("170", not "170.0").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
