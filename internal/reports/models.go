package reports

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Supported report formats.
const (
	FormatText = "txt"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// Report is one generated report with its rendered bytes.
type Report struct {
	ID        uuid.UUID `json:"id"`
	Format    string    `json:"format"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
	Data      []byte    `json:"-"`
}

// FileName returns the export file name for a format. The txt and csv names
// match the files the original planner offered for download.
func FileName(format string) (string, error) {
	switch format {
	case FormatText:
		return "bmi_report.txt", nil
	case FormatCSV:
		return "meal_plan.csv", nil
	case FormatPDF:
		return "bmi_report.pdf", nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
