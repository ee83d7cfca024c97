package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/fdg312/bmi-planner/internal/biometrics"
	"github.com/fdg312/bmi-planner/internal/config"
	"github.com/fdg312/bmi-planner/internal/planner"
	"github.com/fdg312/bmi-planner/internal/reports"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Str("service", "bmi-planner").
		Logger().
		Level(level)

	var (
		age      = flag.Int("age", 25, "age in years (5-120)")
		sex      = flag.String("sex", "male", "sex: male, female or other")
		heightCm = flag.Float64("height-cm", 170, "height in cm (100-220)")
		weightKg = flag.Float64("weight-kg", 70, "weight in kg (30-200)")
		activity = flag.String("activity", "sedentary", "activity level: sedentary, lightly_active, moderately_active, very_active, extra_active")
		goal     = flag.String("goal", "maintain", "goal: maintain, mild_loss, loss, mild_gain, gain")
		formats  = flag.String("formats", strings.Join(cfg.ReportFormats, ","), "comma-separated report formats to export: txt, csv, pdf")
		outDir   = flag.String("out", cfg.OutputDir, "directory for exported reports")
	)
	flag.Parse()

	in := biometrics.Input{
		Age:           *age,
		Sex:           biometrics.Sex(*sex),
		HeightCm:      *heightCm,
		WeightKg:      *weightKg,
		ActivityLevel: biometrics.ActivityLevel(*activity),
		Goal:          biometrics.Goal(*goal),
	}

	res, err := planner.Compute(in)
	if err != nil {
		log.Fatal().Err(err).Msg("calculation failed")
	}

	gen := reports.NewGenerator()

	// On-screen summary mirrors the original planner's results section.
	summary, err := gen.Generate(res, reports.FormatText)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render report")
	}
	fmt.Print(string(summary.Data))

	requested := splitFormats(*formats)
	if len(requested) == 0 {
		return
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("failed to create output directory")
	}

	for _, format := range requested {
		rep := summary
		if format != reports.FormatText {
			rep, err = gen.Generate(res, format)
			if err != nil {
				log.Fatal().Err(err).Str("format", format).Msg("failed to render report")
			}
		}

		name, err := reports.FileName(rep.Format)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to resolve report file name")
		}
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, rep.Data, 0o644); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to write report")
		}

		log.Info().
			Str("report_id", rep.ID.String()).
			Str("format", rep.Format).
			Str("path", path).
			Int64("size_bytes", rep.SizeBytes).
			Msg("report written")
	}
}

func splitFormats(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
