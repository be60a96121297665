package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/harrison/garmentqc/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog reports whether messageLevel passes the configured level.
func shouldLog(configured, messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(configured)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// lotLabel names a lot in log lines, falling back to its size.
func lotLabel(name string, lotSize int) string {
	if name == "" {
		return fmt.Sprintf("Lot of %d", lotSize)
	}
	return fmt.Sprintf("Lot %s", name)
}

// formatLotVerdict renders a lot verdict line body. status is the already
// (optionally colored) status text.
// Format: "Lot <name>: <status> (lot size N, sample S, plan a-b) critical=C major=M/maxM minor=m/maxm"
func formatLotVerdict(name string, lotSize int, v models.LotVerdict, status string) string {
	return fmt.Sprintf("%s: %s (lot size %d, sample %d, plan %s) critical=%d major=%d/%d minor=%d/%d",
		lotLabel(name, lotSize), status, lotSize, v.SampleSize, v.PlanUsed.Range(),
		v.Totals.Critical, v.Totals.Major, v.PlanUsed.MaxMajor, v.Totals.Minor, v.PlanUsed.MaxMinor)
}

// sampleLabel names a sample in log lines.
func sampleLabel(name string) string {
	if name == "" {
		return "Sample inspection"
	}
	return "Sample " + name
}

// formatSampleVerdict renders a sample verdict summary line body.
// Format: "Sample <name>: <status> (N points: a pass, b within tolerance, c fail)"
func formatSampleVerdict(name string, v models.SampleInspectionVerdict, status string) string {
	counts := v.StatusCounts()
	return fmt.Sprintf("%s: %s (%d points: %d pass, %d within tolerance, %d fail)",
		sampleLabel(name), status, len(v.Results),
		counts[models.MeasurementPass], counts[models.MeasurementWithinTolerance], counts[models.MeasurementFail])
}

// formatMeasurementResult renders one point's line body.
// Format: "  <pom>: variance +0.500 <status>"
func formatMeasurementResult(r models.MeasurementResult, status string) string {
	label := r.PointOfMeasure
	if label == "" {
		label = r.PointID
	}
	return fmt.Sprintf("  %s: variance %+.3f %s", label, r.Variance, status)
}

// lowerLevel maps an upper-case level tag to its config spelling.
func lowerLevel(tag string) string {
	return strings.ToLower(tag)
}
