package logger

import (
	"github.com/fatih/color"

	"github.com/harrison/garmentqc/internal/models"
)

// colorScheme defines consistent colors for verdict statuses.
// Green: accepted
// Yellow: conditionally accepted (rework, within tolerance)
// Red: rejected
type colorScheme struct {
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	label   *color.Color
}

// newColorScheme creates the standard color scheme for verdicts.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
		label:   color.New(color.FgCyan),
	}
}

// lotStatus colors a lot status.
func (s *colorScheme) lotStatus(status models.LotStatus) string {
	switch status {
	case models.LotPassed:
		return s.success.Sprint(status)
	case models.LotRework:
		return s.warn.Sprint(status)
	case models.LotFailed:
		return s.fail.Sprint(status)
	}
	return string(status)
}

// sampleStatus colors a sample status.
func (s *colorScheme) sampleStatus(status models.SampleStatus) string {
	switch status {
	case models.SamplePassed:
		return s.success.Sprint(status)
	case models.SampleFailed:
		return s.fail.Sprint(status)
	}
	return string(status)
}

// measurementStatus colors a measurement status.
func (s *colorScheme) measurementStatus(status models.MeasurementStatus) string {
	switch status {
	case models.MeasurementPass:
		return s.success.Sprint(status)
	case models.MeasurementWithinTolerance:
		return s.warn.Sprint(status)
	case models.MeasurementFail:
		return s.fail.Sprint(status)
	}
	return string(status)
}

// level colors a level tag.
func (s *colorScheme) level(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	}
	return level
}
