// Package tolerance evaluates garment measurements against designer specs
// during sample development and aggregates them into a sample verdict.
package tolerance

import (
	"fmt"
	"math"

	"github.com/harrison/garmentqc/internal/models"
)

// Epsilon guards the exact-match comparison against floating-point noise.
// It is not part of the tolerance band.
const Epsilon = 0.001

// bandPrecision is the resolution at which the variance is compared with the
// tolerance, so 10.5-10.2 lands on a 0.3 band instead of just past it.
const bandPrecision = 1e9

// Evaluate computes the variance of actual against designer and classifies it:
// Pass within Epsilon, WithinTolerance within the (inclusive) tolerance band,
// Fail otherwise.
func Evaluate(designer, actual, tolerance float64) (models.MeasurementResult, error) {
	if !isFinite(designer) {
		return models.MeasurementResult{}, models.NewInvalidInput("designerMeasurement", designer, "must be a finite number")
	}
	if !isFinite(actual) {
		return models.MeasurementResult{}, models.NewInvalidInput("actualMeasurement", actual, "must be a finite number")
	}
	if !isFinite(tolerance) || tolerance < 0 {
		return models.MeasurementResult{}, models.NewInvalidInput("tolerance", tolerance, "must be a finite number >= 0")
	}

	variance := actual - designer
	d := math.Abs(variance)

	var status models.MeasurementStatus
	switch {
	case d <= Epsilon:
		status = models.MeasurementPass
	case roundBand(d) <= roundBand(tolerance):
		status = models.MeasurementWithinTolerance
	default:
		status = models.MeasurementFail
	}

	return models.MeasurementResult{Variance: variance, Status: status}, nil
}

// EvaluatePoint evaluates a point that has an actual measurement.
// A pending point yields ErrIncompleteInput.
func EvaluatePoint(p models.MeasurementPoint) (models.MeasurementResult, error) {
	if p.IsPending() {
		return models.MeasurementResult{}, models.NewIncompleteInput("actualMeasurement", fmt.Sprintf("point %q has no actual measurement", p.Label()))
	}

	result, err := Evaluate(p.DesignerMeasurement, *p.ActualMeasurement, p.Tolerance)
	if err != nil {
		return models.MeasurementResult{}, fmt.Errorf("point %q: %w", p.Label(), err)
	}
	result.PointID = p.ID
	result.PointOfMeasure = p.PointOfMeasure
	return result, nil
}

func roundBand(f float64) float64 {
	return math.Round(f*bandPrecision) / bandPrecision
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
