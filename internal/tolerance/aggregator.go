package tolerance

import (
	"fmt"
	"strings"

	"github.com/harrison/garmentqc/internal/models"
)

// Aggregate combines measurement results into a sample verdict. The sample
// fails only if some result is Fail; WithinTolerance results are conforming.
// Every result must carry one of the three measurement statuses.
func Aggregate(results []models.MeasurementResult) (models.SampleInspectionVerdict, error) {
	status := models.SamplePassed
	for i, r := range results {
		switch r.Status {
		case models.MeasurementFail:
			status = models.SampleFailed
		case models.MeasurementPass, models.MeasurementWithinTolerance:
		default:
			return models.SampleInspectionVerdict{}, models.NewIncompleteInput("results", fmt.Sprintf("result %d has no measurement status", i+1))
		}
	}

	copied := make([]models.MeasurementResult, len(results))
	copy(copied, results)
	return models.SampleInspectionVerdict{Status: status, Results: copied}, nil
}

// EvaluateSample evaluates every point and aggregates the results. All points
// must have an actual measurement; pending points are reported together.
func EvaluateSample(points []models.MeasurementPoint) (models.SampleInspectionVerdict, error) {
	if pending := Pending(points); len(pending) > 0 {
		labels := make([]string, len(pending))
		for i, p := range pending {
			labels[i] = p.Label()
		}
		return models.SampleInspectionVerdict{}, models.NewIncompleteInput("actualMeasurement",
			fmt.Sprintf("%d point(s) pending: %s", len(pending), strings.Join(labels, ", ")))
	}

	results := make([]models.MeasurementResult, 0, len(points))
	for _, p := range points {
		r, err := EvaluatePoint(p)
		if err != nil {
			return models.SampleInspectionVerdict{}, err
		}
		results = append(results, r)
	}
	return Aggregate(results)
}

// Pending returns the points that have no actual measurement yet.
func Pending(points []models.MeasurementPoint) []models.MeasurementPoint {
	var pending []models.MeasurementPoint
	for _, p := range points {
		if p.IsPending() {
			pending = append(pending, p)
		}
	}
	return pending
}

// Measured returns the points that have an actual measurement, in order.
func Measured(points []models.MeasurementPoint) []models.MeasurementPoint {
	var measured []models.MeasurementPoint
	for _, p := range points {
		if !p.IsPending() {
			measured = append(measured, p)
		}
	}
	return measured
}
