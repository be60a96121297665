package models

// MeasurementStatus is the tri-state outcome of a single point of measure.
type MeasurementStatus string

// Measurement status constants
const (
	MeasurementPass            MeasurementStatus = "Pass"            // Matches the designer spec
	MeasurementWithinTolerance MeasurementStatus = "WithinTolerance" // Off spec but inside the tolerance band
	MeasurementFail            MeasurementStatus = "Fail"            // Outside the tolerance band
)

// Valid reports whether s is one of the three measurement statuses.
func (s MeasurementStatus) Valid() bool {
	switch s {
	case MeasurementPass, MeasurementWithinTolerance, MeasurementFail:
		return true
	}
	return false
}

// MeasurementPoint is a point of measure with the designer's spec, the
// symmetric tolerance and, once inspected, the actual measurement.
type MeasurementPoint struct {
	ID                  string   `json:"id" yaml:"id"`
	PointOfMeasure      string   `json:"pointOfMeasure" yaml:"pom"`
	DesignerMeasurement float64  `json:"designerMeasurement" yaml:"spec"`
	Tolerance           float64  `json:"tolerance" yaml:"tolerance"`
	ActualMeasurement   *float64 `json:"actualMeasurement,omitempty" yaml:"actual,omitempty"`
}

// IsPending returns true while no actual measurement has been recorded.
func (p MeasurementPoint) IsPending() bool {
	return p.ActualMeasurement == nil
}

// Label returns the point of measure, falling back to the ID.
func (p MeasurementPoint) Label() string {
	if p.PointOfMeasure != "" {
		return p.PointOfMeasure
	}
	return p.ID
}

// MeasurementResult is the evaluated variance and status of one point.
type MeasurementResult struct {
	PointID        string            `json:"pointId,omitempty" yaml:"point_id,omitempty"`
	PointOfMeasure string            `json:"pointOfMeasure,omitempty" yaml:"pom,omitempty"`
	Variance       float64           `json:"variance" yaml:"variance"`
	Status         MeasurementStatus `json:"status" yaml:"status"`
}
