package models

// LotStatus is the verdict of an AQL lot acceptance evaluation.
type LotStatus string

// Lot verdict constants
const (
	LotPassed LotStatus = "Passed"
	LotFailed LotStatus = "Failed"
	LotRework LotStatus = "Rework" // Minor allowance exceeded, correctable
)

// Valid reports whether s is a known lot status.
func (s LotStatus) Valid() bool {
	switch s {
	case LotPassed, LotFailed, LotRework:
		return true
	}
	return false
}

// LotVerdict is the outcome of evaluating one lot size against one ledger snapshot.
type LotVerdict struct {
	SampleSize int             `json:"sampleSize" yaml:"sample_size"`
	Totals     DefectTotals    `json:"totals" yaml:"totals"`
	Status     LotStatus       `json:"status" yaml:"status"`
	PlanUsed   SamplingPlanRow `json:"planUsed" yaml:"plan_used"`
}

// SampleStatus is the verdict of a sample (dimensional) inspection.
type SampleStatus string

// Sample verdict constants
const (
	SamplePassed SampleStatus = "Passed"
	SampleFailed SampleStatus = "Failed"
)

// Valid reports whether s is a known sample status.
func (s SampleStatus) Valid() bool {
	return s == SamplePassed || s == SampleFailed
}

// SampleInspectionVerdict aggregates the results of a complete measurement set.
type SampleInspectionVerdict struct {
	Status  SampleStatus        `json:"status" yaml:"status"`
	Results []MeasurementResult `json:"results" yaml:"results"`
}

// StatusCounts returns how many results carry each measurement status.
func (v SampleInspectionVerdict) StatusCounts() map[MeasurementStatus]int {
	counts := make(map[MeasurementStatus]int, 3)
	for _, r := range v.Results {
		counts[r.Status]++
	}
	return counts
}
