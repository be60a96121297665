package models

import "fmt"

// SamplingPlanRow maps a lot-size range to the sample size and the major and
// minor acceptance limits for that range.
//
// There is no critical limit field: any critical defect rejects a lot.
type SamplingPlanRow struct {
	MinLotSize int `json:"minLotSize" yaml:"min_lot_size"`
	MaxLotSize int `json:"maxLotSize" yaml:"max_lot_size"`
	SampleSize int `json:"sampleSize" yaml:"sample_size"`
	MaxMajor   int `json:"maxMajor" yaml:"max_major"`
	MaxMinor   int `json:"maxMinor" yaml:"max_minor"`
}

// Contains reports whether lotSize falls inside the row's inclusive range.
func (r SamplingPlanRow) Contains(lotSize int) bool {
	return lotSize >= r.MinLotSize && lotSize <= r.MaxLotSize
}

// Range returns the row's lot-size range formatted as "min-max".
func (r SamplingPlanRow) Range() string {
	return fmt.Sprintf("%d-%d", r.MinLotSize, r.MaxLotSize)
}
