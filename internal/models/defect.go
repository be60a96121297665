package models

import (
	"fmt"
	"math"
	"strings"
)

// Severity is one of the three defect severity tiers.
type Severity string

// Defect severity tiers
const (
	SeverityCritical Severity = "critical" // Safety hazard, zero tolerance
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Severities lists every severity in decreasing order.
var Severities = []Severity{SeverityCritical, SeverityMajor, SeverityMinor}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor:
		return true
	}
	return false
}

// ParseSeverity parses a severity name case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !sev.Valid() {
		return "", NewInvalidInput("severity", s, "must be one of critical, major, minor")
	}
	return sev, nil
}

// DefectEntry holds the defect counts recorded for one inspection point of
// one category. Entries with all-zero counts record that the point was
// inspected and found clean.
type DefectEntry struct {
	Category        string `json:"category" yaml:"category"`
	InspectionPoint string `json:"inspectionPoint" yaml:"inspection_point"`
	Critical        int    `json:"critical" yaml:"critical"`
	Major           int    `json:"major" yaml:"major"`
	Minor           int    `json:"minor" yaml:"minor"`
}

// Key returns the entry's identity.
func (e DefectEntry) Key() EntryKey {
	return EntryKey{Category: e.Category, InspectionPoint: e.InspectionPoint}
}

// Count returns the count recorded for the given severity.
func (e DefectEntry) Count(sev Severity) int {
	switch sev {
	case SeverityCritical:
		return e.Critical
	case SeverityMajor:
		return e.Major
	case SeverityMinor:
		return e.Minor
	}
	return 0
}

// Validate checks identity fields and that all counts are non-negative.
func (e DefectEntry) Validate() error {
	if strings.TrimSpace(e.Category) == "" {
		return NewInvalidInput("category", nil, "category is required")
	}
	if strings.TrimSpace(e.InspectionPoint) == "" {
		return NewInvalidInput("inspectionPoint", nil, "inspection point is required")
	}
	for _, sev := range Severities {
		if c := e.Count(sev); c < 0 {
			return NewInvalidInput(string(sev), c, fmt.Sprintf("count for %s/%s must be >= 0", e.Category, e.InspectionPoint))
		}
	}
	return nil
}

// EntryKey uniquely identifies a DefectEntry.
type EntryKey struct {
	Category        string
	InspectionPoint string
}

// String returns "category/point".
func (k EntryKey) String() string {
	return k.Category + "/" + k.InspectionPoint
}

// DefectTotals is the sum of a ledger's entries by severity.
type DefectTotals struct {
	Critical int `json:"critical" yaml:"critical"`
	Major    int `json:"major" yaml:"major"`
	Minor    int `json:"minor" yaml:"minor"`
}

// Add accumulates an entry's counts into the totals. A sum that would
// overflow int yields ErrInvalidInput and leaves t unchanged.
func (t *DefectTotals) Add(e DefectEntry) error {
	critical, ok1 := addCount(t.Critical, e.Critical)
	major, ok2 := addCount(t.Major, e.Major)
	minor, ok3 := addCount(t.Minor, e.Minor)
	if !ok1 || !ok2 || !ok3 {
		return NewInvalidInput("totals", e.Key().String(), "defect totals overflow")
	}
	t.Critical, t.Major, t.Minor = critical, major, minor
	return nil
}

func addCount(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

// Validate rejects negative totals.
func (t DefectTotals) Validate() error {
	if t.Critical < 0 || t.Major < 0 || t.Minor < 0 {
		return NewInvalidInput("totals", t, "defect totals must be >= 0")
	}
	return nil
}
