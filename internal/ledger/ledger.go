// Package ledger accumulates defect counts per (category, inspection point)
// during an AQL inspection session.
//
// A Ledger is owned by the caller recording findings; it is not safe for
// concurrent mutation. Its entry set doubles as the audit record of which
// points were inspected, so entries with all-zero counts are kept.
package ledger

import (
	"strings"

	"github.com/harrison/garmentqc/internal/models"
)

// Ledger is an insertion-ordered set of defect entries keyed by
// (category, inspection point).
type Ledger struct {
	entries []models.DefectEntry
	index   map[models.EntryKey]int
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{index: make(map[models.EntryKey]int)}
}

// FromEntries builds a ledger from entries, preserving their order.
// Invalid entries and duplicate identities are rejected.
func FromEntries(entries []models.DefectEntry) (*Ledger, error) {
	l := New()
	for _, e := range entries {
		if err := l.insert(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Ledger) insert(e models.DefectEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	key := e.Key()
	if _, exists := l.index[key]; exists {
		return models.NewInvalidInput("entry", key.String(), "duplicate defect entry")
	}
	l.index[key] = len(l.entries)
	l.entries = append(l.entries, e)
	if _, err := l.sum(); err != nil {
		l.entries = l.entries[:len(l.entries)-1]
		delete(l.index, key)
		return err
	}
	return nil
}

// sum totals every entry, failing if a total would overflow.
func (l *Ledger) sum() (models.DefectTotals, error) {
	var totals models.DefectTotals
	for _, e := range l.entries {
		if err := totals.Add(e); err != nil {
			return models.DefectTotals{}, err
		}
	}
	return totals, nil
}

// Upsert sets the count of one severity for the identified entry, creating
// the entry with zero counts if it does not exist yet.
func (l *Ledger) Upsert(category, inspectionPoint string, severity models.Severity, count int) error {
	if !severity.Valid() {
		return models.NewInvalidInput("severity", string(severity), "must be one of critical, major, minor")
	}
	if count < 0 {
		return models.NewInvalidInput("count", count, "defect count must be >= 0")
	}
	if l.index == nil {
		l.index = make(map[models.EntryKey]int)
	}

	key := models.EntryKey{Category: category, InspectionPoint: inspectionPoint}
	i, exists := l.index[key]
	if !exists {
		if err := l.insert(models.DefectEntry{Category: category, InspectionPoint: inspectionPoint}); err != nil {
			return err
		}
		i = l.index[key]
	}

	previous := l.entries[i]
	entry := &l.entries[i]
	switch severity {
	case models.SeverityCritical:
		entry.Critical = count
	case models.SeverityMajor:
		entry.Major = count
	case models.SeverityMinor:
		entry.Minor = count
	}

	if _, err := l.sum(); err != nil {
		if exists {
			l.entries[i] = previous
		} else {
			l.entries = l.entries[:i]
			delete(l.index, key)
		}
		return err
	}
	return nil
}

// MarkInspected records that a point was inspected without adding defects.
func (l *Ledger) MarkInspected(category, inspectionPoint string) error {
	key := models.EntryKey{Category: category, InspectionPoint: inspectionPoint}
	if _, exists := l.index[key]; exists {
		return nil
	}
	if l.index == nil {
		l.index = make(map[models.EntryKey]int)
	}
	return l.insert(models.DefectEntry{Category: category, InspectionPoint: inspectionPoint})
}

// Totals sums critical, major and minor counts across all entries.
// Insert and Upsert reject changes whose totals would overflow, so the sum
// is always representable.
func (l *Ledger) Totals() models.DefectTotals {
	if l == nil {
		return models.DefectTotals{}
	}
	totals, _ := l.sum()
	return totals
}

// Get returns the entry for (category, inspectionPoint).
func (l *Ledger) Get(category, inspectionPoint string) (models.DefectEntry, bool) {
	i, ok := l.index[models.EntryKey{Category: category, InspectionPoint: inspectionPoint}]
	if !ok {
		return models.DefectEntry{}, false
	}
	return l.entries[i], true
}

// Entries returns a copy of the entries in insertion order.
func (l *Ledger) Entries() []models.DefectEntry {
	entries := make([]models.DefectEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len returns the number of entries, including all-zero ones.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Categories returns the distinct categories in first-seen order.
func (l *Ledger) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, e := range l.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return categories
}

// CategoryTotals sums the entries of one category (case-insensitive match).
func (l *Ledger) CategoryTotals(category string) models.DefectTotals {
	var totals models.DefectTotals
	for _, e := range l.entries {
		if strings.EqualFold(e.Category, category) {
			// a subset of Totals, which cannot overflow
			_ = totals.Add(e)
		}
	}
	return totals
}
