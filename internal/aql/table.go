package aql

import (
	"fmt"
	"sort"

	"github.com/harrison/garmentqc/internal/models"
)

// MinLotSize is the smallest lot size the sampling table covers.
const MinLotSize = 2

// LotSizePolicy decides what happens to lot sizes below MinLotSize.
type LotSizePolicy string

// Lot size policies
const (
	// PolicyReject returns a validation error for lots of size 0 or 1.
	PolicyReject LotSizePolicy = "reject"
	// PolicyClampSmallest evaluates lots of size 0 or 1 against the first row.
	PolicyClampSmallest LotSizePolicy = "clamp"
)

// ParseLotSizePolicy parses a policy name. Empty selects PolicyReject.
func ParseLotSizePolicy(s string) (LotSizePolicy, error) {
	switch LotSizePolicy(s) {
	case "", PolicyReject:
		return PolicyReject, nil
	case PolicyClampSmallest:
		return PolicyClampSmallest, nil
	}
	return "", fmt.Errorf("unknown lot size policy %q, must be one of: reject, clamp", s)
}

// generalLevelII is the General Inspection Level II equivalent plan.
var generalLevelII = []models.SamplingPlanRow{
	{MinLotSize: 2, MaxLotSize: 8, SampleSize: 2, MaxMajor: 0, MaxMinor: 0},
	{MinLotSize: 9, MaxLotSize: 15, SampleSize: 13, MaxMajor: 1, MaxMinor: 1},
	{MinLotSize: 16, MaxLotSize: 25, SampleSize: 13, MaxMajor: 1, MaxMinor: 1},
	{MinLotSize: 26, MaxLotSize: 50, SampleSize: 13, MaxMajor: 1, MaxMinor: 1},
	{MinLotSize: 51, MaxLotSize: 90, SampleSize: 13, MaxMajor: 1, MaxMinor: 1},
	{MinLotSize: 91, MaxLotSize: 150, SampleSize: 20, MaxMajor: 1, MaxMinor: 2},
	{MinLotSize: 151, MaxLotSize: 280, SampleSize: 32, MaxMajor: 2, MaxMinor: 3},
	{MinLotSize: 281, MaxLotSize: 500, SampleSize: 50, MaxMajor: 3, MaxMinor: 5},
	{MinLotSize: 501, MaxLotSize: 1200, SampleSize: 80, MaxMajor: 5, MaxMinor: 7},
	{MinLotSize: 1201, MaxLotSize: 3200, SampleSize: 125, MaxMajor: 7, MaxMinor: 10},
	{MinLotSize: 3201, MaxLotSize: 10000, SampleSize: 200, MaxMajor: 10, MaxMinor: 14},
}

// defaultTable is validated once at startup; a broken literal is a programming error.
var defaultTable = mustNewTable(generalLevelII)

// Table is an ordered, immutable list of sampling plan rows whose ranges are
// contiguous and start at MinLotSize.
type Table struct {
	rows []models.SamplingPlanRow
}

// DefaultTable returns the General Inspection Level II sampling table.
func DefaultTable() *Table {
	return defaultTable
}

// NewTable validates rows and builds a Table from a copy of them.
func NewTable(rows []models.SamplingPlanRow) (*Table, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}
	copied := make([]models.SamplingPlanRow, len(rows))
	copy(copied, rows)
	return &Table{rows: copied}, nil
}

func mustNewTable(rows []models.SamplingPlanRow) *Table {
	t, err := NewTable(rows)
	if err != nil {
		panic(fmt.Sprintf("aql: invalid sampling table: %v", err))
	}
	return t
}

// ValidateRows checks that rows are sorted, contiguous and non-overlapping,
// start at MinLotSize, and carry non-negative limits.
func ValidateRows(rows []models.SamplingPlanRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("sampling table has no rows")
	}
	if rows[0].MinLotSize != MinLotSize {
		return fmt.Errorf("sampling table must start at lot size %d, starts at %d", MinLotSize, rows[0].MinLotSize)
	}
	for i, row := range rows {
		if row.MinLotSize > row.MaxLotSize {
			return fmt.Errorf("row %d: min lot size %d exceeds max %d", i, row.MinLotSize, row.MaxLotSize)
		}
		if row.SampleSize <= 0 {
			return fmt.Errorf("row %d: sample size must be > 0, got %d", i, row.SampleSize)
		}
		if row.MaxMajor < 0 || row.MaxMinor < 0 {
			return fmt.Errorf("row %d: acceptance limits must be >= 0, got major=%d minor=%d", i, row.MaxMajor, row.MaxMinor)
		}
		if i > 0 && row.MinLotSize != rows[i-1].MaxLotSize+1 {
			return fmt.Errorf("row %d: range %s does not continue from %s", i, row.Range(), rows[i-1].Range())
		}
	}
	return nil
}

// Rows returns a copy of the table's rows in ascending order.
func (t *Table) Rows() []models.SamplingPlanRow {
	rows := make([]models.SamplingPlanRow, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// MaxCoveredLotSize returns the upper bound of the last row.
func (t *Table) MaxCoveredLotSize() int {
	return t.rows[len(t.rows)-1].MaxLotSize
}

// Lookup returns the plan for lotSize, rejecting lots below MinLotSize.
// Lots above the last row's range use the last row.
func (t *Table) Lookup(lotSize int) (models.SamplingPlanRow, error) {
	return t.LookupWithPolicy(lotSize, PolicyReject)
}

// LookupWithPolicy is Lookup with an explicit policy for lots of size 0 and 1.
// Negative lot sizes are always rejected.
func (t *Table) LookupWithPolicy(lotSize int, policy LotSizePolicy) (models.SamplingPlanRow, error) {
	if lotSize < 0 {
		return models.SamplingPlanRow{}, models.NewInvalidInput("lotSize", lotSize, "lot size must be >= 0")
	}
	if lotSize < MinLotSize {
		if policy == PolicyClampSmallest {
			return t.rows[0], nil
		}
		return models.SamplingPlanRow{}, models.NewInvalidInput("lotSize", lotSize, fmt.Sprintf("lot size must be >= %d", MinLotSize))
	}

	last := t.rows[len(t.rows)-1]
	if lotSize > last.MaxLotSize {
		return last, nil
	}

	i := sort.Search(len(t.rows), func(i int) bool {
		return t.rows[i].MaxLotSize >= lotSize
	})
	return t.rows[i], nil
}

// IsClamped reports whether lotSize lies beyond the table and is served by its last row.
func (t *Table) IsClamped(lotSize int) bool {
	return lotSize > t.MaxCoveredLotSize()
}
