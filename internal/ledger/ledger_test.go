package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/garmentqc/internal/models"
)

func TestUpsert_CreatesEntryWithZeroCounts(t *testing.T) {
	l := New()
	require.NoError(t, l.Upsert("Stitching", "Collar", models.SeverityMajor, 2))

	entry, ok := l.Get("Stitching", "Collar")
	require.True(t, ok)
	assert.Equal(t, models.DefectEntry{Category: "Stitching", InspectionPoint: "Collar", Major: 2}, entry)
}

func TestUpsert_SetsNotAdds(t *testing.T) {
	l := New()
	require.NoError(t, l.Upsert("Fabric", "Hem", models.SeverityMinor, 4))
	require.NoError(t, l.Upsert("Fabric", "Hem", models.SeverityMinor, 1))
	require.NoError(t, l.Upsert("Fabric", "Hem", models.SeverityCritical, 1))

	entry, _ := l.Get("Fabric", "Hem")
	assert.Equal(t, 1, entry.Minor)
	assert.Equal(t, 1, entry.Critical)
	assert.Equal(t, 0, entry.Major)
	assert.Equal(t, 1, l.Len())
}

func TestUpsert_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		category string
		point    string
		severity models.Severity
		count    int
	}{
		{"negative count", "Fabric", "Hem", models.SeverityMinor, -1},
		{"unknown severity", "Fabric", "Hem", models.Severity("cosmetic"), 1},
		{"blank category", "", "Hem", models.SeverityMinor, 1},
		{"blank point", "Fabric", " ", models.SeverityMinor, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			err := l.Upsert(tt.category, tt.point, tt.severity, tt.count)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
			assert.Equal(t, 0, l.Len(), "rejected input must not create an entry")
		})
	}
}

func TestTotals(t *testing.T) {
	l := New()
	require.NoError(t, l.Upsert("Stitching", "Collar", models.SeverityMajor, 1))
	require.NoError(t, l.Upsert("Stitching", "Cuff", models.SeverityMinor, 2))
	require.NoError(t, l.Upsert("Trims", "Buttons", models.SeverityCritical, 1))
	require.NoError(t, l.MarkInspected("Fabric", "Body"))

	assert.Equal(t, models.DefectTotals{Critical: 1, Major: 1, Minor: 2}, l.Totals())
	assert.Equal(t, 4, l.Len(), "clean points stay in the ledger")
	assert.Equal(t, []string{"Stitching", "Trims", "Fabric"}, l.Categories())
	assert.Equal(t, models.DefectTotals{Major: 1, Minor: 2}, l.CategoryTotals("stitching"))
}

func TestTotals_Empty(t *testing.T) {
	assert.Equal(t, models.DefectTotals{}, New().Totals())

	var nilLedger *Ledger
	assert.Equal(t, models.DefectTotals{}, nilLedger.Totals())
}

func TestZeroValueLedger(t *testing.T) {
	var l Ledger
	require.NoError(t, l.Upsert("Fabric", "Hem", models.SeverityMinor, 1))
	assert.Equal(t, 1, l.Totals().Minor)
}

func TestMarkInspected_KeepsExistingCounts(t *testing.T) {
	l := New()
	require.NoError(t, l.Upsert("Fabric", "Hem", models.SeverityMinor, 3))
	require.NoError(t, l.MarkInspected("Fabric", "Hem"))

	entry, _ := l.Get("Fabric", "Hem")
	assert.Equal(t, 3, entry.Minor)
}

func TestEntries_InsertionOrderAndCopy(t *testing.T) {
	l := New()
	require.NoError(t, l.Upsert("B", "2", models.SeverityMinor, 1))
	require.NoError(t, l.Upsert("A", "1", models.SeverityMinor, 1))
	require.NoError(t, l.Upsert("B", "2", models.SeverityMajor, 1))

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Category)
	assert.Equal(t, "A", entries[1].Category)

	entries[0].Minor = 99
	got, _ := l.Get("B", "2")
	assert.Equal(t, 1, got.Minor)
}

func TestFromEntries_RejectsDuplicates(t *testing.T) {
	_, err := FromEntries([]models.DefectEntry{
		{Category: "Fabric", InspectionPoint: "Hem"},
		{Category: "Fabric", InspectionPoint: "Hem", Minor: 1},
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestUpsert_RejectsTotalsOverflow(t *testing.T) {
	l := New()
	require.NoError(t, l.Upsert("Trims", "Zipper", models.SeverityCritical, math.MaxInt))
	require.NoError(t, l.Upsert("Trims", "Button", models.SeverityCritical, 0))

	err := l.Upsert("Trims", "Button", models.SeverityCritical, 2)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	entry, _ := l.Get("Trims", "Button")
	assert.Equal(t, 0, entry.Critical, "failed upsert leaves the entry unchanged")

	err = l.Upsert("Trims", "Snap", models.SeverityCritical, 1)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	_, ok := l.Get("Trims", "Snap")
	assert.False(t, ok, "failed upsert does not create the entry")

	assert.Equal(t, math.MaxInt, l.Totals().Critical)
	assert.Equal(t, 2, l.Len())
}

func TestDeserialize_RejectsTotalsOverflow(t *testing.T) {
	data := `[
  {"category": "Trims", "inspectionPoint": "Zipper", "critical": 9223372036854775807, "major": 0, "minor": 0},
  {"category": "Trims", "inspectionPoint": "Button", "critical": 9223372036854775807, "major": 0, "minor": 0},
  {"category": "Trims", "inspectionPoint": "Snap", "critical": 2, "major": 0, "minor": 0}
]`

	_, err := Deserialize(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
