package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/garmentqc/internal/models"
)

var plan91 = models.SamplingPlanRow{MinLotSize: 91, MaxLotSize: 150, SampleSize: 20, MaxMajor: 1, MaxMinor: 2}

func TestRenderer_LotVerdict(t *testing.T) {
	r := NewRenderer(false)
	out := r.LotVerdict("PO-1042", 120, models.LotVerdict{
		SampleSize: 20,
		Totals:     models.DefectTotals{Major: 1, Minor: 3},
		Status:     models.LotRework,
		PlanUsed:   plan91,
	})

	assert.Contains(t, out, "Lot PO-1042")
	assert.Contains(t, out, "Status:      Rework")
	assert.Contains(t, out, "Lot size:    120")
	assert.Contains(t, out, "Sample size: 20")
	assert.Contains(t, out, "91-150 (major <= 1, minor <= 2)")
	assert.Contains(t, out, "critical 0, major 1, minor 3")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderer_SampleVerdict(t *testing.T) {
	r := NewRenderer(false)
	out := r.SampleVerdict("SS25-TEE", models.SampleInspectionVerdict{
		Status: models.SamplePassed,
		Results: []models.MeasurementResult{
			{PointOfMeasure: "Chest width", Variance: 0.25, Status: models.MeasurementPass},
			{PointID: "p2", Variance: -0.4, Status: models.MeasurementWithinTolerance},
		},
	})

	assert.Contains(t, out, "Sample SS25-TEE")
	assert.Contains(t, out, "Status:      Passed")
	assert.Contains(t, out, "2 (1 pass, 1 within tolerance, 0 fail)")
	assert.Contains(t, out, "Chest width")
	assert.Contains(t, out, "+0.250")
	assert.Contains(t, out, "p2")
	assert.Contains(t, out, "-0.400")
	assert.Contains(t, out, "WithinTolerance")
}

func TestRenderer_SampleVerdictEmpty(t *testing.T) {
	out := NewRenderer(false).SampleVerdict("", models.SampleInspectionVerdict{Status: models.SamplePassed})
	assert.Contains(t, out, "Sample inspection")
	assert.NotContains(t, out, "Variance")
}

func TestRenderer_PlanTable(t *testing.T) {
	out := NewRenderer(false).PlanTable([]models.SamplingPlanRow{
		{MinLotSize: 2, MaxLotSize: 8, SampleSize: 2, MaxMajor: 0, MaxMinor: 0},
		plan91,
	})
	for _, want := range []string{"Lot size", "Max minor", "2-8", "91-150", "20"} {
		assert.Contains(t, out, want)
	}
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4)
}

func TestRenderer_LotBatch(t *testing.T) {
	out := NewRenderer(false).LotBatch([]LotLine{
		{Name: "PO-1", LotSize: 100, Verdict: models.LotVerdict{SampleSize: 20, Status: models.LotPassed, PlanUsed: plan91}},
		{Name: "PO-2", LotSize: 120, Verdict: models.LotVerdict{SampleSize: 20, Totals: models.DefectTotals{Critical: 1}, Status: models.LotFailed, PlanUsed: plan91}},
	})
	for _, want := range []string{"PO-1", "PO-2", "Passed", "Failed", "Critical"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderer_DefectTotals(t *testing.T) {
	out := NewRenderer(false).DefectTotals(
		models.DefectTotals{Critical: 1, Major: 2, Minor: 5},
		map[string]models.DefectTotals{"Stitching": {Major: 2, Minor: 1}, "Fabric": {Critical: 1, Minor: 4}},
		[]string{"Fabric", "Stitching"},
	)
	assert.Contains(t, out, "Fabric")
	assert.Contains(t, out, "Stitching")
	assert.Contains(t, out, "Total")
	assert.Less(t, strings.Index(out, "Fabric"), strings.Index(out, "Stitching"))
}

func TestRenderer_StatusColors(t *testing.T) {
	plain := NewRenderer(false)
	assert.Equal(t, "Passed", plain.LotStatus(models.LotPassed))
	assert.Equal(t, "Fail", plain.MeasurementStatus(models.MeasurementFail))
	assert.Equal(t, "Failed", plain.SampleStatus(models.SampleFailed))
}
