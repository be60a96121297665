package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/harrison/garmentqc/internal/models"
)

// Status palette
var (
	colorAccept = lipgloss.Color("#3FB950")
	colorRework = lipgloss.Color("#D29922")
	colorReject = lipgloss.Color("#F85149")
	colorBorder = lipgloss.Color("#444444")
)

// LotLine is one row of a batch report.
type LotLine struct {
	Name    string
	LotSize int
	Verdict models.LotVerdict
}

// Renderer builds text reports. With color disabled every style is plain
// so output is stable for pipes and tests.
type Renderer struct {
	color bool
	title lipgloss.Style
	box   lipgloss.Style
	cell  lipgloss.Style
}

// NewRenderer creates a Renderer.
func NewRenderer(color bool) *Renderer {
	r := &Renderer{
		color: color,
		title: lipgloss.NewStyle().Bold(color),
		box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		cell:  lipgloss.NewStyle().Padding(0, 1),
	}
	if color {
		r.box = r.box.BorderForeground(colorBorder)
	}
	return r
}

func (r *Renderer) paint(text string, c lipgloss.Color) string {
	if !r.color {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(text)
}

// LotStatus renders a lot status in its verdict color.
func (r *Renderer) LotStatus(s models.LotStatus) string {
	switch s {
	case models.LotPassed:
		return r.paint(string(s), colorAccept)
	case models.LotRework:
		return r.paint(string(s), colorRework)
	case models.LotFailed:
		return r.paint(string(s), colorReject)
	}
	return string(s)
}

// SampleStatus renders a sample status in its verdict color.
func (r *Renderer) SampleStatus(s models.SampleStatus) string {
	if s == models.SamplePassed {
		return r.paint(string(s), colorAccept)
	}
	return r.paint(string(s), colorReject)
}

// MeasurementStatus renders a point status in its verdict color.
func (r *Renderer) MeasurementStatus(s models.MeasurementStatus) string {
	switch s {
	case models.MeasurementPass:
		return r.paint(string(s), colorAccept)
	case models.MeasurementWithinTolerance:
		return r.paint(string(s), colorRework)
	case models.MeasurementFail:
		return r.paint(string(s), colorReject)
	}
	return string(s)
}

// LotVerdict renders a single lot verdict as a boxed report.
func (r *Renderer) LotVerdict(name string, lotSize int, v models.LotVerdict) string {
	heading := "Lot"
	if name != "" {
		heading = "Lot " + name
	}
	lines := []string{
		r.title.Render(heading),
		"",
		field("Status", r.LotStatus(v.Status)),
		field("Lot size", strconv.Itoa(lotSize)),
		field("Sample size", strconv.Itoa(v.SampleSize)),
		field("Plan", fmt.Sprintf("%s (major <= %d, minor <= %d)", v.PlanUsed.Range(), v.PlanUsed.MaxMajor, v.PlanUsed.MaxMinor)),
		field("Defects", fmt.Sprintf("critical %d, major %d, minor %d", v.Totals.Critical, v.Totals.Major, v.Totals.Minor)),
	}
	return r.box.Render(strings.Join(lines, "\n"))
}

// SampleVerdict renders a sample verdict with one row per point.
func (r *Renderer) SampleVerdict(name string, v models.SampleInspectionVerdict) string {
	heading := "Sample inspection"
	if name != "" {
		heading = "Sample " + name
	}
	counts := v.StatusCounts()
	header := []string{
		r.title.Render(heading),
		"",
		field("Status", r.SampleStatus(v.Status)),
		field("Points", fmt.Sprintf("%d (%d pass, %d within tolerance, %d fail)",
			len(v.Results), counts[models.MeasurementPass], counts[models.MeasurementWithinTolerance], counts[models.MeasurementFail])),
	}

	rows := make([][]string, 0, len(v.Results))
	for _, res := range v.Results {
		label := res.PointOfMeasure
		if label == "" {
			label = res.PointID
		}
		rows = append(rows, []string{label, fmt.Sprintf("%+.3f", res.Variance), r.MeasurementStatus(res.Status)})
	}

	body := strings.Join(header, "\n")
	if len(rows) > 0 {
		body += "\n\n" + r.grid([]string{"Point", "Variance", "Status"}, rows)
	}
	return r.box.Render(body)
}

// PlanTable renders sampling table rows.
func (r *Renderer) PlanTable(rows []models.SamplingPlanRow) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Range(),
			strconv.Itoa(row.SampleSize),
			strconv.Itoa(row.MaxMajor),
			strconv.Itoa(row.MaxMinor),
		})
	}
	return r.grid([]string{"Lot size", "Sample", "Max major", "Max minor"}, cells)
}

// LotBatch renders one row per evaluated lot.
func (r *Renderer) LotBatch(lines []LotLine) string {
	cells := make([][]string, 0, len(lines))
	for _, l := range lines {
		cells = append(cells, []string{
			l.Name,
			strconv.Itoa(l.LotSize),
			strconv.Itoa(l.Verdict.SampleSize),
			strconv.Itoa(l.Verdict.Totals.Critical),
			strconv.Itoa(l.Verdict.Totals.Major),
			strconv.Itoa(l.Verdict.Totals.Minor),
			r.LotStatus(l.Verdict.Status),
		})
	}
	return r.grid([]string{"Lot", "Size", "Sample", "Critical", "Major", "Minor", "Status"}, cells)
}

// DefectTotals renders ledger totals, optionally broken down by category.
func (r *Renderer) DefectTotals(total models.DefectTotals, byCategory map[string]models.DefectTotals, categories []string) string {
	cells := make([][]string, 0, len(categories)+1)
	for _, c := range categories {
		t := byCategory[c]
		cells = append(cells, totalsRow(c, t))
	}
	cells = append(cells, totalsRow(r.title.Render("Total"), total))
	return r.grid([]string{"Category", "Critical", "Major", "Minor"}, cells)
}

func totalsRow(label string, t models.DefectTotals) []string {
	return []string{label, strconv.Itoa(t.Critical), strconv.Itoa(t.Major), strconv.Itoa(t.Minor)}
}

func (r *Renderer) grid(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style { return r.cell })
	if r.color {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(colorBorder))
	}
	return t.Render()
}

func field(label, value string) string {
	return fmt.Sprintf("%-12s %s", label+":", value)
}
