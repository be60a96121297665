package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/garmentqc/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related items such as lots or points (optional)
	ItemLabel  string   // Singular noun for Items, defaults to "item"
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Items) > 0 {
		label := w.ItemLabel
		if label == "" {
			label = "item"
		}
		if len(w.Items) == 1 {
			fmt.Fprintf(&b, "    Affected %s:\n", label)
		} else {
			fmt.Fprintf(&b, "    Affected %ss:\n", label)
		}
		for i, item := range w.Items {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, item)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	color.New(color.FgYellow).Fprint(out, b.String())
}

// WarnClampedLot warns that a lot fell outside the sampling table and was
// evaluated against the boundary row.
func WarnClampedLot(lotSize int, plan models.SamplingPlanRow) Warning {
	return Warning{
		Title:      fmt.Sprintf("Lot size %d is outside the sampling table", lotSize),
		Message:    fmt.Sprintf("Evaluated against the %s row (sample %d).", plan.Range(), plan.SampleSize),
		Suggestion: "Split the lot or extend the sampling table if a stricter plan applies.",
	}
}

// WarnPendingPoints warns that some points of measure have no actual value
// yet. skipped reports whether the evaluation went ahead without them.
func WarnPendingPoints(labels []string, skipped bool) Warning {
	w := Warning{
		Title:     "Measurements pending",
		Items:     labels,
		ItemLabel: "point",
	}
	if skipped {
		w.Message = "These points were skipped and are not part of the verdict."
		w.Suggestion = "Record the missing measurements and re-run the evaluation."
	} else {
		w.Message = "The sheet cannot be evaluated until every point is measured."
		w.Suggestion = "Record the missing measurements, or pass --skip-pending to evaluate the measured points only."
	}
	return w
}
