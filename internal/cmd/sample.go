package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/garmentqc/internal/display"
	"github.com/harrison/garmentqc/internal/models"
	"github.com/harrison/garmentqc/internal/tolerance"
)

// sampleReport is the machine-readable result of a sample evaluation.
type sampleReport struct {
	Style   string                         `json:"style,omitempty" yaml:"style,omitempty"`
	Size    string                         `json:"size,omitempty" yaml:"size,omitempty"`
	Pending []string                       `json:"pending,omitempty" yaml:"pending,omitempty"`
	Verdict models.SampleInspectionVerdict `json:"verdict" yaml:"verdict"`
}

// NewSampleCommand creates the sample command group
func NewSampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Check sample garment measurements against spec and tolerance",
	}

	cmd.AddCommand(newSampleEvaluateCommand())
	cmd.AddCommand(newSampleCheckCommand())

	return cmd
}

func newSampleEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate SHEET",
		Short: "Evaluate a measurement sheet (YAML or JSON)",
		Long: `Evaluate every point of measure on a measurement sheet.

A point passes when the actual measurement matches the designer spec, is
within tolerance when the variance is inside the tolerance band, and fails
otherwise. The sample fails if any point fails.

Points without an actual measurement are pending. By default a sheet with
pending points is rejected; --skip-pending evaluates the measured points only.`,
		Example: `  # sheet.yaml
  style: SS25-TEE
  size: M
  points:
    - pom: Chest width
      spec: 52
      tolerance: 1
      actual: 52.5

  garmentqc sample evaluate sheet.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runSampleEvaluate,
	}

	cmd.Flags().Bool("skip-pending", false, "Evaluate measured points and skip pending ones")

	return cmd
}

func newSampleCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Check a single measurement",
		Example: "  garmentqc sample check --spec 100 --actual 100.5 --tolerance 0.5",
		Args:    cobra.NoArgs,
		RunE:    runSampleCheck,
	}

	cmd.Flags().Float64("spec", 0, "Designer measurement (required)")
	cmd.Flags().Float64("actual", 0, "Actual measurement (required)")
	cmd.Flags().Float64("tolerance", 0, "Allowed deviation either side of spec (required)")
	cmd.MarkFlagRequired("spec")
	cmd.MarkFlagRequired("actual")
	cmd.MarkFlagRequired("tolerance")

	return cmd
}

func runSampleEvaluate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open measurement sheet: %w", err)
	}
	defer f.Close()

	sheet, err := tolerance.LoadSheet(f, tolerance.SheetFormatForPath(path))
	if err != nil {
		return err
	}

	skipPending, _ := cmd.Flags().GetBool("skip-pending")
	points := sheet.Points
	pending := tolerance.Pending(points)
	labels := make([]string, 0, len(pending))
	for _, p := range pending {
		labels = append(labels, p.Label())
	}
	if len(pending) > 0 {
		s.warn(display.WarnPendingPoints(labels, skipPending))
		if skipPending {
			points = tolerance.Measured(points)
			if len(points) == 0 {
				return models.NewIncompleteInput("points", "every point is pending")
			}
		}
	}

	verdict, err := tolerance.EvaluateSample(points)
	if err != nil {
		return err
	}

	name := sheet.Style
	if sheet.Size != "" {
		name = fmt.Sprintf("%s/%s", sheet.Style, sheet.Size)
	}
	s.log.LogSampleVerdict(name, verdict)

	report := sampleReport{Style: sheet.Style, Size: sheet.Size, Pending: labels, Verdict: verdict}
	return s.emit(report, func() string { return s.render.SampleVerdict(name, verdict) })
}

func runSampleCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	spec, _ := cmd.Flags().GetFloat64("spec")
	actual, _ := cmd.Flags().GetFloat64("actual")
	tol, _ := cmd.Flags().GetFloat64("tolerance")

	result, err := tolerance.Evaluate(spec, actual, tol)
	if err != nil {
		return err
	}
	s.log.LogDebug(fmt.Sprintf("spec=%g actual=%g tolerance=%g -> %s", spec, actual, tol, result.Status))

	return s.emit(result, func() string {
		return fmt.Sprintf("%s (variance %+.3f)", s.render.MeasurementStatus(result.Status), result.Variance)
	})
}
