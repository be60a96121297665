package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/garmentqc/internal/ledger"
	"github.com/harrison/garmentqc/internal/models"
)

// defectsReport is the machine-readable form of a ledger summary.
type defectsReport struct {
	Entries    []models.DefectEntry           `json:"entries" yaml:"entries"`
	Categories map[string]models.DefectTotals `json:"categories,omitempty" yaml:"categories,omitempty"`
	Totals     models.DefectTotals            `json:"totals" yaml:"totals"`
}

// NewDefectsCommand creates the defects command group
func NewDefectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defects",
		Short: "Record and total defects in a ledger file",
		Long: `Maintain a defect ledger: per inspection point defect counts by severity.

Ledger files are JSON (default) or YAML (.yaml/.yml). Writes take an
exclusive file lock, so several inspectors can record into the same file.`,
	}

	cmd.PersistentFlags().String("ledger", "", "Path to the ledger file (required)")
	cmd.MarkPersistentFlagRequired("ledger")

	cmd.AddCommand(newDefectsRecordCommand())
	cmd.AddCommand(newDefectsInspectCommand())
	cmd.AddCommand(newDefectsTotalsCommand())

	return cmd
}

func newDefectsRecordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Set the defect count of one severity at an inspection point",
		Example: `  garmentqc defects record --ledger po-1042.json \
    --category Stitching --point "Side seam" --severity major --count 2`,
		Args: cobra.NoArgs,
		RunE: runDefectsRecord,
	}

	cmd.Flags().String("category", "", "Defect category (required)")
	cmd.Flags().String("point", "", "Inspection point (required)")
	cmd.Flags().String("severity", "", "Severity: critical, major, minor (required)")
	cmd.Flags().Int("count", 0, "Number of defects found")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("point")
	cmd.MarkFlagRequired("severity")

	return cmd
}

func newDefectsInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Mark an inspection point as inspected without changing its counts",
		Args:  cobra.NoArgs,
		RunE:  runDefectsInspect,
	}

	cmd.Flags().String("category", "", "Defect category (required)")
	cmd.Flags().String("point", "", "Inspection point (required)")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("point")

	return cmd
}

func newDefectsTotalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show ledger totals by severity",
		Args:  cobra.NoArgs,
		RunE:  runDefectsTotals,
	}

	cmd.Flags().Bool("by-category", false, "Break totals down by category")

	return cmd
}

func runDefectsRecord(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path, _ := cmd.Flags().GetString("ledger")
	category, _ := cmd.Flags().GetString("category")
	point, _ := cmd.Flags().GetString("point")
	severityFlag, _ := cmd.Flags().GetString("severity")
	count, _ := cmd.Flags().GetInt("count")

	severity, err := models.ParseSeverity(severityFlag)
	if err != nil {
		return err
	}

	l, err := ledger.Update(path, s.cfg.LedgerPointField, func(l *ledger.Ledger) error {
		return l.Upsert(category, point, severity, count)
	})
	if err != nil {
		return fmt.Errorf("record defect: %w", err)
	}

	entry, _ := l.Get(category, point)
	s.log.LogInfo(fmt.Sprintf("Recorded %s %s=%d in %s", entry.Key(), severity, count, path))

	return s.emit(entry, func() string {
		return fmt.Sprintf("%s: critical %d, major %d, minor %d\n%s",
			entry.Key(), entry.Critical, entry.Major, entry.Minor, s.render.DefectTotals(l.Totals(), nil, nil))
	})
}

func runDefectsInspect(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path, _ := cmd.Flags().GetString("ledger")
	category, _ := cmd.Flags().GetString("category")
	point, _ := cmd.Flags().GetString("point")

	l, err := ledger.Update(path, s.cfg.LedgerPointField, func(l *ledger.Ledger) error {
		return l.MarkInspected(category, point)
	})
	if err != nil {
		return fmt.Errorf("mark inspected: %w", err)
	}

	entry, _ := l.Get(category, point)
	s.log.LogInfo(fmt.Sprintf("Inspected %s in %s", entry.Key(), path))

	return s.emit(entry, func() string {
		return fmt.Sprintf("%s: critical %d, major %d, minor %d", entry.Key(), entry.Critical, entry.Major, entry.Minor)
	})
}

func runDefectsTotals(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path, _ := cmd.Flags().GetString("ledger")
	byCategory, _ := cmd.Flags().GetBool("by-category")

	l, err := ledger.LoadFile(path)
	if err != nil {
		return err
	}

	report := defectsReport{Entries: l.Entries(), Totals: l.Totals()}
	var categories []string
	if byCategory {
		categories = l.Categories()
		report.Categories = make(map[string]models.DefectTotals, len(categories))
		for _, c := range categories {
			report.Categories[c] = l.CategoryTotals(c)
		}
	}
	s.log.LogDebug(fmt.Sprintf("Loaded %d ledger entries from %s", l.Len(), path))

	return s.emit(report, func() string {
		return s.render.DefectTotals(report.Totals, report.Categories, categories)
	})
}
