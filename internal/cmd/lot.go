package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/garmentqc/internal/aql"
	"github.com/harrison/garmentqc/internal/display"
	"github.com/harrison/garmentqc/internal/ledger"
	"github.com/harrison/garmentqc/internal/models"
)

// lotReport is the machine-readable result of a lot evaluation.
type lotReport struct {
	Name    string            `json:"name,omitempty" yaml:"name,omitempty"`
	LotSize int               `json:"lotSize" yaml:"lot_size"`
	Verdict models.LotVerdict `json:"verdict" yaml:"verdict"`
}

// Manifest lists the lots of a batch evaluation.
type Manifest struct {
	Lots []ManifestLot `yaml:"lots"`
}

// ManifestLot is one lot of a batch manifest. Relative ledger paths are
// resolved against the manifest's directory.
type ManifestLot struct {
	Name    string `yaml:"name"`
	LotSize int    `yaml:"lot_size"`
	Ledger  string `yaml:"ledger"`
}

// NewLotCommand creates the lot command group
func NewLotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lot",
		Short: "Evaluate shipment lots against the AQL sampling plan",
	}

	cmd.AddCommand(newLotEvaluateCommand())
	cmd.AddCommand(newLotBatchCommand())

	return cmd
}

func newLotEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one lot from its defect ledger",
		Long: `Evaluate one lot from its defect ledger.

Any critical defect fails the lot. Major defects above the plan's limit fail
it. Minor defects above the plan's limit send it to rework.`,
		Example: "  garmentqc lot evaluate --lot-size 120 --ledger po-1042.json",
		Args:    cobra.NoArgs,
		RunE:    runLotEvaluate,
	}

	cmd.Flags().Int("lot-size", 0, "Number of units in the lot (required)")
	cmd.Flags().String("ledger", "", "Path to the lot's ledger file (required)")
	cmd.Flags().String("name", "", "Lot name shown in output")
	cmd.MarkFlagRequired("lot-size")
	cmd.MarkFlagRequired("ledger")

	return cmd
}

func newLotBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Evaluate every lot of a YAML manifest in parallel",
		Example: `  # manifest.yaml
  lots:
    - name: PO-1042
      lot_size: 120
      ledger: ledgers/po-1042.json

  garmentqc lot batch manifest.yaml --concurrency 8`,
		Args: cobra.ExactArgs(1),
		RunE: runLotBatch,
	}

	cmd.Flags().Int("concurrency", -1, "Maximum parallel evaluations (0 = unlimited, -1 = use config)")

	return cmd
}

func runLotEvaluate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	lotSize, _ := cmd.Flags().GetInt("lot-size")
	path, _ := cmd.Flags().GetString("ledger")
	name, _ := cmd.Flags().GetString("name")

	l, err := ledger.LoadFile(path)
	if err != nil {
		return err
	}

	verdict, err := s.evaluator.Evaluate(lotSize, l)
	if err != nil {
		return err
	}
	if s.evaluator.Table().IsClamped(lotSize) {
		s.warn(display.WarnClampedLot(lotSize, verdict.PlanUsed))
	}
	s.log.LogLotVerdict(name, lotSize, verdict)

	report := lotReport{Name: name, LotSize: lotSize, Verdict: verdict}
	return s.emit(report, func() string { return s.render.LotVerdict(name, lotSize, verdict) })
}

func runLotBatch(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	manifestPath := args[0]
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	limit := s.cfg.BatchConcurrency
	if cmd.Flags().Changed("concurrency") {
		limit, _ = cmd.Flags().GetInt("concurrency")
	}

	lots := make([]aql.Lot, 0, len(manifest.Lots))
	for i, ml := range manifest.Lots {
		ledgerPath := ml.Ledger
		if !filepath.IsAbs(ledgerPath) {
			ledgerPath = filepath.Join(filepath.Dir(manifestPath), ledgerPath)
		}
		l, err := ledger.LoadFile(ledgerPath)
		if err != nil {
			return fmt.Errorf("lot %s: %w", manifestLotName(ml, i), err)
		}
		lots = append(lots, aql.Lot{Name: manifestLotName(ml, i), Size: ml.LotSize, Source: l})
	}

	progress := display.NewProgressIndicator(s.errOut, len(lots))
	progress.Start()
	verdicts, err := s.evaluator.EvaluateBatch(cmd.Context(), lots, limit, func(lot aql.Lot, v models.LotVerdict) {
		progress.Step(lot.Name)
	})
	if err != nil {
		progress.Fail(err)
		return err
	}
	progress.Complete()

	reports := make([]lotReport, len(lots))
	lines := make([]display.LotLine, len(lots))
	for i, lot := range lots {
		s.log.LogLotVerdict(lot.Name, lot.Size, verdicts[i])
		if s.evaluator.Table().IsClamped(lot.Size) {
			s.warn(display.WarnClampedLot(lot.Size, verdicts[i].PlanUsed))
		}
		reports[i] = lotReport{Name: lot.Name, LotSize: lot.Size, Verdict: verdicts[i]}
		lines[i] = display.LotLine{Name: lot.Name, LotSize: lot.Size, Verdict: verdicts[i]}
	}

	return s.emit(reports, func() string { return s.render.LotBatch(lines) })
}

// LoadManifest reads a batch manifest. Unknown keys are rejected.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: parse manifest %s: %v", models.ErrInvalidInput, path, err)
	}

	if len(m.Lots) == 0 {
		return nil, models.NewInvalidInput("lots", nil, "manifest lists no lots")
	}
	for i, ml := range m.Lots {
		if ml.Ledger == "" {
			return nil, models.NewInvalidInput("ledger", manifestLotName(ml, i), "every lot needs a ledger path")
		}
	}
	return m, nil
}

func manifestLotName(ml ManifestLot, i int) string {
	if ml.Name != "" {
		return ml.Name
	}
	return fmt.Sprintf("#%d", i+1)
}
