package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harrison/garmentqc/internal/display"
	"github.com/harrison/garmentqc/internal/models"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [lot-size]",
		Short: "Show the AQL sampling plan",
		Long: `Show the General Inspection Level II sampling table.

With a lot size, show only the row that lot resolves to. Lots larger than
the table are evaluated against its last row and a warning is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlan,
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	table := s.evaluator.Table()
	if len(args) == 0 {
		rows := table.Rows()
		return s.emit(rows, func() string { return s.render.PlanTable(rows) })
	}

	lotSize, err := parseLotSize(args[0])
	if err != nil {
		return err
	}

	row, err := table.LookupWithPolicy(lotSize, s.evaluator.Policy())
	if err != nil {
		return err
	}
	if table.IsClamped(lotSize) {
		s.warn(display.WarnClampedLot(lotSize, row))
	}
	s.log.LogDebug(fmt.Sprintf("lot size %d resolves to plan %s", lotSize, row.Range()))

	return s.emit(row, func() string { return s.render.PlanTable([]models.SamplingPlanRow{row}) })
}

// parseLotSize parses a lot size argument; range checks belong to the table.
func parseLotSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, models.NewInvalidInput("lotSize", arg, "lot size must be an integer")
	}
	return n, nil
}
