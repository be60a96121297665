package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for garmentqc
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "garmentqc",
		Short: "Quality decision engine for garment inspection",
		Long: `garmentqc turns inspection data into quality verdicts.

It evaluates shipment lots against the AQL General Inspection Level II
sampling plan (Passed, Rework or Failed) and checks sample garment
measurements against the designer's spec and tolerance.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: $GARMENTQC_HOME/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format: text, json, yaml")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("lot-size-policy", "", "Handling of lots of size 0 and 1: reject, clamp")

	cmd.AddCommand(NewPlanCommand())
	cmd.AddCommand(NewDefectsCommand())
	cmd.AddCommand(NewLotCommand())
	cmd.AddCommand(NewSampleCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}
