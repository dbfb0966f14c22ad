package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briteline/briteline/internal/config"
	"github.com/briteline/briteline/internal/core"
	"github.com/briteline/briteline/internal/core/catalog"
	"github.com/briteline/briteline/internal/observability"
	"github.com/briteline/briteline/internal/output"
)

var availabilityCmd = &cobra.Command{
	Use:   "availability <ref> <district>",
	Short: "Check line availability for an address reference",
	Long: `Check which technologies the carrier can provision on a line.

The reference number and district code come from an earlier address search.
A line whose serving switch is not on the configured allow-list reports no
service regardless of what the carrier says about individual technologies.`,
	Args: cobra.ExactArgs(2),
	RunE: runAvailability,
}

func init() {
	rootCmd.AddCommand(availabilityCmd)

	availabilityCmd.Flags().String("output", "table", "Output format: table, json")
	availabilityCmd.Flags().Bool("packages", false, "Include offerable catalog packages")
}

func runAvailability(cmd *cobra.Command, args []string) error {
	ref := core.LineReference{RefNum: args[0], DistrictCode: args[1]}
	if !ref.Valid() {
		return errors.New("reference number and district code are required")
	}

	formatValue, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(formatValue)
	if err != nil {
		return err
	}
	withPackages, err := cmd.Flags().GetBool("packages")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	resolver, err := newLineResolver(cfg.Carrier)
	if err != nil {
		return err
	}

	result, err := resolver.Check(ctx, ref)
	if err != nil {
		return err
	}
	observability.CLILogger.Debug("Line check completed",
		zap.String("ref", ref.RefNum),
		zap.Bool("has_service", result.Availability.HasService))

	report := &output.AvailabilityReport{
		Reference:    ref,
		HasService:   result.Availability.HasService,
		Availability: result.Availability,
		Technologies: result.Offerable.Sorted(),
	}

	if withPackages {
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup

		filter := &catalog.Filter{Store: db}
		packages, err := filter.Offerable(ctx, result.Offerable)
		if err != nil {
			return err
		}
		report.Packages = packages
	}

	formatter := output.NewFormatter(format)
	rendered, err := formatter.FormatAvailability(report)
	if err != nil {
		return err
	}
	if rendered != "" {
		fmt.Println(rendered)
	}
	return nil
}
