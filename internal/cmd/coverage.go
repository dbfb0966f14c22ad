package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/briteline/briteline/internal/core"
	"github.com/briteline/briteline/internal/core/coverage"
	"github.com/briteline/briteline/internal/output"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage <postcode>",
	Short: "Look up a postcode in the coverage registry",
	Long: `Look up a postcode against the locally managed coverage registry.

Matching walks postcode prefixes from most to least specific, so a registry
entry for a district covers every postcode inside it unless a more specific
entry exists.`,
	Args: cobra.ExactArgs(1),
	RunE: runCoverage,
}

func init() {
	rootCmd.AddCommand(coverageCmd)

	coverageCmd.Flags().String("output", "table", "Output format: table, json")
}

func runCoverage(cmd *cobra.Command, args []string) error {
	postcode := core.NormalizePostcode(args[0])
	if postcode == "" {
		return errors.New("postcode is required")
	}

	formatValue, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(formatValue)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck // best-effort cleanup

	matcher := &coverage.Matcher{Store: db}
	match, err := matcher.Lookup(ctx, postcode)
	if err != nil {
		return err
	}

	report := &output.CoverageReport{Postcode: postcode}
	if match != nil {
		report.Available = true
		report.AreaName = match.Area.Name
		report.Packages = match.Packages
	}

	formatter := output.NewFormatter(format)
	rendered, err := formatter.FormatCoverage(report)
	if err != nil {
		return err
	}
	if rendered != "" {
		fmt.Println(rendered)
	}
	return nil
}
