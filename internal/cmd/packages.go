package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/briteline/briteline/internal/output"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List the active package catalog",
	RunE:  runPackages,
}

func init() {
	rootCmd.AddCommand(packagesCmd)

	packagesCmd.Flags().String("output", "table", "Output format: table, json")
}

func runPackages(cmd *cobra.Command, args []string) error {
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

	packages, err := db.ListActivePackages(ctx)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format)
	rendered, err := formatter.FormatPackages(&output.PackageReport{Packages: packages})
	if err != nil {
		return err
	}
	if rendered != "" {
		fmt.Println(rendered)
	}
	return nil
}
