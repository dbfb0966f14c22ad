package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briteline/briteline/internal/core/store"
	"github.com/briteline/briteline/internal/observability"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Seed the coverage registry and package catalog",
	Long: `Seed the local store from a YAML document describing catalog packages,
coverage areas, and the packages offered in each area.

Seeding is idempotent: packages and areas are matched by name and updated in
place, and area package links are replaced wholesale.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	doc, err := store.ParseSeedDocument(data)
	if err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck // best-effort cleanup

	if err := db.Seed(ctx, doc); err != nil {
		return err
	}

	observability.CLILogger.Info("Seed applied",
		zap.String("file", args[0]),
		zap.Int("packages", len(doc.Packages)),
		zap.Int("areas", len(doc.Areas)))
	return nil
}
