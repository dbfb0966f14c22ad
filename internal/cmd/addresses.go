package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briteline/briteline/internal/config"
	"github.com/briteline/briteline/internal/core"
	"github.com/briteline/briteline/internal/observability"
	"github.com/briteline/briteline/internal/output"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses <postcode>",
	Short: "Resolve a postcode to carrier address candidates",
	Long:  "Query the carrier address search for all addresses known at a postcode.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddresses,
}

func init() {
	rootCmd.AddCommand(addressesCmd)

	addressesCmd.Flags().String("output", "table", "Output format: table, json")
}

func runAddresses(cmd *cobra.Command, args []string) error {
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
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	resolver, err := newAddressResolver(cfg.Carrier)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	addresses, err := resolver.Search(ctx, postcode)
	if err != nil {
		return err
	}
	observability.CLILogger.Debug("Address search completed",
		zap.String("postcode", postcode),
		zap.Int("matches", len(addresses)),
		zap.Duration("elapsed", time.Since(startedAt)))

	if addresses == nil {
		addresses = []core.CandidateAddress{}
	}

	formatter := output.NewFormatter(format)
	rendered, err := formatter.FormatAddresses(&output.AddressReport{
		Postcode:  postcode,
		Addresses: addresses,
	})
	if err != nil {
		return err
	}
	if rendered != "" {
		fmt.Println(rendered)
	}
	return nil
}
