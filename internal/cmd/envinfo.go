package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briteline/briteline/internal/config"
	"github.com/briteline/briteline/internal/observability"
	"github.com/fulmenhq/gofulmen/crucible"
)

var envInfoCmd = &cobra.Command{
	Use:   "envinfo",
	Short: "Display environment information",
	Long:  "Display comprehensive environment, configuration, and version information.",
	Run: func(cmd *cobra.Command, args []string) {
		version := crucible.GetVersion()

		identity := GetAppIdentity()
		observability.CLILogger.Info("=== " + identity.BinaryName + " Environment Information ===")
		observability.CLILogger.Info("")

		// Application Info
		observability.CLILogger.Info("Application:")
		observability.CLILogger.Info("  Name:       " + identity.BinaryName)
		observability.CLILogger.Info("  Version:    " + versionInfo.Version)
		observability.CLILogger.Info("  Commit:     " + versionInfo.Commit)
		observability.CLILogger.Info("  Built:      " + versionInfo.BuildDate)
		observability.CLILogger.Info("")

		// SSOT Info
		observability.CLILogger.Info("SSOT:")
		observability.CLILogger.Info("  Gofulmen:   "+version.Gofulmen, zap.String("gofulmen_version", version.Gofulmen))
		observability.CLILogger.Info("  Crucible:   "+version.Crucible, zap.String("crucible_version", version.Crucible))
		observability.CLILogger.Info("")

		// Runtime Info
		observability.CLILogger.Info("Runtime:")
		observability.CLILogger.Info("  Go Version: "+runtime.Version(), zap.String("go_version", runtime.Version()))
		observability.CLILogger.Info("  GOOS:       "+runtime.GOOS, zap.String("goos", runtime.GOOS))
		observability.CLILogger.Info("  GOARCH:     "+runtime.GOARCH, zap.String("goarch", runtime.GOARCH))
		observability.CLILogger.Info(fmt.Sprintf("  NumCPU:     %d", runtime.NumCPU()), zap.Int("num_cpu", runtime.NumCPU()))
		observability.CLILogger.Info("")

		cfg, err := config.Load(cmd.Context())
		if err != nil {
			observability.CLILogger.Warn("Config load failed", zap.Error(err))
			return
		}

		// Configuration
		observability.CLILogger.Info("Configuration:")
		observability.CLILogger.Info("  Server Host:    "+cfg.Server.Host, zap.String("host", cfg.Server.Host))
		observability.CLILogger.Info(fmt.Sprintf("  Server Port:    %d", cfg.Server.Port), zap.Int("port", cfg.Server.Port))
		observability.CLILogger.Info("  Log Level:      "+cfg.Logging.Level, zap.String("log_level", cfg.Logging.Level))
		observability.CLILogger.Info("  Log Profile:    "+cfg.Logging.Profile, zap.String("log_profile", cfg.Logging.Profile))
		if strings.TrimSpace(cfg.Store.URL) != "" {
			observability.CLILogger.Info("  Store URL:      "+cfg.Store.URL, zap.String("store_url", cfg.Store.URL))
		} else {
			observability.CLILogger.Info("  Store Path:     "+cfg.Store.Path, zap.String("store_path", cfg.Store.Path))
		}
		observability.CLILogger.Info(fmt.Sprintf("  Metrics Port:   %d", cfg.Metrics.Port), zap.Int("metrics_port", cfg.Metrics.Port))
		observability.CLILogger.Info("  Config File:    "+config.DefaultConfigPath(), zap.String("config_file", config.DefaultConfigPath()))
		observability.CLILogger.Info("")

		// Carrier Configuration (endpoint and file locations only, never
		// credential contents)
		observability.CLILogger.Info("Carrier:")
		observability.CLILogger.Info("  Address Endpoint: " + valueOrUnset(cfg.Carrier.AddressEndpoint))
		observability.CLILogger.Info("  Line Endpoint:    " + valueOrUnset(cfg.Carrier.LineEndpoint))
		observability.CLILogger.Info("  Requester ID:     " + valueOrUnset(cfg.Carrier.RequesterID))
		observability.CLILogger.Info("  Cert File:        " + valueOrUnset(cfg.Carrier.CertFile))
		observability.CLILogger.Info("  Key File:         " + valueOrUnset(cfg.Carrier.KeyFile))
		observability.CLILogger.Info("  CA File:          " + valueOrUnset(cfg.Carrier.CAFile))
		observability.CLILogger.Info("  Timeout:          " + cfg.Carrier.Timeout.String())
		observability.CLILogger.Info(fmt.Sprintf("  Allowed Switches: %d configured", len(cfg.Carrier.AllowedSwitches)))
		observability.CLILogger.Info("")

		observability.CLILogger.Info("=== End Environment Information ===")
	},
}

func valueOrUnset(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(unset)"
	}
	return value
}

func init() {
	rootCmd.AddCommand(envInfoCmd)
}
