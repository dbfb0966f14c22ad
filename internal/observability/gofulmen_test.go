package observability_test

import (
	"testing"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	"github.com/briteline/briteline/internal/observability"
)

func TestLoggerInitialization(t *testing.T) {
	t.Run("CLI logger creation", func(t *testing.T) {
		observability.InitCLILogger("test-service", false)

		if observability.CLILogger == nil {
			t.Fatal("CLI logger should not be nil after initialization")
		}

		observability.CLILogger.Info("Test CLI log message",
			zap.String("test", "value"))
	})

	t.Run("Structured logger creation", func(t *testing.T) {
		observability.InitServerLogger("test-service", "info")

		if observability.ServerLogger == nil {
			t.Fatal("Server logger should not be nil after initialization")
		}

		observability.ServerLogger.Info("Test structured log message",
			zap.String("component", "test"),
			zap.Int("request_id", 123))
	})

	t.Run("Logger with verbose mode", func(t *testing.T) {
		logger, err := logging.NewCLI("verbose-test")
		if err != nil {
			t.Fatalf("Failed to create verbose logger: %v", err)
		}

		logger.SetLevel(logging.DEBUG)
		logger.Debug("Debug message",
			zap.String("mode", "verbose"))
	})

	t.Run("Structured profile with correlation middleware", func(t *testing.T) {
		config := &logging.LoggerConfig{
			Profile:      logging.ProfileStructured,
			DefaultLevel: "INFO",
			Service:      "correlation-test",
			Environment:  "test",
			Middleware: []logging.MiddlewareConfig{
				{
					Name:    "correlation",
					Enabled: true,
					Order:   100,
					Config:  make(map[string]any),
				},
			},
			Sinks: []logging.SinkConfig{
				{
					Type:   "console",
					Format: "json",
					Console: &logging.ConsoleSinkConfig{
						Stream:   "stderr",
						Colorize: false,
					},
				},
			},
		}

		logger, err := logging.New(config)
		if err != nil {
			t.Fatalf("Failed to create structured logger: %v", err)
		}

		logger.Info("Test message with correlation",
			zap.String("feature", "correlation"))
	})
}
