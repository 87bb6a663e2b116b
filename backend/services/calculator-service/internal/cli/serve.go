package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chargecalc/backend/libs/logging"
	"chargecalc/backend/services/calculator-service/internal/app"
	"chargecalc/backend/services/calculator-service/internal/config"
)

const serviceName = "calculator-service"

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the calculator web service",
		Long: `Start the HTTP server with the calculator form, the JSON API and live estimates.

Configuration comes from CONFIG_FILE (YAML), .env and CALCULATOR_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(serviceName)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync() // best-effort flush

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("application stopped with error", zap.Error(err))
		return err
	}
	return nil
}
