package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/training/internal/config"
	"example.com/training/internal/domain"
	"example.com/training/internal/observability"
	"example.com/training/internal/pipeline"
	"example.com/training/pkg/log"
)

func main() {
	command := NewTrainingCommand(pipeline.DefaultPackages())
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "training: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	logLevel string
	locale   string
	metrics  bool
}

// NewTrainingCommand builds the root command reporting the given packages.
func NewTrainingCommand(packages []pipeline.Package) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "training",
		Short:         "training prints distance, speed and calories for recorded workouts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("reading configuration: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("locale") {
				cfg.Locale = opts.locale
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Metrics = opts.metrics
			}
			return run(cmd, cfg, packages)
		},
	}
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.locale, "locale", "en", "Summary label language (en, ru)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Dump collected metrics to stderr after the run")

	cmd.AddCommand(newCodesCommand())
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config, packages []pipeline.Package) error {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logger := log.InitLog(lvl, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	locale, err := domain.ParseLocale(cfg.Locale)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	processor := pipeline.NewProcessor(
		pipeline.NewSliceSource(packages),
		pipeline.NewPrintHandler(cmd.OutOrStdout(), locale),
		pipeline.WithLogger(logger.Named("pipeline")),
		pipeline.WithMetrics(metrics),
	)
	_, runErr := processor.Run()

	if cfg.Metrics {
		if err := observability.WriteText(cmd.ErrOrStderr(), reg); err != nil {
			logger.Warn("failed to dump metrics", zap.Error(err))
		}
	}
	return runErr
}

func newCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the recognised workout codes and their value counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range domain.Codes() {
				arity, _ := domain.Arity(code)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", code, arity); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
