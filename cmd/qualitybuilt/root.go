package main

import (
	"context"
	"fmt"
	"time"

	"qualitybuilt/internal/config"
	"qualitybuilt/internal/nav"
	"qualitybuilt/internal/telemetry"
	"qualitybuilt/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type rootFlags struct {
	view    string
	logFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "qualitybuilt",
		Short:         "Browse the QualityBuilt Construction site in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&flags.view, "view", "", "start view (home, gallery, services, terms, privacy)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write structured logs to this file")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "log at debug level")
	cmd.AddCommand(newViewsCmd())
	return cmd
}

func newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the views accepted by --view",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, v := range nav.Views() {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
		},
	}
}

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("view") {
		cfg.StartView = flags.view
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if flags.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := telemetry.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	provider, err := telemetry.NewOTLPProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create trace provider: %w", err)
	}
	tracer := telemetry.NewTracer(nil)
	if provider != nil {
		tracer = telemetry.NewTracer(provider)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := provider.Shutdown(sctx); err != nil {
				logger.Warn("trace provider shutdown", zap.Error(err))
			}
		}()
	}

	logger.Info("starting",
		zap.Stringer("view", cfg.InitialView()),
		zap.Bool("tracing", provider != nil))

	model := ui.NewAppModel(ui.Options{
		InitialView: cfg.InitialView(),
		Nav:         cfg.NavConfig(),
		Logger:      logger,
		Observer:    tracer,
	}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
