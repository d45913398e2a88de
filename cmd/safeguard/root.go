package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/csheth/safeguard/internal/analyzer"
	"github.com/csheth/safeguard/internal/config"
	"github.com/csheth/safeguard/internal/logging"
	"github.com/csheth/safeguard/internal/tui"
	"github.com/csheth/safeguard/internal/upload"
)

// NewRootCmd creates the root command for SafeGuard.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "safeguard",
		Short: "Email threat analyzer in your terminal",
		Long: `SafeGuard checks an email for suspicious links and hidden content.

Paste the email text or choose an .eml, .msg, .pdf or image file, then run the
analysis to get a URL report, a hidden content check and an overall risk level.

Configuration is read from $XDG_CONFIG_HOME/safeguard/config.yaml, a .env file
and SAFEGUARD_* environment variables. Flags override all of them.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags())
			if err != nil {
				return err
			}
			file, _ := cmd.Flags().GetString("file")
			return run(cmd.Context(), cfg, file)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "path to a YAML config file (default $XDG_CONFIG_HOME/safeguard/config.yaml)")
	flags.String("file", "", "preselect a file to analyze")
	flags.String("drop-dir", "", "watch this folder and select any file dropped into it")
	flags.String("start-dir", "", "directory the file picker opens in (default .)")
	flags.Duration("analysis-delay", 0, "how long an analysis takes (default 3s)")
	flags.String("log-file", "", "write JSON logs here (default $XDG_STATE_HOME/safeguard/safeguard.log)")
	flags.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file and environment, then applies the flags
// the user actually set.
func resolveConfig(flags *pflag.FlagSet) (config.Config, error) {
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("drop-dir") {
		cfg.DropDir, _ = flags.GetString("drop-dir")
	}
	if flags.Changed("start-dir") {
		cfg.StartDir, _ = flags.GetString("start-dir")
	}
	if flags.Changed("analysis-delay") {
		cfg.AnalysisDelay, _ = flags.GetDuration("analysis-delay")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("no-alt-screen") {
		noAlt, _ := flags.GetBool("no-alt-screen")
		cfg.AltScreen = !noAlt
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run mounts the landing page and, when configured, the drop folder watcher.
// Both stop when the program exits.
func run(ctx context.Context, cfg config.Config, filePath string) error {
	logger, err := logging.New(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	uiConfig := tui.Config{
		Detector: analyzer.NewStatic(cfg.AnalysisDelay),
		Logger:   logger,
		StartDir: cfg.StartDir,
	}
	if filePath != "" {
		file, err := upload.Stat(filePath)
		if err != nil {
			return fmt.Errorf("preselect file: %w", err)
		}
		uiConfig.InitialFile = &file
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var drop *upload.DropFolder
	if cfg.DropDir != "" {
		drop, err = upload.WatchDropFolder(cfg.DropDir)
		if err != nil {
			return err
		}
		uiConfig.DropDir = drop.Dir()
		uiConfig.DropFiles = drop.Files()
		uiConfig.DropErrors = drop.Errors()
	}

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.New(uiConfig), opts...)

	logger.Info("starting",
		zap.Duration("analysis_delay", cfg.AnalysisDelay),
		zap.String("drop_dir", cfg.DropDir),
		zap.String("start_dir", cfg.StartDir),
	)

	if drop != nil {
		g.Go(func() error {
			return drop.Run(ctx)
		})
	}
	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("program error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("exited with error", zap.Error(err))
		return err
	}
	logger.Info("stopped")
	return nil
}
