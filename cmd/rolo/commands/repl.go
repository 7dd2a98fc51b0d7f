package commands

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rolodex/rolodex/pkg/book"
	"github.com/rolodex/rolodex/pkg/config"
	"github.com/rolodex/rolodex/pkg/shell"
	"github.com/rolodex/rolodex/pkg/telemetry"
)

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive assistant session",
		Long: `Start an interactive assistant session.

Reads commands line by line from standard input and prints replies to
standard output until close/exit or end of input. The address book
lives in memory for the duration of the session.`,
		Example: `  # Start a session
  rolo repl

  # Start a session with a custom config file
  rolo repl --config ./rolodex.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context())
		},
	}
}

// runSession builds the session from config and drives the shell loop.
func runSession(ctx context.Context) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := telemetry.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}

	metrics, err := telemetry.NewMetrics(cfg.Metrics)
	if err != nil {
		return err
	}
	if err := metrics.StartServer(logger); err != nil {
		return err
	}

	tracer, err := telemetry.NewTracer(cfg.Tracing, "rolodex", version)
	if err != nil {
		return err
	}

	// The address book is constructed here, once, and threaded through
	// the shell explicitly; there is no package-level session state.
	sh := shell.New(book.NewAddressBook(), shell.Options{
		Prompt:     cfg.Prompt,
		WindowDays: cfg.BirthdayWindowDays,
		Logger:     logger,
		Metrics:    metrics,
		Tracer:     tracer,
	})

	// Apply config edits mid-session when the file exists to watch.
	if _, statErr := os.Stat(path); statErr == nil {
		watcher, werr := config.Watch(path, logger, func(next *config.Config) {
			telemetry.SetLevel(next.Logging.Level)
			sh.ApplyConfig(next)
		})
		if werr != nil {
			logger.WithError(werr).Warn("Config watching disabled")
		} else {
			defer watcher.Close()
		}
	}

	runErr := sh.Run(ctx, os.Stdin, os.Stdout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("Tracer shutdown failed")
	}
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("Metrics shutdown failed")
	}

	return runErr
}
