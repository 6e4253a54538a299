package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/NicabarNimble/go-gitrunner/internal/batch"
	"github.com/NicabarNimble/go-gitrunner/internal/config"
	"github.com/NicabarNimble/go-gitrunner/internal/credentials"
	"github.com/NicabarNimble/go-gitrunner/internal/gitexec"
	"github.com/NicabarNimble/go-gitrunner/internal/logging"
	"github.com/NicabarNimble/go-gitrunner/internal/progress"
)

type runOptions struct {
	file            string
	repo            string
	continueOnError bool
	logFile         string
	quiet           bool
	debug           bool
	timeout         time.Duration
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch of git operations",
		Long: `Run the operations listed in a batch definition file, in order.
Per-item results are printed to stdout as JSON when the batch completes.`,
		Example: `  gitbatch run --file batch.json
  gitbatch run --file batch.json --repo /work/repo --continue-on-error
  gitbatch run --file batch.json --quiet --log-file gitbatch.log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Batch definition file (JSON)")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "Default repository path, overrides the batch file")
	cmd.Flags().BoolVar(&opts.continueOnError, "continue-on-error", false, "Record item failures and keep going")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to a rotating file at this path")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", false, "Suppress progress and stderr logging")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abort the batch after this duration (0 means no limit)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runBatch(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := config.LoadConfig(opts.file)
	if err != nil {
		return err
	}

	// Flags override the batch file
	if opts.repo != "" {
		cfg.RepoPath = opts.repo
		for i := range cfg.Items {
			cfg.Items[i].RepoPath = opts.repo
		}
	}
	if cmd.Flags().Changed("continue-on-error") {
		cfg.ContinueOnError = opts.continueOnError
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}

	logger := logging.New(logging.Options{
		Debug:   opts.debug,
		Quiet:   opts.quiet,
		LogFile: cfg.LogFile,
	})

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	var tracker progress.Tracker = progress.Nop{}
	if !opts.quiet {
		tracker = progress.NewConsoleTracker(cmd.ErrOrStderr())
	}

	dispatcher := &batch.Dispatcher{
		Runner:          &gitexec.Runner{},
		Resolver:        credentials.NewResolver(credentials.NewEnvStore()),
		ContinueOnError: cfg.ContinueOnError,
		Tracker:         tracker,
		Logger:          logger,
	}

	outcomes, err := dispatcher.Run(ctx, cfg.Items)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outcomes); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d items failed", failed, len(outcomes))
	}
	return nil
}
