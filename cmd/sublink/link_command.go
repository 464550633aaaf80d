package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sublink/internal/logging"
	"sublink/internal/workflow"
)

type linkOptions struct {
	dryRun  bool
	json    bool
	workers int
}

func runLink(cmd *cobra.Command, ctx *commandContext, dirs []string, opts linkOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger(cmd)
	if err != nil {
		return err
	}

	lock, err := workflow.AcquireLock(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	runOpts := []workflow.Option{
		workflow.WithDryRun(opts.dryRun),
		workflow.WithWorkers(opts.workers),
	}
	if !opts.dryRun {
		store, err := ctx.openLedger()
		if err != nil {
			logging.WarnWithContext(logger, "link history unavailable", logging.EventLedgerWriteFailed,
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "delete the ledger database or set ledger.enabled = false"),
				logging.String(logging.FieldImpact, "links are created but not recorded"),
			)
		} else if store != nil {
			defer store.Close()
			runOpts = append(runOpts, workflow.WithRecorder(store))
		}
	}

	runner := workflow.New(cfg, logger, runOpts...)
	summary := runner.Process(cmd.Context(), dirs)

	if opts.json {
		return writeJSON(cmd, summary)
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderSummary(summary, shouldColorize(out)))
	return nil
}
