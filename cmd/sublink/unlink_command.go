package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sublink/internal/logging"
	"sublink/internal/workflow"
)

func newUnlinkCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "unlink DIR...",
		Short: "Remove subtitle links previously created in the given directories",
		Long: `unlink removes the symlinks recorded in the link history for each DIR.
A link is removed only while it still points at the subtitle it was created
for; files or links placed there by something else are left alone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}

			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("link history is disabled (ledger.enabled = false); nothing to unlink")
			}
			defer store.Close()

			lock, err := workflow.AcquireLock(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					logger.Warn("failed to release run lock", logging.Error(err))
				}
			}()

			runner := workflow.New(cfg, logger, workflow.WithDryRun(dryRun))
			reports, err := runner.Unlink(cmd.Context(), store, args)
			if err != nil {
				return err
			}
			if asJSON {
				if reports == nil {
					reports = []workflow.UnlinkReport{}
				}
				return writeJSON(cmd, reports)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderUnlinkReports(reports))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show which links would be removed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}
