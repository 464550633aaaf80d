package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbose bool
	var opts linkOptions

	ctx := newCommandContext(&configFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:   "sublink DIR...",
		Short: "Symlink external subtitles next to videos for media-server discovery",
		Long: `sublink looks at the videos directly inside each DIR, finds subtitle files
anywhere below it named <number>_<language>.<ext>, and creates one symlink per
video and language named <video>.<code>.<ext>, e.g. "Movie (2010).en.srt".

Several versions of one film ("Movie (2010) - Director's Cut.mkv") or several
episodes (SxxEyy) each get their own links. Directories whose videos cannot be
grouped are skipped and logged.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLink(cmd, ctx, args, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Show what would be linked without creating anything")
	rootCmd.Flags().BoolVar(&opts.json, "json", false, "Print the run summary as JSON")
	rootCmd.Flags().IntVar(&opts.workers, "workers", 0, "Directories processed concurrently (overrides workflow.workers)")

	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newUnlinkCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
