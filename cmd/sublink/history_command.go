package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"sublink/internal/language"
	"sublink/internal/ledger"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently created subtitle links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Link history is disabled (ledger.enabled = false)")
				return nil
			}
			defer store.Close()

			links, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			if asJSON {
				if links == nil {
					links = []ledger.Link{}
				}
				return writeJSON(cmd, links)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderHistory(links, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of links to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print history as JSON")
	return cmd
}

func renderHistory(links []ledger.Link, now time.Time) string {
	if len(links) == 0 {
		return "No links recorded yet\n"
	}
	columns := []column{
		{header: "ID", align: alignRight},
		{header: "Created"},
		{header: "Language"},
		{header: "Directory", maxWidth: 48},
		{header: "Link"},
		{header: "Source", maxWidth: 40},
	}
	rows := make([][]string, 0, len(links))
	for _, link := range links {
		rows = append(rows, []string{
			fmt.Sprintf("%d", link.ID),
			humanize.RelTime(link.CreatedAt, now, "ago", "from now"),
			fmt.Sprintf("%s (%s/%s)", language.DisplayName(link.Language), link.Language, language.ToISO3(link.Language)),
			displayPath(link.Directory),
			filepath.Base(link.LinkPath),
			relativeSource(link),
		})
	}
	return renderTable(columns, rows) + "\n"
}

// relativeSource shows the subtitle path relative to its directory when possible.
func relativeSource(link ledger.Link) string {
	if link.Directory == "" {
		return displayPath(link.SourcePath)
	}
	rel, err := filepath.Rel(link.Directory, link.SourcePath)
	if err != nil {
		return displayPath(link.SourcePath)
	}
	return rel
}
