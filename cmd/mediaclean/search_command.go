package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mediaclean/internal/metadata/tmdb"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the configured metadata provider for a series",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := ctx.provider()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results, err := provider.Search(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No matches for %q\n", query)
				return nil
			}

			rows := make([][]string, 0, len(results))
			for _, s := range results {
				name := s.Name
				if s.OriginalName != "" && s.OriginalName != s.Name {
					name = fmt.Sprintf("%s (%s)", s.Name, s.OriginalName)
				}
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10),
					name,
					s.FirstAirDate,
				})
			}
			fmt.Fprintln(out, renderTable([]tableColumn{
				{title: "ID", numeric: true},
				{title: "Name"},
				{title: "First aired"},
			}, rows))
			if poster := results[0].PosterURL(tmdb.ImageBaseURL); poster != "" {
				fmt.Fprintf(out, "Top match poster: %s\n", poster)
			}
			fmt.Fprintln(out, "Use 'mediaclean organize --series-id <ID>' to pick a specific match")
			return nil
		},
	}
}
