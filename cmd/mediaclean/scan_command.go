package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"mediaclean/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var seasonFlag int

	cmd := &cobra.Command{
		Use:   "scan <folder>",
		Short: "Scan a download tree and show the identified episodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve scan root: %w", err)
			}

			files, err := scanner.New(logger).Scan(cmd.Context(), root)
			if err != nil {
				return err
			}
			if seasonFlag > 0 {
				scanner.OverrideSeason(files, seasonFlag)
			}

			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintln(out, "No video files found")
				return nil
			}

			rows := make([][]string, 0, len(files))
			identified := 0
			for _, f := range files {
				if f.Identified() {
					identified++
				}
				rows = append(rows, []string{
					filepath.Base(f.OriginalPath),
					optionalNumber(f.Season),
					optionalNumber(f.Episode),
					yesNo(f.NeedsExtract),
				})
			}
			fmt.Fprintln(out, renderTable([]tableColumn{
				{title: "File"},
				{title: "Season", numeric: true},
				{title: "Episode", numeric: true},
				{title: "Extract"},
			}, rows))
			fmt.Fprintf(out, "Series guess: %s\n", files[0].SeriesGuess)
			fmt.Fprintf(out, "%d of %d files identified\n", identified, len(files))
			return nil
		},
	}

	cmd.Flags().IntVar(&seasonFlag, "season", 0, "Force this season for every file")
	return cmd
}

func optionalNumber(n *int) string {
	if n == nil {
		return "?"
	}
	return strconv.Itoa(*n)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
