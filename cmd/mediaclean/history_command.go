package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mediaclean/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recent organize runs, or show one run's operation log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				ops, err := store.Operations(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if len(ops) == 0 {
					fmt.Fprintf(out, "No operations recorded for run %s\n", args[0])
					return nil
				}
				for _, op := range ops {
					switch {
					case op.Detail != "":
						fmt.Fprintf(out, "%s: %s  -->  %s\n", op.Kind, op.Source, op.Detail)
					case op.Target != "":
						fmt.Fprintf(out, "%s: %s  -->  %s\n", op.Kind, op.Source, op.Target)
					default:
						fmt.Fprintf(out, "%s: %s\n", op.Kind, op.Source)
					}
				}
				return nil
			}

			runs, err := store.RecentRuns(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintf(out, "No organize runs recorded yet in %s\n", store.Path())
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.Series,
					run.Mode,
					strconv.Itoa(run.Copied + run.Moved + run.Extracted),
					strconv.Itoa(run.Skipped),
					strconv.Itoa(run.Failed),
				})
			}
			fmt.Fprintln(out, renderTable([]tableColumn{
				{title: "Run"},
				{title: "Started"},
				{title: "Series"},
				{title: "Mode"},
				{title: "Organized", numeric: true},
				{title: "Skipped", numeric: true},
				{title: "Failed", numeric: true},
			}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum number of runs to list")
	return cmd
}
