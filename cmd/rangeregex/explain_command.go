package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangeregex/rangeregex"
	"github.com/katalvlaran/rangeregex/split"
)

func newExplainCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "explain MIN MAX",
		Short: "List each alternation arm and the integers it covers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, max, err := parseRange(args)
			if err != nil {
				return err
			}

			branches, err := rangeregex.Branches(min, max)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = "plain"
				if isTerminal(cmd.OutOrStdout()) {
					format = "table"
				}
			}
			ctx.log().Debug("explaining range", "min", min, "max", max, "arms", len(branches), "format", format)

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				return writeJSON(cmd, branches)
			case "table":
				_, err = fmt.Fprintln(out, renderBranchTable(branches))
				return err
			case "plain":
				return writeBranchesPlain(out, branches)
			default:
				return fmt.Errorf("unsupported format %q (want table, plain or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: table, plain or json (default table on a terminal, plain otherwise)")

	return cmd
}

func renderBranchTable(branches []rangeregex.Branch) string {
	rows := make([][]string, 0, len(branches))
	for i, b := range branches {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.Sign.String(),
			b.String(),
			formatSpans(b.Spans),
			strconv.FormatInt(countSpans(b.Spans), 10),
		})
	}
	return renderTable(branchColumns, rows)
}

func writeBranchesPlain(w io.Writer, branches []rangeregex.Branch) error {
	for _, b := range branches {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", b.Sign, b.String(), formatSpans(b.Spans)); err != nil {
			return err
		}
	}
	return nil
}

func formatSpans(spans []split.Span) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func countSpans(spans []split.Span) int64 {
	var n int64
	for _, s := range spans {
		n += s.Stop - s.Start + 1
	}
	return n
}
