package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangeregex/rangeregex"
)

type compileResult struct {
	Min     int32  `json:"min"`
	Max     int32  `json:"max"`
	Pattern string `json:"pattern"`
}

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var (
		anchors bool
		group   bool
		capture string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "compile MIN MAX",
		Short: "Print the regex matching every integer in [MIN, MAX]",
		Example: "  rangeregex compile 0 255\n" +
			"  rangeregex compile --anchors -- -128 127",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, max, err := parseRange(args)
			if err != nil {
				return err
			}

			var opts []rangeregex.Option
			if anchors {
				opts = append(opts, rangeregex.WithAnchors())
			}
			if group {
				opts = append(opts, rangeregex.WithGroup())
			}
			if capture != "" {
				opts = append(opts, rangeregex.WithCapture(capture))
			}

			pattern, err := rangeregex.CompileWith(min, max, opts...)
			if err != nil {
				return err
			}
			ctx.log().Debug("compiled range",
				slog.Int64("min", int64(min)),
				slog.Int64("max", int64(max)),
				slog.Int("length", len(pattern)),
			)

			if asJSON {
				return writeJSON(cmd, compileResult{Min: min, Max: max, Pattern: pattern})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pattern)
			return err
		},
	}

	cmd.Flags().BoolVar(&anchors, "anchors", false, "Wrap the pattern as ^(?:...)$")
	cmd.Flags().BoolVar(&group, "group", false, "Wrap the pattern in a non-capturing group")
	cmd.Flags().StringVar(&capture, "capture", "", "Wrap the pattern in a named capture group")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of the bare pattern")

	return cmd
}
