package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangeregex/verify"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var (
		samples int
		seed    int64
		pattern string
	)

	cmd := &cobra.Command{
		Use:   "verify MIN MAX",
		Short: "Check the compiled pattern against sampled integers",
		Long: "Verify matches the anchored pattern for [MIN, MAX] against both bounds, their\n" +
			"neighbours, the 32-bit extremes and seeded random values. Use --pattern to\n" +
			"check a pattern produced elsewhere instead.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, max, err := parseRange(args)
			if err != nil {
				return err
			}

			opts := []verify.Option{
				verify.WithSamples(samples),
				verify.WithSeed(seed),
				verify.WithLogger(ctx.log()),
			}
			if pattern != "" {
				opts = append(opts, verify.WithPattern(pattern))
			}

			rep, err := verify.Check(min, max, opts...)
			if rep.Samples == 0 {
				return err
			}

			out := cmd.OutOrStdout()
			if rep.OK() {
				_, werr := fmt.Fprintf(out, "ok: %d samples agree with %s\n", rep.Samples, rep.Pattern)
				return werr
			}

			rows := make([][]string, 0, len(rep.Mismatches))
			for _, m := range rep.Mismatches {
				rows = append(rows, []string{
					strconv.FormatInt(m.Value, 10),
					strconv.FormatBool(m.Want),
					strconv.FormatBool(m.Matched),
				})
			}
			_, werr := fmt.Fprintln(out, renderTable(mismatchColumns, rows))
			return errors.Join(err, werr)
		},
	}

	cmd.Flags().IntVar(&samples, "samples", verify.DefaultSamples, "Number of random samples")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Verify this pattern instead of the compiled one")

	return cmd
}
