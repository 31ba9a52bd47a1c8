package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangeregex/rangeregex"
)

// batchFile is the TOML input of the batch command:
//
//	[[range]]
//	name = "octet"
//	min = 0
//	max = 255
//	anchors = true
type batchFile struct {
	Ranges []batchRange `toml:"range"`
}

type batchRange struct {
	Name    string `toml:"name"`
	Min     int32  `toml:"min"`
	Max     int32  `toml:"max"`
	Anchors bool   `toml:"anchors"`
}

type batchResult struct {
	Name    string `json:"name" toml:"name"`
	Min     int32  `json:"min" toml:"min"`
	Max     int32  `json:"max" toml:"max"`
	Pattern string `json:"pattern" toml:"pattern"`
}

type batchOutput struct {
	Results []batchResult `toml:"result"`
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Compile every [[range]] listed in a TOML file (\"-\" reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := readBatchFile(cmd, args[0])
			if err != nil {
				return err
			}

			results, err := compileBatch(ranges)
			if err != nil {
				return err
			}
			ctx.log().Info("batch compiled", "file", args[0], "ranges", len(results))

			out := cmd.OutOrStdout()
			switch strings.ToLower(output) {
			case "text":
				for _, r := range results {
					if _, err := fmt.Fprintf(out, "%s\t%s\n", r.Name, r.Pattern); err != nil {
						return err
					}
				}
				return nil
			case "json":
				return writeJSON(cmd, results)
			case "toml":
				return toml.NewEncoder(out).Encode(batchOutput{Results: results})
			default:
				return fmt.Errorf("unsupported output %q (want text, json or toml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or toml")

	return cmd
}

func readBatchFile(cmd *cobra.Command, path string) ([]batchRange, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open batch file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var file batchFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	if len(file.Ranges) == 0 {
		return nil, fmt.Errorf("batch file %s lists no [[range]] entries", path)
	}
	return file.Ranges, nil
}

func compileBatch(ranges []batchRange) ([]batchResult, error) {
	results := make([]batchResult, 0, len(ranges))
	for i, r := range ranges {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("range-%d", i+1)
		}

		var opts []rangeregex.Option
		if r.Anchors {
			opts = append(opts, rangeregex.WithAnchors())
		}
		pattern, err := rangeregex.CompileWith(r.Min, r.Max, opts...)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", name, err)
		}
		results = append(results, batchResult{Name: name, Min: r.Min, Max: r.Max, Pattern: pattern})
	}
	return results, nil
}
