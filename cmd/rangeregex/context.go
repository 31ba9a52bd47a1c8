package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangeregex/internal/logging"
)

type commandContext struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func (c *commandContext) ensureLogger(cmd *cobra.Command) error {
	if c.logger != nil {
		return nil
	}
	logger, err := logging.New(logging.Options{
		Level:  c.logLevel,
		Format: c.logFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// parseRange reads the MIN and MAX positional arguments as 32-bit integers.
func parseRange(args []string) (int32, int32, error) {
	min, err := parseBound("MIN", args[0])
	if err != nil {
		return 0, 0, err
	}
	max, err := parseBound("MAX", args[1])
	if err != nil {
		return 0, 0, err
	}
	if min > max {
		return 0, 0, fmt.Errorf("MIN %d is greater than MAX %d", min, max)
	}
	return min, max, nil
}

func parseBound(name, value string) (int32, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: want a 32-bit integer", name, value)
	}
	return int32(n), nil
}
