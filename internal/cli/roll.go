package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RollOptions contains the configuration for the roll command.
type RollOptions struct {
	GlobalOptions
	Sides []int
	Rolls int
	Seed  *uint64
	JSON  bool
}

// RunRoll throws the dice and prints one total per line.
func RunRoll(ctx context.Context, w io.Writer, opts RollOptions) error {
	cfg, logger, err := setup(opts.GlobalOptions)
	if err != nil {
		return err
	}

	engine, closeStore, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	roll, err := engine.Roll(ctx, opts.Sides, opts.Rolls, opts.Seed)
	if err != nil {
		return fmt.Errorf("roll failed: %w", err)
	}

	if opts.JSON {
		return writeJSON(w, roll)
	}

	var b strings.Builder
	for _, total := range roll.Totals {
		b.WriteString(strconv.Itoa(total))
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())
	return err
}
