package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/dennisklein/dfree/internal/blocks"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format COUNT...",
		Short: "Condense byte counts into magnitude-and-suffix strings",
		Long: `Converts each COUNT (a non-negative decimal byte count) into a short
size string following GNU df conventions, one result per line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFormat,
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		count, err := parseCount(arg)
		if err != nil {
			return err
		}

		formatted, err := blocks.Format(count)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatted); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	return nil
}

// parseCount reads a decimal byte count of up to 128 bits.
func parseCount(arg string) (uint128.Uint128, error) {
	count, ok := new(big.Int).SetString(arg, 10)
	if !ok || count.Sign() < 0 || count.BitLen() > 128 {
		return uint128.Uint128{}, fmt.Errorf("invalid byte count: %q", arg)
	}

	return uint128.FromBig(count), nil
}
