package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dennisklein/dfree/internal/blocks"
	"github.com/dennisklein/dfree/internal/size"
)

// addBlockSizeFlag registers the --block-size flag on commands that
// scale their output.
func addBlockSizeFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("block-size", "B", "", "scale sizes by SIZE (e.g. 512, 1K, 1MB)")
}

// resolveBlockSize turns the --block-size flag into a BlockSize,
// falling back to the process default when the flag is unset. The
// default honors POSIXLY_CORRECT: 512 bytes when the variable is
// present (any value, including empty), 1024 bytes otherwise. This is
// the only place the environment is consulted.
func resolveBlockSize(cmd *cobra.Command) (blocks.BlockSize, error) {
	arg, err := cmd.Flags().GetString("block-size")
	if err != nil {
		return blocks.BlockSize{}, err
	}

	if arg != "" {
		return blocks.FromString(arg, size.Parse)
	}

	_, posixStrict := os.LookupEnv("POSIXLY_CORRECT")

	return blocks.Default(posixStrict), nil
}
