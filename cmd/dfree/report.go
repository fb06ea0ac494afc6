package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dennisklein/dfree/internal/report"
)

func newReportCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [FILE]",
		Short: "Render a df-style table from a usage snapshot",
		Long: `Reads a usage snapshot from FILE (or stdin when omitted) and renders a
right-aligned df-style table. Each snapshot line holds five fields:

  source total used available target

where total, used and available are byte counts. Blank lines and lines
starting with '#' are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blockSize, err := resolveBlockSize(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()

			if len(args) == 1 {
				f, err := fs.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open snapshot: %w", err)
				}
				defer f.Close() //nolint:errcheck // read-only file

				in = f
			}

			entries, err := report.Parse(in)
			if err != nil {
				return fmt.Errorf("failed to parse snapshot: %w", err)
			}

			return report.Render(cmd.OutOrStdout(), entries, blockSize)
		},
	}

	addBlockSizeFlag(cmd)

	return cmd
}
