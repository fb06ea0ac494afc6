package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dfree",
	Short: "Render disk space usage reports with GNU df size conventions",
	Long: `dfree condenses byte counts into short magnitude-and-suffix strings
("1K", "1.1MB", "999B") and renders df-style usage tables from usage
snapshots supplied by other tools.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newReportCmd(afero.NewOsFs()))
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	Execute()
}
