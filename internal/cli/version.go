package cli

import (
	"github.com/spf13/cobra"

	"github.com/attestra/attestra-go/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(buildinfo.GetBuildInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
