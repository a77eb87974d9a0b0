package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if GetJSONOutput() {
			printJSON(map[string]interface{}{"version": Version})
			return
		}
		fmt.Printf("setupsheets %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
