package cmd

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	tuiUtils "github.com/stonkie/stonkie/internal/tui/utils"
	"github.com/stonkie/stonkie/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the CLI version",
	Long:    `This command prints the CLI version`,
	Example: "stonkie version",
	Run: func(cmd *cobra.Command, args []string) {
		// Print a styled logo to the terminal.
		fmt.Println()
		if err := tuiUtils.PrintDecoratedText(os.Stdout, "STONKIE"); err != nil {
			log.Debug("logo rendering unavailable", "error", err)
		}

		fmt.Printf("\U0001F4C8 Stonkie %s on %s/%s\n\n", version.Version, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
