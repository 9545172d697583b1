// Package cmd defines the stonkie CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/elewis787/boa"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	tuiUtils "github.com/stonkie/stonkie/internal/tui/utils"
	"github.com/stonkie/stonkie/pkg/api"
	cfg "github.com/stonkie/stonkie/pkg/config"
	"github.com/stonkie/stonkie/pkg/logger"
)

var (
	// cliConfig is the resolved runtime configuration, loaded once before any
	// command runs.
	cliConfig cfg.Config

	// closeLogs flushes the log sink opened during setup.
	closeLogs func() error
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "stonkie",
	Short: "Chat with an analyst about a company's financials",
	Long: `Stonkie is a terminal client for the Stonkie analysis backend. It answers
free-text questions about a stock ticker using the company's public financial
statements, rendered as markdown in your terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Determine if the command is a help command or if the help flag is set.
		isHelpRequested := cmd.Name() == "help" || cmd.Flags().Changed("help")

		if isHelpRequested {
			// Do not silence usage or errors when help is invoked.
			cmd.SilenceUsage = false
			cmd.SilenceErrors = false
		} else {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
		}

		return setupRuntime(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation: print the logo and the styled help.
		fmt.Println()
		if err := tuiUtils.PrintDecoratedText(os.Stdout, "STONKIE"); err != nil {
			log.Debug("logo rendering unavailable", "error", err)
		}
		return cmd.Help()
	},
}

// setupRuntime loads configuration, applies flag overrides and points the
// default logger at the configured sink.
func setupRuntime(cmd *cobra.Command) error {
	loaded, err := cfg.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cliConfig = loaded

	// Command-line flags win over config file and environment.
	flags := cmd.Flags()
	if flags.Changed("backend-url") {
		if v, err := flags.GetString("backend-url"); err == nil {
			cliConfig.BackendURL = v
		}
	}
	if flags.Changed("logs-level") {
		if v, err := flags.GetString("logs-level"); err == nil {
			cliConfig.LogsLevel = v
		}
	}
	if flags.Changed("logs-file") {
		if v, err := flags.GetString("logs-file"); err == nil {
			cliConfig.LogsFile = v
		}
	}

	closer, err := logger.Setup(cliConfig.LogsLevel, cliConfig.LogsFile)
	if err != nil {
		return err
	}
	closeLogs = closer

	return nil
}

// newClient builds the backend client from the resolved configuration.
func newClient() *api.HTTPClient {
	var opts []api.Option
	if cliConfig.RequestTimeout > 0 {
		opts = append(opts, api.WithTimeout(cliConfig.RequestTimeout))
	}
	return api.New(cliConfig.BackendURL, opts...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	// Check if the `help` flag is passed and print a styled logo to the
	// terminal before printing the help.
	err := RootCmd.ParseFlags(os.Args)
	if err != nil && errors.Is(err, pflag.ErrHelp) {
		fmt.Println()
		if err := tuiUtils.PrintDecoratedText(os.Stdout, "STONKIE"); err != nil {
			log.Debug("logo rendering unavailable", "error", err)
		}
	}

	return RootCmd.Execute()
}

// Cleanup releases resources held by the command layer. Safe to call more
// than once; main calls it on both normal exit and signal exit.
func Cleanup() {
	if closeLogs != nil {
		if err := closeLogs(); err != nil {
			log.Debug("closing log sink failed", "error", err)
		}
		closeLogs = nil
	}
}

func init() {
	RootCmd.PersistentFlags().String("backend-url", "",
		"Base URL of the Stonkie backend. Overrides the STONKIE_BACKEND_URL and BACKEND_URL environment variables")
	RootCmd.PersistentFlags().String("logs-level", "",
		"Logs level. Supported log levels are Debug, Info, Warning, Error, Off. If the log level is set to Off, no messages are logged")
	RootCmd.PersistentFlags().String("logs-file", "",
		"The file to write logs to. Logs go to stderr when unset")

	cobra.OnInitialize(initStyles)
}

func initStyles() {
	styles := boa.DefaultStyles()
	b := boa.New(boa.WithStyles(styles))

	RootCmd.SetUsageFunc(b.UsageFunc)
	RootCmd.SetHelpFunc(func(command *cobra.Command, strings []string) {
		b.HelpFunc(command, strings)
	})
}
