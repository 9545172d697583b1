package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/stonkie/stonkie/cmd"
	errUtils "github.com/stonkie/stonkie/errors"
)

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Clean up resources before exit.
		cmd.Cleanup()
		// Exit with correct POSIX exit code (128 + signal number).
		// Use errUtils.OsExit to allow test interception (Go 1.25+ panics on os.Exit in tests).
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		// Fallback to SIGINT exit code if signal type assertion fails.
		errUtils.OsExit(130)
	}()

	// Run the application and exit with the appropriate code.
	// Use errUtils.OsExit to allow test interception (Go 1.25+ panics on os.Exit in tests).
	errUtils.OsExit(run())
}

// run executes the main application logic and returns an exit code.
// This separation allows proper cleanup via defer before os.Exit in main().
func run() int {
	// Ensure cleanup happens on normal exit.
	defer cmd.Cleanup()

	err := cmd.Execute()
	if err != nil {
		// Format and print error using centralized formatter.
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")

		// Extract and use the correct exit code.
		return errUtils.GetExitCode(err)
	}

	return 0
}
