// wavectl is the operator CLI for the wave orchestrator: pre-flight
// validation and config locking, the workflow gate locker, the RLM context
// auditor, and the QA merge watcher.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errUsage marks bad flag combinations so Execute can exit 2 instead of 1.
var errUsage = errors.New("usage error")

var rootCmd = &cobra.Command{
	Use:          "wavectl",
	Short:        "Operator tooling for the wave orchestrator",
	SilenceUsage: true,
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", errUsage, err)
	})
	rootCmd.AddCommand(preflightCmd)
	rootCmd.AddCommand(lockerCmd)
	rootCmd.AddCommand(rlmAuditCmd)
	rootCmd.AddCommand(mergeWatcherCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
