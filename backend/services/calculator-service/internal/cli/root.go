package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand assembles the calculator-service command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "calculator-service",
		Short: "EV charge calculator",
		Long: `calculator-service estimates EV charging time, charging cost and the
environmental impact of a charge, either as a web service or from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand())
	root.AddCommand(newEstimateCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
