// Command resumectl scores resume documents from the command line without
// running the API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Resume analysis and scoring",
		Long:          "resumectl analyzes structured resume JSON against a keyword taxonomy and prints scores, recommendations and export optimizations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newOptimizeCmd(), newTaxonomyCmd())
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
