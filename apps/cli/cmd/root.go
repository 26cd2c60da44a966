package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "envokit",
	Short: "Typed calls against envelope-style JSON APIs.",
	Long: `envokit issues requests against APIs that wrap their responses in a
JSON envelope: the payload lives under a "data" field and failures may
carry a numeric "ErrorCode". Results are unwrapped and errors are
normalized into one shape.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(versionCmd)
}
