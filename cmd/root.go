// Package cmd implements the roomie CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "🏠"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "roomie",
	Short: logo + " roomie — GroupMe household assistant",
	Long:  logo + " roomie — an AI assistant for your apartment's group chat",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}
