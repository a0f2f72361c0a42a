// Package main provides the salarymoon command line: the comparison web
// server and a one-shot comparison command.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var logLevel string

var rootCmd = &cobra.Command{
	Use:           "salarymoon",
	Short:         "Compare employee and freelancer net income",
	Long:          "salarymoon compares the net income of a salaried employee with a freelancer working the same province's flat tax rate, and computes the freelance hours needed to break even.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}
