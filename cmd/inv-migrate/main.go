package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	time.Local = time.UTC

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("error running migrate application: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "inv-migrate",
	Short:         "Manage the invoicing database schema",
	SilenceUsage:  true,
	SilenceErrors: true,
	// Without a subcommand every pending migration is applied.
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(statusCmd)
}
