package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkoval/daynight/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to ~/.daynight/config.yaml",
	Long: `Write the default configuration to ~/.daynight/config.yaml so it can
be edited. Fails if the file already exists.`,
	Run: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) {
	path, err := config.WriteDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}
