package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flytype/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it as
~/.flytype/config.yaml and edit the keys you want to change.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
