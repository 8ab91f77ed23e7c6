// flytype is a typing trainer where every character is chosen by flying a
// bird through a field of drifting letter tiles.
//
// Usage:
//
//	flytype                  - Start a session in this terminal
//	flytype play             - Same as above
//	flytype serve            - Start SSH server for remote play
//	flytype defaults         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible runs
//	--config <path>        - Load a YAML or TOML config file
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flytype",
	Short: "flytype - Learn to type by flying",
	Long: `flytype is a terminal typing trainer. Instead of pressing keys you
steer a bird through drifting letter tiles and confirm the one it is
lined up with.

Available commands:
  play      - Start a session in this terminal (default)
  serve     - Start SSH server for remote play
  defaults  - Print the default configuration

Examples:
  flytype
  flytype play --difficulty easy --sound
  flytype serve --ssh :2222
  flytype defaults > ~/.flytype/config.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(defaultsCmd)
}
