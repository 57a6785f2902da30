// trex is a terminal rendition of the chrome offline runner game.
//
// Usage:
//
//	trex play              - Play the runner
//	trex scores            - Show high scores
//	trex serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.trex/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "trex",
	Version: "1.0.0",
	Short:   "T-Rex Runner - the chrome dino game in your terminal",
	Long: `T-Rex Runner is a terminal port of the chrome offline runner:
jump cacti, duck under pterodactyls, and chase your high score.

Available commands:
  play     - Play the runner
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  trex play
  trex play --difficulty hard
  trex scores --interactive
  trex serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trex/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
