// simon is the Simon memory game for the terminal.
//
// Usage:
//
//	simon play      - Play a game
//	simon menu      - Title menu with play and history
//	simon scores    - Show game history
//	simon config    - Print or check the configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible sequences
//	--db <path>         - Set database path (default: ~/.simon/history.db)
//	--config <path>     - Custom key binding and layout YAML
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// logger is set up in PersistentPreRunE and shared by every command.
var logger = log.New(os.Stderr)

func main() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command. Cobra skips PersistentPostRun when a
// command fails, so the log file is closed here instead.
func execute(args []string) error {
	defer closeLogger()

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil && logFile != nil {
		logger.Error("command failed", "error", err)
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon - the color memory game in your terminal",
	Long: `Simon plays a growing sequence of colored pads. Repeat it before
the five second deadline runs out; every completed round scores a point.

Available commands:
  play     - Play a game directly
  menu     - Title menu with play and history
  scores   - View game history
  config   - Print or check the configuration

Examples:
  simon play
  simon play --seed 42
  simon menu --config ./my-keys.yaml
  simon scores --recent`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := newLogger(flagLogFile, flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/history.db", "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (empty = discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
