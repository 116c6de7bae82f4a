package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration YAML. Save it as
~/.simon/configs/simon.yaml (or pass --config) and edit keys or layout.

With --check, validate the file that would be loaded instead.

Examples:
  simon config > ~/.simon/configs/simon.yaml
  simon config --check --config ./my-keys.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagCheck bool

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the effective config and exit")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagCheck {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		return err
	}
	fmt.Printf("Config OK: pads %dx%d, gap %d\n", cfg.Board.PadWidth, cfg.Board.PadHeight, cfg.Board.Gap)
	return nil
}
