package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ferris-dodger/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search
order and the difficulty preset are applied. Redirect it to a file to
start a custom config.

Search order:
  1. --config path
  2. ~/.dodger/configs/dodger.yaml
  3. ./configs/dodger.yaml
  4. Built-in defaults

Examples:
  dodger config
  dodger config --difficulty hard > ~/.dodger/configs/dodger.yaml
  dodger config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file verbatim")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
