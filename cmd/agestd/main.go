// Package main provides the CLI entry point for agestd.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the agestd CLI.
var rootCmd = &cobra.Command{
	Use:   "agestd",
	Short: "Convert age-grading standards workbooks to JSON",
	Long: `agestd converts road-running age-grading standards spreadsheets into
normalized JSON documents for downstream age-grading calculators.

Each workbook's factors, seconds, and H:MM:SS sheets are located despite
naming drift across yearly releases, reshaped into age/event tables, and
written as a JSON file next to the source workbook.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./agestd.yaml or ~/.config/agestd/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("agestd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "agestd"))
		}
	}

	viper.SetEnvPrefix("AGESTD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
