// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/wavkit/config"
)

var (
	// Global flags
	verbose bool
	cfgFile string

	globalConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wavkit",
	Short: "Render audio into WAV files",
	Long: `wavkit - decode, resample, downmix and encode audio as WAV.

Output is 16-bit PCM by default, or G.711 A-law / µ-law with --encoding.
Defaults for every command can be kept in a YAML file passed with --config:

  output:
    sample_rate: 8000
    mono: true
    encoding: ulaw
  tone:
    frequency: 1000
    duration: 2s

Examples:
  wavkit tone -o beep.wav --frequency 1000 --duration 500ms
  wavkit convert input.mp3 -o output.wav --rate 8000 --mono
  wavkit info output.wav
  wavkit batch -f jobs.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initLogging() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// getConfig loads the --config file once; without one it returns defaults.
func getConfig() (*config.Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config not available: %w", err)
	}
	slog.Debug("config loaded", "path", cfgFile)

	globalConfig = cfg
	return cfg, nil
}
