// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	convertOutput string
	convertFlags  outputFlags
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert an audio file to WAV",
	Long: `Decode an audio file and write it as WAV.

The input format is picked by extension: .wav/.wave, .aif/.aiff, .mp3,
.ogg/.oga. Unset flags fall back to the "output" section of the config file.

Example:
  wavkit convert input.mp3 -o output.wav --rate 8000 --mono --encoding ulaw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if convertOutput == "" {
			return fmt.Errorf("output file is required, use -o flag")
		}

		cfg, err := getConfig()
		if err != nil {
			return err
		}

		opts, err := convertFlags.options(cmd, cfg)
		if err != nil {
			return err
		}

		n, err := convertFile(args[0], convertOutput, opts)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", convertOutput, formatBytes(int64(n)))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output WAV file")
	convertFlags.register(convertCmd)

	rootCmd.AddCommand(convertCmd)
}
