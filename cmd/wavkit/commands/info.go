// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ik5/wavkit/formats/wav"
)

var infoJSON bool

// infoOutput is the --json shape of wav.Info.
type infoOutput struct {
	File          string   `json:"file"`
	AudioFormat   string   `json:"audio_format"`
	FormatCode    uint16   `json:"format_code"`
	Channels      uint16   `json:"channels"`
	SampleRate    uint32   `json:"sample_rate"`
	ByteRate      uint32   `json:"byte_rate"`
	BlockAlign    uint16   `json:"block_align"`
	BitsPerSample uint16   `json:"bits_per_sample"`
	DataSize      uint32   `json:"data_size"`
	Frames        int      `json:"frames"`
	DurationMS    int64    `json:"duration_ms"`
	Chunks        []string `json:"chunks"`
}

var infoCmd = &cobra.Command{
	Use:   "info <file.wav>",
	Short: "Show the layout of a WAV file",
	Long: `Walk the RIFF chunks of a WAV file and print its format, sizes and
duration without decoding the samples.

Example:
  wavkit info output.wav
  wavkit info output.wav --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := wav.Inspect(f)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		if infoJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(infoOutput{
				File:          path,
				AudioFormat:   wav.AudioFormatName(info.Format.AudioFormat),
				FormatCode:    info.Format.AudioFormat,
				Channels:      info.Format.NumChannels,
				SampleRate:    info.Format.SampleRate,
				ByteRate:      info.Format.ByteRate,
				BlockAlign:    info.Format.BlockAlign,
				BitsPerSample: info.Format.BitsPerSample,
				DataSize:      info.DataSize,
				Frames:        info.Frames,
				DurationMS:    info.Duration.Milliseconds(),
				Chunks:        info.Chunks,
			})
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "File:\t%s\n", path)
		fmt.Fprintf(w, "Format:\t%s (%d)\n", wav.AudioFormatName(info.Format.AudioFormat), info.Format.AudioFormat)
		fmt.Fprintf(w, "Channels:\t%d\n", info.Format.NumChannels)
		fmt.Fprintf(w, "Sample rate:\t%d Hz\n", info.Format.SampleRate)
		fmt.Fprintf(w, "Byte rate:\t%d\n", info.Format.ByteRate)
		fmt.Fprintf(w, "Block align:\t%d\n", info.Format.BlockAlign)
		fmt.Fprintf(w, "Bits per sample:\t%d\n", info.Format.BitsPerSample)
		fmt.Fprintf(w, "Data size:\t%s\n", formatBytes(int64(info.DataSize)))
		fmt.Fprintf(w, "Frames:\t%d\n", info.Frames)
		fmt.Fprintf(w, "Duration:\t%v\n", info.Duration)
		fmt.Fprintf(w, "Chunks:\t%s\n", strings.Join(info.Chunks, ", "))
		return w.Flush()
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(infoCmd)
}
