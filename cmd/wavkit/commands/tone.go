// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/wavkit"
)

var toneFlags struct {
	output     string
	frequency  float64
	duration   time.Duration
	amplitude  float64
	rate       int
	channels   int
	encoding   string
	bufferSize int
}

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Write a sine tone as a WAV file",
	Long: `Write a fixed-frequency sine tone as a WAV file.

Unset flags fall back to the "tone" section of the config file, then to
440 Hz, 1s, amplitude 0.5, 44100 Hz mono.

Example:
  wavkit tone -o beep.wav --frequency 1000 --duration 250ms --encoding alaw --rate 8000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if toneFlags.output == "" {
			return fmt.Errorf("output file is required, use -o flag")
		}

		cfg, err := getConfig()
		if err != nil {
			return err
		}

		tone := cfg.ToneOptions()
		flags := cmd.Flags()
		if flags.Changed("frequency") {
			tone.Frequency = toneFlags.frequency
		}
		if flags.Changed("duration") {
			tone.Duration = toneFlags.duration
		}
		if flags.Changed("amplitude") {
			tone.Amplitude = toneFlags.amplitude
		}
		if flags.Changed("rate") {
			tone.SampleRate = toneFlags.rate
		}
		if flags.Changed("channels") {
			tone.Channels = toneFlags.channels
		}

		opts, err := cfg.RenderOptions()
		if err != nil {
			return err
		}
		if flags.Changed("encoding") {
			if opts.Encoding, err = wavkit.ParseEncoding(toneFlags.encoding); err != nil {
				return err
			}
		}
		if flags.Changed("buffer-size") {
			opts.BufferSize = toneFlags.bufferSize
		}

		n, err := writeTone(toneFlags.output, tone, opts)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %v Hz, %v)\n",
			toneFlags.output, formatBytes(int64(n)), tone.Frequency, tone.Duration)
		return nil
	},
}

func init() {
	f := toneCmd.Flags()
	f.StringVarP(&toneFlags.output, "output", "o", "", "output WAV file")
	f.Float64Var(&toneFlags.frequency, "frequency", 440, "tone frequency in Hz")
	f.DurationVar(&toneFlags.duration, "duration", time.Second, "tone length")
	f.Float64Var(&toneFlags.amplitude, "amplitude", 0.5, "peak amplitude in [0, 1]")
	f.IntVar(&toneFlags.rate, "rate", 44100, "sample rate in Hz")
	f.IntVar(&toneFlags.channels, "channels", 1, "channel count")
	f.StringVar(&toneFlags.encoding, "encoding", "", "output encoding: pcm16, alaw or ulaw")
	f.IntVar(&toneFlags.bufferSize, "buffer-size", 0, "pipeline read size in samples")

	rootCmd.AddCommand(toneCmd)
}
