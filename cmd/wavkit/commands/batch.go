// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/config"
)

var (
	batchFile      string
	batchKeepGoing bool
)

// batchManifest is the request file of the batch command.
type batchManifest struct {
	Jobs []batchJob `yaml:"jobs" json:"jobs"`
}

// batchJob is one tone or convert job. Zero fields fall back to the config
// file. For tone jobs sample_rate is the tone rate; for convert jobs it is
// the output rate.
type batchJob struct {
	Name       string  `yaml:"name" json:"name"`
	Type       string  `yaml:"type" json:"type"`
	Input      string  `yaml:"input" json:"input"`
	Output     string  `yaml:"output" json:"output"`
	SampleRate int     `yaml:"sample_rate" json:"sample_rate"`
	Mono       *bool   `yaml:"mono" json:"mono"`
	Encoding   string  `yaml:"encoding" json:"encoding"`
	Frequency  float64 `yaml:"frequency" json:"frequency"`
	Duration   string  `yaml:"duration" json:"duration"`
	Amplitude  float64 `yaml:"amplitude" json:"amplitude"`
	Channels   int     `yaml:"channels" json:"channels"`
}

func (j batchJob) label(i int) string {
	if j.Name != "" {
		return j.Name
	}
	return fmt.Sprintf("job %d", i+1)
}

// resolve makes p relative to the manifest directory.
func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func (j batchJob) options(cfg *config.Config) (wavkit.Options, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return wavkit.Options{}, err
	}

	if j.Encoding != "" {
		if opts.Encoding, err = wavkit.ParseEncoding(j.Encoding); err != nil {
			return wavkit.Options{}, err
		}
	}
	if j.Mono != nil {
		opts.Mono = *j.Mono
	}

	return opts, nil
}

// run executes the job and returns the output path and its size.
func (j batchJob) run(cfg *config.Config, dir string) (string, int, error) {
	output := resolve(dir, j.Output)
	if output == "" {
		return "", 0, fmt.Errorf("output is required")
	}

	opts, err := j.options(cfg)
	if err != nil {
		return "", 0, err
	}

	switch j.Type {
	case "tone":
		tone := cfg.ToneOptions()
		if j.Frequency != 0 {
			tone.Frequency = j.Frequency
		}
		if j.Duration != "" {
			if tone.Duration, err = time.ParseDuration(j.Duration); err != nil {
				return "", 0, fmt.Errorf("invalid duration: %w", err)
			}
		}
		if j.Amplitude != 0 {
			tone.Amplitude = j.Amplitude
		}
		if j.SampleRate != 0 {
			tone.SampleRate = j.SampleRate
		}
		if j.Channels != 0 {
			tone.Channels = j.Channels
		}

		n, err := writeTone(output, tone, opts)
		return output, n, err

	case "convert":
		input := resolve(dir, j.Input)
		if input == "" {
			return "", 0, fmt.Errorf("input is required for convert jobs")
		}
		if j.SampleRate != 0 {
			opts.SampleRate = j.SampleRate
		}

		n, err := convertFile(input, output, opts)
		return output, n, err
	}

	return "", 0, fmt.Errorf("unknown job type %q (want tone or convert)", j.Type)
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run tone and convert jobs from a manifest",
	Long: `Run a list of tone and convert jobs from a YAML or JSON manifest.

Relative paths are resolved against the manifest's directory. Jobs run in
order; the first failure stops the batch unless --keep-going is set.

Example manifest (jobs.yaml):
  jobs:
    - name: beep
      type: tone
      output: out/beep.wav
      frequency: 1000
      duration: 250ms
    - name: prompt
      type: convert
      input: prompt.mp3
      output: out/prompt.wav
      sample_rate: 8000
      mono: true
      encoding: alaw

Example:
  wavkit batch -f jobs.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if batchFile == "" {
			return fmt.Errorf("manifest file is required, use -f flag")
		}

		cfg, err := getConfig()
		if err != nil {
			return err
		}

		var manifest batchManifest
		if err := loadRequest(batchFile, &manifest); err != nil {
			return err
		}
		if len(manifest.Jobs) == 0 {
			return fmt.Errorf("%s: no jobs", batchFile)
		}

		dir := filepath.Dir(batchFile)
		out := cmd.OutOrStdout()

		var errs []error
		for i, job := range manifest.Jobs {
			label := job.label(i)
			slog.Debug("running job", "job", label, "type", job.Type)

			path, n, err := job.run(cfg, dir)
			if err != nil {
				fmt.Fprintf(out, "FAIL  %s: %v\n", label, err)
				errs = append(errs, fmt.Errorf("%s: %w", label, err))
				if !batchKeepGoing {
					break
				}
				continue
			}

			fmt.Fprintf(out, "ok    %s -> %s (%s)\n", label, path, formatBytes(int64(n)))
		}

		fmt.Fprintf(out, "%d jobs, %d failed\n", len(manifest.Jobs), len(errs))
		return errors.Join(errs...)
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "manifest file (YAML or JSON)")
	batchCmd.Flags().BoolVar(&batchKeepGoing, "keep-going", false, "continue after a failed job")

	rootCmd.AddCommand(batchCmd)
}
