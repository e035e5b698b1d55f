// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/config"
)

// loadRequest loads a request from a YAML or JSON file
func loadRequest(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, v); err != nil {
			if err := json.Unmarshal(data, v); err != nil {
				return fmt.Errorf("failed to parse file (tried YAML and JSON): %w", err)
			}
		}
	}

	return nil
}

// saveToFile writes data to path, creating parent directories.
func saveToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// formatBytes formats bytes to human readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// outputFlags are shared by every command that writes a WAV file.
type outputFlags struct {
	rate       int
	mono       bool
	encoding   string
	bufferSize int
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rate, "rate", 0, "output sample rate in Hz (0 keeps the source rate)")
	cmd.Flags().BoolVar(&f.mono, "mono", false, "downmix to one channel")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "output encoding: pcm16, alaw or ulaw")
	cmd.Flags().IntVar(&f.bufferSize, "buffer-size", 0, "pipeline read size in samples")
}

// options starts from the config file and applies the flags the user set.
func (f *outputFlags) options(cmd *cobra.Command, cfg *config.Config) (wavkit.Options, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return wavkit.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("rate") {
		opts.SampleRate = f.rate
	}
	if flags.Changed("mono") {
		opts.Mono = f.mono
	}
	if flags.Changed("encoding") {
		enc, err := wavkit.ParseEncoding(f.encoding)
		if err != nil {
			return wavkit.Options{}, err
		}
		opts.Encoding = enc
	}
	if flags.Changed("buffer-size") {
		opts.BufferSize = f.bufferSize
	}

	return opts, nil
}
