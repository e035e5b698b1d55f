// SPDX-License-Identifier: EPL-2.0

// Package config loads wavkit defaults from a YAML file.
//
//	output:
//	  sample_rate: 8000   # 0 keeps the source rate
//	  mono: true
//	  encoding: ulaw      # pcm16 | alaw | ulaw
//	  buffer_size: 4096
//	tone:
//	  frequency: 440
//	  duration: 1s
//	  amplitude: 0.5
//	  sample_rate: 44100
//	  channels: 1
//
// Keys that are left out keep their Default value. Unknown keys are
// rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/synth"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Output Output `yaml:"output"`
	Tone   Tone   `yaml:"tone"`
}

// Output holds the rendering defaults shared by every command.
type Output struct {
	SampleRate int    `yaml:"sample_rate"`
	Mono       bool   `yaml:"mono"`
	Encoding   string `yaml:"encoding"`
	BufferSize int    `yaml:"buffer_size"`
}

// Tone holds the defaults of the tone command.
type Tone struct {
	Frequency  float64       `yaml:"frequency"`
	Duration   time.Duration `yaml:"duration"`
	Amplitude  float64       `yaml:"amplitude"`
	SampleRate int           `yaml:"sample_rate"`
	Channels   int           `yaml:"channels"`
}

func Default() *Config {
	t := synth.DefaultToneOptions()

	return &Config{
		Output: Output{
			Encoding:   string(wavkit.EncodingPCM16),
			BufferSize: wavkit.DefaultBufferSize,
		},
		Tone: Tone{
			Frequency:  t.Frequency,
			Duration:   t.Duration,
			Amplitude:  t.Amplitude,
			SampleRate: t.SampleRate,
			Channels:   t.Channels,
		},
	}
}

// Load reads and validates the file at path. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Output.SampleRate < 0 {
		return fmt.Errorf("%w: output.sample_rate %d", ErrInvalidConfig, c.Output.SampleRate)
	}
	if c.Output.BufferSize < 0 {
		return fmt.Errorf("%w: output.buffer_size %d", ErrInvalidConfig, c.Output.BufferSize)
	}
	if _, err := wavkit.ParseEncoding(c.Output.Encoding); err != nil {
		return fmt.Errorf("%w: output.encoding: %w", ErrInvalidConfig, err)
	}
	if err := c.ToneOptions().Validate(); err != nil {
		return fmt.Errorf("%w: tone: %w", ErrInvalidConfig, err)
	}

	return nil
}

// RenderOptions converts the output section for wavkit.Render.
func (c *Config) RenderOptions() (wavkit.Options, error) {
	enc, err := wavkit.ParseEncoding(c.Output.Encoding)
	if err != nil {
		return wavkit.Options{}, err
	}

	return wavkit.Options{
		SampleRate: c.Output.SampleRate,
		Mono:       c.Output.Mono,
		Encoding:   enc,
		BufferSize: c.Output.BufferSize,
	}, nil
}

func (c *Config) ToneOptions() synth.ToneOptions {
	return synth.ToneOptions{
		Frequency:  c.Tone.Frequency,
		Duration:   c.Tone.Duration,
		Amplitude:  c.Tone.Amplitude,
		SampleRate: c.Tone.SampleRate,
		Channels:   c.Tone.Channels,
	}
}
