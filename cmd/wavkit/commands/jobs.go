// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/formats"
	"github.com/ik5/wavkit/synth"
)

// writeTone synthesizes a tone and saves it as a WAV file at path.
// The tone keeps its own rate and channel count.
func writeTone(path string, tone synth.ToneOptions, opts wavkit.Options) (int, error) {
	buf, err := synth.Tone(tone)
	if err != nil {
		return 0, err
	}

	opts.SampleRate = 0
	opts.Mono = false

	data, err := wavkit.RenderWAV(buf.Source(), opts)
	if err != nil {
		return 0, err
	}

	if err := saveToFile(path, data); err != nil {
		return 0, err
	}

	slog.Debug("tone written",
		"path", path,
		"frequency", tone.Frequency,
		"duration", tone.Duration,
		"encoding", opts.Encoding,
		"bytes", len(data),
	)

	return len(data), nil
}

// convertFile decodes input by extension and saves the rendered WAV at output.
func convertFile(input, output string, opts wavkit.Options) (int, error) {
	src, err := formats.Open(input)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	slog.Debug("decoding",
		"input", input,
		"sample_rate", src.SampleRate(),
		"channels", src.Channels(),
	)

	data, err := wavkit.RenderWAV(src, opts)
	if err != nil {
		return 0, fmt.Errorf("rendering %s: %w", input, err)
	}

	if err := saveToFile(output, data); err != nil {
		return 0, err
	}

	slog.Debug("converted",
		"output", output,
		"sample_rate", opts.SampleRate,
		"mono", opts.Mono,
		"encoding", opts.Encoding,
		"bytes", len(data),
	)

	return len(data), nil
}
