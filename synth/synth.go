// SPDX-License-Identifier: EPL-2.0

// Package synth generates test signals as audio.Buffers.
package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/ik5/wavkit/audio"
)

// ToneOptions describes a fixed-frequency sine tone.
type ToneOptions struct {
	Frequency  float64 // Hz
	Duration   time.Duration
	Amplitude  float64 // peak, in [0, 1]
	SampleRate int
	Channels   int
}

// DefaultToneOptions is a 440 Hz, one second, half-scale mono tone at 44.1 kHz.
func DefaultToneOptions() ToneOptions {
	return ToneOptions{
		Frequency:  440,
		Duration:   time.Second,
		Amplitude:  0.5,
		SampleRate: 44100,
		Channels:   1,
	}
}

// Validate reports the first option that cannot produce a tone.
func (o ToneOptions) Validate() error {
	if err := checkFormat(o.SampleRate, o.Channels, o.Duration); err != nil {
		return err
	}

	if math.IsNaN(o.Frequency) || o.Frequency <= 0 || o.Frequency > float64(o.SampleRate)/2 {
		return fmt.Errorf("%w: %v Hz at %d Hz sample rate", ErrInvalidFrequency, o.Frequency, o.SampleRate)
	}

	if math.IsNaN(o.Amplitude) || o.Amplitude < 0 || o.Amplitude > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidAmplitude, o.Amplitude)
	}

	return nil
}

func checkFormat(sampleRate, channels int, d time.Duration) error {
	switch {
	case sampleRate < 1:
		return audio.ErrInvalidSampleRate
	case channels < 1:
		return audio.ErrNoChannels
	case d < 0:
		return fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}

	return nil
}

// frameCount truncates d to whole frames at sampleRate.
func frameCount(sampleRate int, d time.Duration) int {
	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}

// Tone renders amplitude * sin(2*pi*f*t) into every channel.
func Tone(opts ToneOptions) (*audio.Buffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	buf := audio.NewBuffer(opts.SampleRate, opts.Channels, frameCount(opts.SampleRate, opts.Duration))

	first := buf.Channels[0]
	step := 2 * math.Pi * opts.Frequency / float64(opts.SampleRate)
	for i := range first {
		first[i] = float32(opts.Amplitude * math.Sin(step*float64(i)))
	}
	for _, ch := range buf.Channels[1:] {
		copy(ch, first)
	}

	return buf, nil
}

// Silence returns a zeroed buffer lasting d.
func Silence(sampleRate, channels int, d time.Duration) (*audio.Buffer, error) {
	if err := checkFormat(sampleRate, channels, d); err != nil {
		return nil, err
	}

	return audio.NewBuffer(sampleRate, channels, frameCount(sampleRate, d)), nil
}
