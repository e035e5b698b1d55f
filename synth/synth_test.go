// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/formats/wav"
)

func TestTone_Shape(t *testing.T) {
	t.Parallel()

	buf, err := Tone(ToneOptions{
		Frequency:  2000,
		Duration:   time.Millisecond,
		Amplitude:  0.5,
		SampleRate: 8000,
		Channels:   2,
	})
	require.NoError(t, err)
	require.NoError(t, buf.Validate())

	assert.Equal(t, 8000, buf.SampleRate)
	assert.Equal(t, 2, buf.NumChannels())
	assert.Equal(t, 8, buf.Frames())

	// a quarter period per sample: 0, +A, 0, -A
	want := []float64{0, 0.5, 0, -0.5, 0, 0.5, 0, -0.5}
	for i, w := range want {
		assert.InDelta(t, w, buf.Channels[0][i], 1e-6, "sample %d", i)
	}
	assert.Equal(t, buf.Channels[0], buf.Channels[1])
}

func TestTone_FrameCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate int
		d    time.Duration
		want int
	}{
		{44100, time.Second, 44100},
		{8000, 500 * time.Millisecond, 4000},
		{44100, 10 * time.Millisecond, 441},
		{16000, 0, 0},
		{8000, 100 * time.Microsecond, 0},
	}

	for _, tt := range tests {
		opts := DefaultToneOptions()
		opts.SampleRate = tt.rate
		opts.Duration = tt.d

		buf, err := Tone(opts)
		require.NoError(t, err)
		assert.Equal(t, tt.want, buf.Frames(), "%d Hz for %v", tt.rate, tt.d)
	}
}

func TestTone_PeakStaysWithinAmplitude(t *testing.T) {
	t.Parallel()

	opts := DefaultToneOptions()
	opts.Amplitude = 1
	buf, err := Tone(opts)
	require.NoError(t, err)

	var peak float64
	for _, s := range buf.Channels[0] {
		peak = math.Max(peak, math.Abs(float64(s)))
	}
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.99)
}

func TestTone_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*ToneOptions)
		want   error
	}{
		{"zero frequency", func(o *ToneOptions) { o.Frequency = 0 }, ErrInvalidFrequency},
		{"negative frequency", func(o *ToneOptions) { o.Frequency = -1 }, ErrInvalidFrequency},
		{"above nyquist", func(o *ToneOptions) { o.Frequency = 30000 }, ErrInvalidFrequency},
		{"nan frequency", func(o *ToneOptions) { o.Frequency = math.NaN() }, ErrInvalidFrequency},
		{"negative duration", func(o *ToneOptions) { o.Duration = -time.Second }, ErrInvalidDuration},
		{"amplitude above one", func(o *ToneOptions) { o.Amplitude = 1.5 }, ErrInvalidAmplitude},
		{"negative amplitude", func(o *ToneOptions) { o.Amplitude = -0.1 }, ErrInvalidAmplitude},
		{"zero sample rate", func(o *ToneOptions) { o.SampleRate = 0 }, audio.ErrInvalidSampleRate},
		{"zero channels", func(o *ToneOptions) { o.Channels = 0 }, audio.ErrNoChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultToneOptions()
			tt.mutate(&opts)

			buf, err := Tone(opts)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, buf)
		})
	}
}

func TestTone_EncodesToExpectedLength(t *testing.T) {
	t.Parallel()

	opts := DefaultToneOptions()
	opts.SampleRate = 8000
	opts.Channels = 2
	opts.Duration = 250 * time.Millisecond

	buf, err := Tone(opts)
	require.NoError(t, err)

	data := wav.Encode(buf)
	assert.Len(t, data, wav.HeaderSize+2000*2*2)
}

func TestSilence(t *testing.T) {
	t.Parallel()

	buf, err := Silence(16000, 2, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1600, buf.Frames())
	assert.Equal(t, 100*time.Millisecond, buf.Duration())

	for _, ch := range buf.Channels {
		for _, s := range ch {
			require.Zero(t, s)
		}
	}

	_, err = Silence(16000, 0, time.Second)
	require.ErrorIs(t, err, audio.ErrNoChannels)

	_, err = Silence(16000, 1, -time.Second)
	require.ErrorIs(t, err, ErrInvalidDuration)
}
