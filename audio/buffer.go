// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is fully decoded audio held in memory: one slice of normalized
// samples per channel, all sharing SampleRate.
//
// Every channel is expected to hold the same number of frames. Consumers
// that are not handed a validated buffer treat samples missing from a short
// channel as silence.
type Buffer struct {
	SampleRate int
	Channels   [][]float32
}

// NewBuffer allocates a silent buffer.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	b := &Buffer{
		SampleRate: sampleRate,
		Channels:   make([][]float32, channels),
	}
	for c := range b.Channels {
		b.Channels[c] = make([]float32, frames)
	}

	return b
}

func (b *Buffer) NumChannels() int { return len(b.Channels) }

// Frames is the number of samples per channel, taken from the first channel.
func (b *Buffer) Frames() int {
	if len(b.Channels) == 0 {
		return 0
	}

	return len(b.Channels[0])
}

func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// Validate checks the buffer invariants: a positive sample rate, at least
// one channel, and equal channel lengths.
func (b *Buffer) Validate() error {
	if b.SampleRate < 1 {
		return ErrInvalidSampleRate
	}

	if len(b.Channels) == 0 {
		return ErrNoChannels
	}

	frames := len(b.Channels[0])
	for c, ch := range b.Channels[1:] {
		if len(ch) != frames {
			return fmt.Errorf("channel %d has %d frames, channel 0 has %d: %w",
				c+1, len(ch), frames, ErrChannelLengthMismatch)
		}
	}

	return nil
}

// At returns the sample of channel c at frame i, or 0 when the channel is
// shorter than i.
func (b *Buffer) At(c, i int) float32 {
	ch := b.Channels[c]
	if i >= len(ch) {
		return 0
	}

	return ch[i]
}

// Interleaved returns the samples frame by frame: frame 0 of every channel,
// then frame 1, and so on.
func (b *Buffer) Interleaved() []float32 {
	channels := b.NumChannels()
	frames := b.Frames()
	out := make([]float32, frames*channels)

	for f := range frames {
		for c := range channels {
			out[f*channels+c] = b.At(c, f)
		}
	}

	return out
}

// Source exposes the buffer as a streaming Source so it can feed a
// Resampler or MonoMixer. The buffer must not be modified while the
// returned Source is in use.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int // next frame
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.NumChannels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := s.buf.NumChannels()
	if channels == 0 {
		return 0, io.EOF
	}

	total := s.buf.Frames()
	if s.pos >= total {
		return 0, io.EOF
	}

	frames := len(dst) / channels
	if frames == 0 {
		return 0, ErrInvalidDstSize
	}
	frames = min(frames, total-s.pos)

	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.At(c, s.pos+f)
		}
	}
	s.pos += frames

	n := frames * channels
	if s.pos >= total {
		return n, io.EOF
	}

	return n, nil
}

// maxEmptyReads bounds how many (0, nil) reads ReadBuffer tolerates in a row.
const maxEmptyReads = 100

// ReadBuffer drains src and de-interleaves it into a Buffer. bufSize is the
// read chunk in samples; it is rounded down to whole frames. Reaching io.EOF
// is not an error. A trailing partial frame is dropped.
func ReadBuffer(src Source, bufSize int) (*Buffer, error) {
	if bufSize <= 0 {
		return nil, ErrInvalidBufferSize
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	if src.SampleRate() < 1 {
		return nil, ErrInvalidSampleRate
	}

	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	var (
		interleaved []float32
		empty       int
	)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
			empty = 0
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}

	frames := len(interleaved) / channels
	out := NewBuffer(src.SampleRate(), channels, frames)
	for f := range frames {
		for c := range channels {
			out.Channels[c][f] = interleaved[f*channels+c]
		}
	}

	return out, nil
}
