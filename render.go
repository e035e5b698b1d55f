// SPDX-License-Identifier: EPL-2.0

package wavkit

import (
	"fmt"
	"io"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/formats/wav"
)

// DefaultBufferSize is the read chunk, in samples, used when
// Options.BufferSize is zero.
const DefaultBufferSize = 4096

// Options controls how a Source is rendered.
type Options struct {
	// SampleRate is the output rate in Hz. Zero keeps the source rate.
	SampleRate int
	// Mono averages all channels into one.
	Mono bool
	// Encoding of the WAV payload; empty means pcm16.
	Encoding Encoding
	// BufferSize is the pipeline read chunk in samples.
	BufferSize int
}

func (o Options) bufferSize() (int, error) {
	switch {
	case o.BufferSize < 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidBufferSize, o.BufferSize)
	case o.BufferSize == 0:
		return DefaultBufferSize, nil
	}

	return o.BufferSize, nil
}

// Render builds the processing pipeline for src:
//  1. resample to opts.SampleRate when it differs from the source rate
//  2. average down to one channel when opts.Mono is set
//
// and collects the result into a Buffer. The source is read to its end but
// not closed.
func Render(src audio.Source, opts Options) (*audio.Buffer, error) {
	bufSize, err := opts.bufferSize()
	if err != nil {
		return nil, err
	}

	switch {
	case src.Channels() < 1:
		return nil, audio.ErrNoChannels
	case src.SampleRate() < 1, opts.SampleRate < 0:
		return nil, audio.ErrInvalidSampleRate
	}

	s := src
	if opts.SampleRate != 0 && opts.SampleRate != s.SampleRate() {
		s = audio.NewResampler(s, opts.SampleRate)
	}
	if opts.Mono && s.Channels() > 1 {
		s = audio.NewMonoMixer(s)
	}

	buf, err := audio.ReadBuffer(s, bufSize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf, nil
}

// RenderWAV renders src and encodes it as a complete WAV file.
func RenderWAV(src audio.Source, opts Options) ([]byte, error) {
	enc, err := ParseEncoding(string(opts.Encoding))
	if err != nil {
		return nil, err
	}

	buf, err := Render(src, opts)
	if err != nil {
		return nil, err
	}

	return encode(buf, enc)
}

// RenderTo renders src and writes the WAV file to w. PCM16 output is
// streamed in chunks; companded output is written in one call.
func RenderTo(w io.Writer, src audio.Source, opts Options) error {
	enc, err := ParseEncoding(string(opts.Encoding))
	if err != nil {
		return err
	}

	buf, err := Render(src, opts)
	if err != nil {
		return err
	}

	if enc == EncodingPCM16 {
		return wav.EncodeTo(w, buf)
	}

	data, err := encode(buf, enc)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}

	return nil
}

func encode(buf *audio.Buffer, enc Encoding) ([]byte, error) {
	law, ok := enc.law()
	if !ok {
		return wav.Encode(buf), nil
	}

	data, err := wav.EncodeCompanded(buf, law)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return data, nil
}
