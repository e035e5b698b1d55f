// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/wavkit/audio"
	"github.com/jfreymuth/oggvorbis"
)

const defaultBufSize = 4096

// valueReader is the part of oggvorbis.Reader the source depends on. Read
// returns the number of values decoded, always a multiple of the channel
// count.
type valueReader interface {
	Read([]float32) (int, error)
}

type source struct {
	dec        valueReader
	closer     io.Closer
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return defaultBufSize }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:frames*s.channels])
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

// Decoder decodes Ogg Vorbis streams into an audio.Source.
type Decoder struct{}

// Decode reads the Vorbis identification and setup headers from r. When r
// is an io.Closer, closing the Source closes r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis headers: %w", err)
	}

	switch {
	case dec.Channels() < 1:
		return nil, audio.ErrNoChannels
	case dec.SampleRate() < 1:
		return nil, audio.ErrInvalidSampleRate
	}

	closer, _ := r.(io.Closer)

	return &source{
		dec:        dec,
		closer:     closer,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
