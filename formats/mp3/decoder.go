// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/wavkit/audio"
)

const (
	// outputChannels is fixed: go-mp3 always emits interleaved stereo.
	outputChannels = 2
	bytesPerSample = 2
	defaultBufSize = 4096
)

type source struct {
	dec        io.Reader
	closer     io.Closer
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

// ReadSamples fills dst with whole stereo frames. A trailing odd sample
// slot in dst is left untouched.
func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / outputChannels
	if frames == 0 {
		if len(dst) == 0 {
			return 0, nil
		}

		return 0, audio.ErrInvalidDstSize
	}

	want := frames * outputChannels * bytesPerSample
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.dec, s.buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}

	samples := n / bytesPerSample
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) / 32768
	}

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III streams into an audio.Source.
type Decoder struct{}

// Decode parses the first frame header of r. The returned Source always
// reports two channels. When r is an io.Closer, closing the Source closes r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 header: %w", err)
	}

	closer, _ := r.(io.Closer)

	return &source{
		dec:        dec,
		closer:     closer,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, defaultBufSize*bytesPerSample),
	}, nil
}
