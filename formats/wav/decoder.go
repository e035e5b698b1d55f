// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/utils"
)

// pcmReader is the part of gowav.Decoder the source needs; tests fake it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	closer     io.Closer
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}

	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.DequantizePCM16(int16(v))
	}

	// a short read without error means the data chunk is exhausted
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

// Decoder streams 16-bit PCM WAV files through go-audio/wav. Extra chunks
// (LIST, smpl, bext, ...) are skipped. A-law and µ-law files are decoded
// whole with ReadFile and served from memory.
type Decoder struct{}

// seekReaderAt is what both go-audio/wav and go-riff can work on.
type seekReaderAt interface {
	io.ReadSeeker
	io.ReaderAt
}

// Decode validates the RIFF/WAVE headers of r. When r is an io.Closer,
// closing the Source closes r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(seekReaderAt)
	if !ok {
		// go-audio needs to seek past chunks
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	closer, _ := r.(io.Closer)

	switch {
	case dec.WavAudioFormat == AudioFormatPCM && dec.BitDepth == 16:
	case dec.WavAudioFormat == AudioFormatALaw, dec.WavAudioFormat == AudioFormatMULaw:
		buf, err := ReadFile(rs)
		if err != nil {
			return nil, err
		}
		return &bufferedSource{Source: buf.Source(), closer: closer}, nil
	default:
		return nil, ErrOnlyPCM16bitSupported
	}

	return &source{
		dec:        dec,
		closer:     closer,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}

// bufferedSource serves a fully decoded file and closes the file it came
// from.
type bufferedSource struct {
	audio.Source
	closer io.Closer
}

func (s *bufferedSource) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}
