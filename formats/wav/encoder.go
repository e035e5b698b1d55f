// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/utils"
)

// writeChunk is the number of samples EncodeTo and WriteWAV16 convert per
// Write call.
const writeChunk = 8192

// Encode serializes buf as a 16-bit PCM WAV file.
//
// The result is exactly 44 + frames × channels × 2 bytes, samples interleaved
// frame by frame. Each sample is clamped to [-1, 1], scaled by 32768 when
// negative and 32767 otherwise, and truncated. Encode does not validate buf:
// the frame count comes from the first channel and a shorter channel is
// padded with silence. Use EncodeChecked to reject malformed buffers.
func Encode(buf *audio.Buffer) []byte {
	channels := buf.NumChannels()
	frames := buf.Frames()
	dataSize := frames * channels * bytesPerSample

	out := make([]byte, HeaderSize+dataSize)
	NewPCM16Header(buf.SampleRate, channels, uint32(dataSize)).put(out)

	off := HeaderSize
	for f := range frames {
		for c := range channels {
			s := utils.QuantizePCM16(float64(buf.At(c, f)))
			binary.LittleEndian.PutUint16(out[off:off+2], uint16(s))
			off += 2
		}
	}

	return out
}

// EncodeChecked validates buf before encoding it.
func EncodeChecked(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return Encode(buf), nil
}

// EncodeTo writes the same bytes as Encode to w without holding the whole
// file in memory.
func EncodeTo(w io.Writer, buf *audio.Buffer) error {
	channels := buf.NumChannels()
	total := buf.Frames() * channels

	return writePCM16(w, buf.SampleRate, channels, total, func(i int) int16 {
		return utils.QuantizePCM16(float64(buf.At(i%channels, i/channels)))
	})
}

// WriteWAV16 writes a 16-bit PCM WAV at sampleRate. samples must be
// interleaved int16 PCM with channels values per frame.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	return writePCM16(w, sampleRate, channels, len(samples), func(i int) int16 {
		return samples[i]
	})
}

func writePCM16(w io.Writer, sampleRate, channels, total int, sample func(i int) int16) error {
	header := NewPCM16Header(sampleRate, channels, uint32(total*bytesPerSample)).Bytes()
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if total == 0 {
		return nil
	}

	buf := make([]byte, min(total, writeChunk)*bytesPerSample)

	for start := 0; start < total; start += writeChunk {
		end := min(start+writeChunk, total)
		chunk := buf[:(end-start)*bytesPerSample]

		for i := start; i < end; i++ {
			j := (i - start) * bytesPerSample
			binary.LittleEndian.PutUint16(chunk[j:j+2], uint16(sample(i)))
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}
