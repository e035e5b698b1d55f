// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"

	"github.com/zaf/g711"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/utils"
)

// Law selects a G.711 companding curve.
type Law int

const (
	LawALaw Law = iota + 1
	LawMuLaw
)

func (l Law) String() string {
	switch l {
	case LawALaw:
		return "alaw"
	case LawMuLaw:
		return "ulaw"
	default:
		return fmt.Sprintf("Law(%d)", int(l))
	}
}

func (l Law) audioFormat() uint16 {
	if l == LawALaw {
		return AudioFormatALaw
	}

	return AudioFormatMULaw
}

func (l Law) compress(s int16) byte {
	if l == LawALaw {
		return g711.EncodeAlawFrame(s)
	}

	return g711.EncodeUlawFrame(s)
}

// CompandedHeaderSize covers RIFF (12), an 18-byte fmt chunk (26), a fact
// chunk (12) and the data chunk header (8).
const CompandedHeaderSize = 58

// EncodeCompanded serializes buf as an 8-bit G.711 WAV file. Samples are
// quantized exactly as Encode does and then compressed with law. Non-PCM
// formats carry a fact chunk holding the frame count. An odd-sized data
// chunk is followed by one zero pad byte.
func EncodeCompanded(buf *audio.Buffer, law Law) ([]byte, error) {
	if law != LawALaw && law != LawMuLaw {
		return nil, fmt.Errorf("%v: %w", law, ErrUnsupportedEncoding)
	}

	channels := buf.NumChannels()
	frames := buf.Frames()
	dataSize := frames * channels

	out := make([]byte, CompandedHeaderSize+dataSize+dataSize%2)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 18)
	binary.LittleEndian.PutUint16(out[20:22], law.audioFormat())
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(buf.SampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(buf.SampleRate*channels))
	binary.LittleEndian.PutUint16(out[32:34], uint16(channels))
	binary.LittleEndian.PutUint16(out[34:36], 8)
	binary.LittleEndian.PutUint16(out[36:38], 0) // cbSize

	copy(out[38:42], "fact")
	binary.LittleEndian.PutUint32(out[42:46], 4)
	binary.LittleEndian.PutUint32(out[46:50], uint32(frames))

	copy(out[50:54], "data")
	binary.LittleEndian.PutUint32(out[54:58], uint32(dataSize))

	off := CompandedHeaderSize
	for f := range frames {
		for c := range channels {
			out[off] = law.compress(utils.QuantizePCM16(float64(buf.At(c, f))))
			off++
		}
	}

	return out, nil
}
