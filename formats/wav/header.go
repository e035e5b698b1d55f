// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	AudioFormatPCM       = 1
	AudioFormatIEEEFloat = 3
	AudioFormatALaw      = 6
	AudioFormatMULaw     = 7
)

// AudioFormatName returns a readable name for a fmt chunk format code.
func AudioFormatName(code uint16) string {
	switch code {
	case AudioFormatPCM:
		return "PCM"
	case AudioFormatIEEEFloat:
		return "IEEE float"
	case AudioFormatALaw:
		return "A-law"
	case AudioFormatMULaw:
		return "µ-law"
	}

	return fmt.Sprintf("format 0x%04X", code)
}

const (
	// HeaderSize is the length of the canonical PCM header.
	HeaderSize = 44

	bytesPerSample = 2
	pcmFmtSize     = 16
)

// Header holds the fields of the canonical 44-byte PCM WAV header.
// The chunk IDs ("RIFF", "WAVE", "fmt ", "data") are implied.
type Header struct {
	ChunkSize     uint32 // file length minus 8
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// NewPCM16Header builds the header for dataSize bytes of 16-bit PCM.
func NewPCM16Header(sampleRate, channels int, dataSize uint32) Header {
	blockAlign := uint16(channels * bytesPerSample)

	return Header{
		ChunkSize:     HeaderSize - 8 + dataSize,
		AudioFormat:   AudioFormatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: 16,
		DataSize:      dataSize,
	}
}

// put writes the header into dst, which must hold at least HeaderSize bytes.
func (h Header) put(dst []byte) {
	// RIFF header (12 bytes)
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], h.ChunkSize)
	copy(dst[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], pcmFmtSize)
	binary.LittleEndian.PutUint16(dst[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(dst[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(dst[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(dst[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(dst[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(dst[34:36], h.BitsPerSample)

	// data chunk header (8 bytes)
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], h.DataSize)
}

// Bytes returns the 44-byte encoding of h.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.put(b)
	return b
}

// Frames is the number of frames the data chunk holds.
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}

	return int(h.DataSize / uint32(h.BlockAlign))
}

// ParseHeader reads a canonical header: RIFF/WAVE with a 16-byte fmt chunk
// immediately followed by the data chunk. Files with extra chunks should go
// through Inspect instead.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}

	if !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.Equal(b[12:16], []byte("fmt ")) ||
		binary.LittleEndian.Uint32(b[16:20]) != pcmFmtSize ||
		!bytes.Equal(b[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavLayout
	}

	return Header{
		ChunkSize:     binary.LittleEndian.Uint32(b[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(b[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(b[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(b[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}
