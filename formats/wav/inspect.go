// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/youpy/go-riff"
	"github.com/zaf/g711"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/utils"
)

// Format mirrors the first 16 bytes of a fmt chunk.
type Format struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// Info describes a WAV file without decoding its samples.
type Info struct {
	Format   Format
	FileSize uint32 // RIFF chunk size, i.e. file length minus 8
	DataSize uint32
	Frames   int
	Duration time.Duration
	Chunks   []string // chunk IDs in file order
}

type wavFile struct {
	info     *Info
	data     *riff.Chunk
	dataSize uint32
}

// readRIFF wraps go-riff, which panics on truncated input.
func readRIFF(r riff.RIFFReader) (chunk *riff.RIFFChunk, err error) {
	defer func() {
		if p := recover(); p != nil {
			chunk, err = nil, fmt.Errorf("%w: %v", ErrNotWavFile, p)
		}
	}()

	chunk, err = riff.NewReader(r).Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWavFile, err)
	}

	return chunk, nil
}

// chunkSize reads the size field of the chunk header at off. go-riff
// reports sizes rounded up to the even pad boundary; this is the real one.
func chunkSize(r io.ReaderAt, off int64) (uint32, error) {
	var b [4]byte
	if _, err := r.ReadAt(b[:], off+4); err != nil {
		return 0, fmt.Errorf("reading chunk size: %w", err)
	}

	return binary.LittleEndian.Uint32(b[:]), nil
}

// checkAvailable makes sure the last of size bytes starting at start can
// be read, so a size field larger than the file is rejected before
// anything is allocated for it.
func checkAvailable(r io.ReaderAt, start int64, size uint32) error {
	if size == 0 {
		return nil
	}

	var b [1]byte
	if _, err := r.ReadAt(b[:], start+int64(size)-1); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %d bytes declared", ErrTruncatedDataChunk, size)
		}
		return fmt.Errorf("reading data chunk: %w", err)
	}

	return nil
}

func parse(r riff.RIFFReader) (*wavFile, error) {
	riffChunk, err := readRIFF(r)
	if err != nil {
		return nil, err
	}

	if string(riffChunk.FileType[:]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	wf := &wavFile{info: &Info{FileSize: riffChunk.FileSize}}

	var fmtChunk *riff.Chunk
	off := int64(12) // first chunk header follows "RIFF", size and "WAVE"
	for _, ch := range riffChunk.Chunks {
		id := string(ch.ChunkID[:])
		wf.info.Chunks = append(wf.info.Chunks, id)

		switch {
		case id == "fmt " && fmtChunk == nil:
			fmtChunk = ch
		case id == "data" && wf.data == nil:
			wf.data = ch
			if wf.dataSize, err = chunkSize(r, off); err != nil {
				return nil, err
			}
			if err := checkAvailable(r, off+8, wf.dataSize); err != nil {
				return nil, err
			}
		}

		off += 8 + int64(ch.ChunkSize)
	}

	if fmtChunk == nil {
		return nil, ErrMissingFormatChunk
	}

	if err := binary.Read(fmtChunk, binary.LittleEndian, &wf.info.Format); err != nil {
		return nil, fmt.Errorf("reading fmt chunk: %w", err)
	}

	if wf.data == nil {
		return nil, ErrMissingDataChunk
	}

	f := wf.info.Format
	if f.BlockAlign == 0 || f.SampleRate == 0 || f.NumChannels == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	wf.info.DataSize = wf.dataSize
	wf.info.Frames = int(wf.dataSize / uint32(f.BlockAlign))
	wf.info.Duration = time.Duration(wf.info.Frames) * time.Second / time.Duration(f.SampleRate)

	return wf, nil
}

// Inspect walks the RIFF chunks of a WAV file and reports its format and
// sizes. Unknown chunks are listed and skipped.
func Inspect(r riff.RIFFReader) (*Info, error) {
	wf, err := parse(r)
	if err != nil {
		return nil, err
	}

	return wf.info, nil
}

// ReadFile decodes a whole WAV file into a Buffer. It accepts 16-bit PCM,
// A-law and µ-law data.
func ReadFile(r riff.RIFFReader) (*audio.Buffer, error) {
	wf, err := parse(r)
	if err != nil {
		return nil, err
	}

	f := wf.info.Format

	var (
		width  int
		sample func(b []byte) float32
	)

	switch {
	case f.AudioFormat == AudioFormatPCM && f.BitsPerSample == 16:
		width = 2
		sample = func(b []byte) float32 {
			return utils.DequantizePCM16(int16(binary.LittleEndian.Uint16(b)))
		}
	case f.AudioFormat == AudioFormatALaw && f.BitsPerSample == 8:
		width = 1
		sample = func(b []byte) float32 {
			return utils.DequantizePCM16(g711.DecodeAlawFrame(b[0]))
		}
	case f.AudioFormat == AudioFormatMULaw && f.BitsPerSample == 8:
		width = 1
		sample = func(b []byte) float32 {
			return utils.DequantizePCM16(g711.DecodeUlawFrame(b[0]))
		}
	default:
		return nil, fmt.Errorf("format %d, %d bits: %w", f.AudioFormat, f.BitsPerSample, ErrUnsupportedEncoding)
	}

	channels := int(f.NumChannels)
	if int(f.BlockAlign) != channels*width {
		return nil, ErrUnsupportedWavLayout
	}

	data := make([]byte, wf.info.Frames*int(f.BlockAlign))
	if _, err := io.ReadFull(wf.data, data); err != nil {
		return nil, fmt.Errorf("reading data chunk: %w", err)
	}

	buf := audio.NewBuffer(int(f.SampleRate), channels, wf.info.Frames)
	off := 0
	for i := range wf.info.Frames {
		for c := range channels {
			buf.Channels[c][i] = sample(data[off : off+width])
			off += width
		}
	}

	return buf, nil
}
