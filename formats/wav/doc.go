// SPDX-License-Identifier: EPL-2.0

// Package wav encodes decoded audio into WAV files and reads them back.
//
// # Encoding
//
// Encode turns an audio.Buffer into a 16-bit PCM file with the canonical
// 44-byte header:
//
//	buf := &audio.Buffer{SampleRate: 8000, Channels: [][]float32{{0, 1, -1}}}
//	data := wav.Encode(buf) // 50 bytes
//
// Samples are clamped to [-1, 1]; negative values scale by 32768 and the
// rest by 32767, truncated toward zero, so -1.0 becomes -32768 and 1.0
// becomes 32767. Frames are interleaved channel by channel.
//
// EncodeTo streams the same bytes to an io.Writer, WriteWAV16 writes samples
// that are already int16, and EncodeCompanded produces 8-bit G.711 A-law or
// µ-law files.
//
// # Reading
//
// Decoder implements audio.Decoder for 16-bit PCM on top of go-audio/wav
// and yields float32 samples. A-law and µ-law files go through ReadFile. ParseHeader reads a canonical header, Inspect
// walks the RIFF chunks of any WAV file, and ReadFile decodes PCM 16-bit,
// A-law or µ-law data straight into an audio.Buffer.
//
// # Errors
//
//   - ErrNotWavFile: the input is not RIFF/WAVE
//   - ErrUnsupportedWavLayout: the chunks are not where they are expected
//   - ErrOnlyPCM16bitSupported: Decoder met a file it cannot read
//   - ErrTruncatedDataChunk: the data chunk claims more bytes than the file has
//   - ErrUnsupportedEncoding: ReadFile or EncodeCompanded met an unknown encoding
package wav
