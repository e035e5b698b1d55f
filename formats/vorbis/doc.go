// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. The Source keeps the
// stream's native channel count and yields interleaved float32 samples:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// Vorbis output can overshoot [-1.0, 1.0] slightly on loud material. The
// samples are passed through unchanged; the WAV encoder clamps them.
//
// # Example: Vorbis to WAV
//
//	f, _ := os.Open("input.ogg")
//	src, _ := vorbis.Decoder{}.Decode(f)
//	defer src.Close()
//
//	data, _ := wavkit.RenderWAV(src, wavkit.Options{SampleRate: 16000, Mono: true})
//	os.WriteFile("output.wav", data, 0o644)
package vorbis
