// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// The decoder wraps github.com/go-audio/aiff and exposes the sound data as
// an audio.Source of float32 samples in [-1.0, 1.0]:
//
//	f, _ := os.Open("input.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth or ErrUnsupportedAiffLayout
//	}
//	defer src.Close()
//
// # Sample Widths
//
// 8, 16, 24 and 32-bit integer samples are accepted. Each width is
// normalized by its own full scale, so the most negative code maps to
// exactly -1.0 and the largest positive code to just under 1.0.
//
// AIFF-C compressed payloads are not supported.
//
// # Converting to WAV
//
//	src, _ := aiff.Decoder{}.Decode(f)
//	data, _ := wavkit.RenderWAV(src, wavkit.Options{SampleRate: 8000, Mono: true})
//	os.WriteFile("output.wav", data, 0o644)
package aiff
