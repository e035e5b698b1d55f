// SPDX-License-Identifier: EPL-2.0

// Package wavkit turns decoded audio into WAV files.
//
// The heart of the module is formats/wav.Encode, a pure transform from an
// audio.Buffer (one float32 slice per channel, samples in [-1.0, 1.0]) to
// a canonical 44-byte-header, 16-bit little-endian PCM WAV file. This
// package sits on top of it and the audio pipeline:
//
//	f, _ := os.Open("speech.mp3")
//	src, _ := mp3.Decoder{}.Decode(f)
//	defer src.Close()
//
//	data, err := wavkit.RenderWAV(src, wavkit.Options{
//	    SampleRate: 8000,
//	    Mono:       true,
//	    Encoding:   wavkit.EncodingMuLaw,
//	})
//
// # Supported Formats
//
// Input, via formats.Open or the decoders directly:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (8, 16, 24 and 32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Output: PCM 16-bit, G.711 A-law or G.711 µ-law WAV.
//
// # Sample Conversion
//
// Samples are clamped to [-1.0, 1.0] and scaled asymmetrically: negative
// values by 32768 and the rest by 32767, truncating toward zero. -1.0 maps
// to -32768 and 1.0 to 32767. NaN becomes silence.
//
// # Pipeline
//
// Render wires the audio stages explicitly; the same pipeline can be built
// by hand:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	buf, _ := audio.ReadBuffer(mono, 4096)
//	data := wav.Encode(buf)
//
// # Test Signals
//
// synth.Tone produces a sine tone buffer, the same kind of signal the
// wavkit tone command writes.
package wavkit
