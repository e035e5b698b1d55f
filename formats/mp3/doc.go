// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 and exposes the decoded
// PCM as an audio.Source of float32 samples in [-1.0, 1.0].
//
// # Output Format
//
// go-mp3 always produces interleaved stereo, so the Source reports two
// channels even for mono files. Reads are served in whole frames; a dst
// with an odd length leaves its last slot untouched.
//
// To get a mono 8 kHz WAV:
//
//	f, _ := os.Open("input.mp3")
//	src, _ := mp3.Decoder{}.Decode(f)
//	defer src.Close()
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//	buf, _ := audio.ReadBuffer(mono, 4096)
//	os.WriteFile("output.wav", wav.Encode(buf), 0o644)
package mp3
