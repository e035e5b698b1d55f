// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory buffer and the streaming pipeline.
//
// # Buffer
//
// A Buffer is decoded audio held in memory: one float32 slice per channel
// and a shared sample rate. It is what the WAV encoder consumes:
//
//	buf := &audio.Buffer{
//	    SampleRate: 8000,
//	    Channels:   [][]float32{left, right},
//	}
//	if err := buf.Validate(); err != nil {
//	    // ErrInvalidSampleRate, ErrNoChannels or ErrChannelLengthMismatch
//	}
//
// ReadBuffer drains a Source into a Buffer, and Buffer.Source goes the
// other way, so a buffer can be fed through the pipeline stages below.
//
// # Source Interface
//
// The Source interface is the foundation of streaming processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders and processors implement it and chain together. Sources are
// single-consumer; do not read one from several goroutines.
//
// # Resampling
//
// The Resampler changes the sample rate with Catmull-Rom interpolation.
// Downsampling runs the input through a one-pole low-pass first:
//
//	resampler := audio.NewResampler(source, 16000)
//
// # Channel Mixing
//
// The MonoMixer averages every frame down to one channel. Mono input is
// passed through:
//
//	mono := audio.NewMonoMixer(source)
//
// # Format Registry
//
// The Registry maps file extensions to decoders. Lookups ignore case and a
// leading dot:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(".WAV")
//
// formats.NewRegistry returns one with every decoder in this module.
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0], interleaved frame by frame
// ([L0, R0, L1, R1, ...]). Stages do not clamp; the encoders do.
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream is finished, possibly together
// with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n] first
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
