// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidSampleRate reports a buffer or source whose rate is not positive.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	// ErrNoChannels reports a buffer without any channel.
	ErrNoChannels = errors.New("audio must have at least one channel")
	// ErrChannelLengthMismatch reports channels holding different frame counts.
	ErrChannelLengthMismatch = errors.New("channels have different lengths")
	ErrInvalidBufferSize     = errors.New("buffer size must be positive")
)
