// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrShortHeader           = errors.New("WAV header shorter than 44 bytes")
	ErrMissingFormatChunk    = errors.New("format chunk is not found")
	ErrMissingDataChunk      = errors.New("data chunk is not found")
	ErrTruncatedDataChunk    = errors.New("data chunk is truncated")
	// ErrUnsupportedEncoding reports a sample encoding other than PCM 16-bit,
	// A-law or µ-law.
	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")
)
