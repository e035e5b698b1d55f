// SPDX-License-Identifier: EPL-2.0

package wavkit

import "errors"

var (
	// ErrInvalidBufferSize indicates a negative Options.BufferSize.
	ErrInvalidBufferSize = errors.New("invalid buffer size")

	// ErrUnknownEncoding indicates an output encoding other than pcm16, alaw or ulaw.
	ErrUnknownEncoding = errors.New("unknown output encoding")
)
