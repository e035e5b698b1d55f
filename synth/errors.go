// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidFrequency indicates a tone frequency that is not positive or
	// lies above the Nyquist limit of the sample rate.
	ErrInvalidFrequency = errors.New("invalid tone frequency")

	// ErrInvalidDuration indicates a negative duration.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidAmplitude indicates an amplitude outside [0, 1].
	ErrInvalidAmplitude = errors.New("invalid amplitude")
)
