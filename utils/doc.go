// SPDX-License-Identifier: EPL-2.0

// Package utils holds the per-sample math shared by the audio pipeline and
// the encoders: 16-bit quantization and Catmull-Rom interpolation.
package utils
