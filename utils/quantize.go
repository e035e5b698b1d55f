// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const (
	// NegativeScale maps -1.0 onto math.MinInt16.
	NegativeScale = 0x8000
	// PositiveScale maps 1.0 onto math.MaxInt16.
	PositiveScale = 0x7FFF
)

// QuantizePCM16 converts a normalized sample to signed 16-bit PCM.
//
// The sample is clamped to [-1, 1]. Negative values are scaled by 32768 and
// everything else by 32767, then truncated toward zero. NaN becomes silence,
// infinities clamp to the nearest bound.
func QuantizePCM16(x float64) int16 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	if x < 0 {
		return int16(x * NegativeScale)
	}

	return int16(x * PositiveScale)
}

// QuantizeSlice quantizes src into dst and returns the number of samples
// written, which is min(len(dst), len(src)).
func QuantizeSlice(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = QuantizePCM16(float64(src[i]))
	}

	return n
}

// DequantizePCM16 is the inverse of QuantizePCM16: MinInt16 maps to -1.0
// and MaxInt16 to 1.0.
func DequantizePCM16(s int16) float32 {
	if s < 0 {
		return float32(s) / NegativeScale
	}

	return float32(s) / PositiveScale
}
