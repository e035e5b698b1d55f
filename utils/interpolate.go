// SPDX-License-Identifier: EPL-2.0

package utils

// CatmullRom interpolates between p1 and p2 given four consecutive samples.
// t is the fractional position: 0 yields p1 and 1 yields p2.
func CatmullRom(p0, p1, p2, p3, t float32) float32 {
	a := -0.5*p0 + 1.5*p1 - 1.5*p2 + 0.5*p3
	b := p0 - 2.5*p1 + 2*p2 - 0.5*p3
	c := -0.5*p0 + 0.5*p2

	return ((a*t+b)*t+c)*t + p1
}
