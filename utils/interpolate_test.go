// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCatmullRom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		p0, p1, p2, p3 float32
		t              float32
		want           float32
		tolerance      float32
	}{
		{name: "start returns p1", p0: 0, p1: 1, p2: 2, p3: 3, t: 0, want: 1, tolerance: 1e-6},
		{name: "end returns p2", p0: 0, p1: 1, p2: 2, p3: 3, t: 1, want: 2, tolerance: 1e-5},
		{name: "linear ramp stays linear", p0: 1, p1: 2, p2: 3, p3: 4, t: 0.25, want: 2.25, tolerance: 1e-5},
		{name: "constant signal", p0: 0.5, p1: 0.5, p2: 0.5, p3: 0.5, t: 0.7, want: 0.5, tolerance: 1e-6},
		{name: "symmetric peak midpoint", p0: 0, p1: 1, p2: 1, p3: 0, t: 0.5, want: 1.125, tolerance: 1e-5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CatmullRom(tt.p0, tt.p1, tt.p2, tt.p3, tt.t)
			if math.Abs(float64(got-tt.want)) > float64(tt.tolerance) {
				t.Errorf("CatmullRom() = %v, want %v (±%v)", got, tt.want, tt.tolerance)
			}
		})
	}
}
