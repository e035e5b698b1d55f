// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavkit/utils"
)

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation. It works on interleaved frames and keeps the channel count.
// When downsampling, input frames pass through a one-pole low-pass first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[1] and window[2] bracket the current output position;
	// window[0] and window[3] are the outer neighbours.
	window [4][]float32
	valid  [4]bool
	primed bool

	pos float64 // fractional offset from window[1]

	frame []float32
	eof   bool

	lowPass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		lowPass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fill reads into r.frame, retrying reads that return nothing without an
// error.
func (r *Resampler) fill() (int, error) {
	for range maxEmptyReads {
		n, err := r.src.ReadSamples(r.frame)
		if n > 0 || err != nil {
			return n, err
		}
	}

	return 0, io.ErrNoProgress
}

// readFrame pulls one frame from the source into r.frame and reports
// whether a full frame arrived.
func (r *Resampler) readFrame() (bool, error) {
	if r.eof {
		return false, io.EOF
	}

	n, err := r.fill()
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	if n < r.channels {
		return false, nil
	}

	if r.lowPass {
		for c, x := range r.frame {
			y := r.alpha*x + (1-r.alpha)*r.state[c]
			r.frame[c] = y
			r.state[c] = y
		}
	}

	return true, nil
}

// prime fills the interpolation window. It reports io.EOF when the source
// holds no frame at all; a short source repeats its last frame.
func (r *Resampler) prime() error {
	for i := range r.window {
		if i == 0 && r.lowPass {
			// seed the filter from the first frame so it starts without a ramp
			n, err := r.fill()
			if err == io.EOF {
				r.eof = true
			} else if err != nil {
				return fmt.Errorf("%w", err)
			}
			if n < r.channels {
				return io.EOF
			}
			copy(r.state, r.frame)
			copy(r.window[0], r.frame)
			r.valid[0] = true
			continue
		}

		ok, err := r.readFrame()
		if err != nil && err != io.EOF {
			return err
		}

		if !ok {
			if i == 0 {
				return io.EOF
			}
			for j := i; j < len(r.window); j++ {
				copy(r.window[j], r.window[i-1])
				r.valid[j] = true
			}
			break
		}

		copy(r.window[i], r.frame)
		r.valid[i] = true
	}

	r.primed = true

	return nil
}

// advance slides the window one frame forward.
func (r *Resampler) advance() error {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	ok, err := r.readFrame()
	if err != nil && err != io.EOF {
		return err
	}

	r.valid[3] = ok
	if ok {
		copy(r.window[3], r.frame)
		return nil
	}

	if r.eof && !r.valid[2] {
		return io.EOF
	}

	return nil
}

func (r *Resampler) interpolate(c int, t float32) float32 {
	p1 := r.window[1][c]
	p2 := r.window[2][c]

	p0 := p1
	if r.valid[0] {
		p0 = r.window[0][c]
	}

	p3 := p2
	if r.valid[3] {
		p3 = r.window[3][c]
	}

	return utils.CatmullRom(p0, p1, p2, p3, t)
}

// ReadSamples produces interleaved samples at the target rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	want := len(dst) / r.channels
	written := 0

	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return r.finish(written, err)
			}
		}

		if !r.valid[1] || !r.valid[2] {
			return r.finish(written, io.EOF)
		}

		t := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = r.interpolate(c, t)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

func (r *Resampler) finish(written int, err error) (int, error) {
	if err == io.EOF && written == 0 {
		return 0, io.EOF
	}

	return written * r.channels, err
}
