// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"testing"

	"github.com/ik5/wavkit/audio"
)

func TestParseHeader_RoundTrip(t *testing.T) {
	t.Parallel()

	buf := audio.NewBuffer(22050, 3, 100)
	data := Encode(buf)

	h, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if h.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", h.SampleRate)
	}

	if h.NumChannels != 3 {
		t.Errorf("NumChannels = %d, want 3", h.NumChannels)
	}

	if h.DataSize != 100*3*2 {
		t.Errorf("DataSize = %d, want %d", h.DataSize, 100*3*2)
	}

	if h.ChunkSize != uint32(len(data)-8) {
		t.Errorf("ChunkSize = %d, want %d", h.ChunkSize, len(data)-8)
	}

	if h.Frames() != 100 {
		t.Errorf("Frames() = %d, want 100", h.Frames())
	}

	if h != NewPCM16Header(22050, 3, 600) {
		t.Errorf("ParseHeader() = %+v, want %+v", h, NewPCM16Header(22050, 3, 600))
	}
}

func TestHeader_Bytes(t *testing.T) {
	t.Parallel()

	h := NewPCM16Header(8000, 1, 6)
	data := Encode(&audio.Buffer{SampleRate: 8000, Channels: [][]float32{{0, 1, -1}}})

	if got := string(h.Bytes()); got != string(data[:HeaderSize]) {
		t.Errorf("Bytes() = % X, want % X", h.Bytes(), data[:HeaderSize])
	}
}

func TestParseHeader_Errors(t *testing.T) {
	t.Parallel()

	valid := Encode(audio.NewBuffer(8000, 1, 1))

	corrupt := func(off int, val string) []byte {
		b := append([]byte(nil), valid...)
		copy(b[off:], val)
		return b
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "short", data: valid[:20], want: ErrShortHeader},
		{name: "not RIFF", data: corrupt(0, "RIFX"), want: ErrNotWavFile},
		{name: "not WAVE", data: corrupt(8, "AVI "), want: ErrNotWavFile},
		{name: "no fmt chunk", data: corrupt(12, "LIST"), want: ErrUnsupportedWavLayout},
		{name: "extended fmt chunk", data: corrupt(16, "\x12\x00\x00\x00"), want: ErrUnsupportedWavLayout},
		{name: "data not next", data: corrupt(36, "fact"), want: ErrUnsupportedWavLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseHeader(tt.data); err != tt.want {
				t.Errorf("ParseHeader() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAudioFormatName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code uint16
		want string
	}{
		{AudioFormatPCM, "PCM"},
		{AudioFormatIEEEFloat, "IEEE float"},
		{AudioFormatALaw, "A-law"},
		{AudioFormatMULaw, "µ-law"},
		{0xFFFE, "format 0xFFFE"},
	}

	for _, tt := range tests {
		if got := AudioFormatName(tt.code); got != tt.want {
			t.Errorf("AudioFormatName(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
