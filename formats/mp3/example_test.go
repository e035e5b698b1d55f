// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/formats/mp3"
	"github.com/ik5/wavkit/formats/wav"
)

// Example registers the MP3 decoder under its file extension.
func Example() {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})

	_, ok := reg.Get(".MP3")
	fmt.Println(reg.Formats(), ok)

	// Output: [mp3] true
}

// ExampleDecoder_Decode shows that MP3 sources are always stereo.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}

	src, err := mp3.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("Decoded MP3: %d Hz, %d channels\n", src.SampleRate(), src.Channels())

	mono := audio.NewMonoMixer(src)
	fmt.Printf("Downmixed to %d channel\n", mono.Channels())
}

// ExampleDecoder_Decode_convertToWav converts an MP3 file to 8 kHz mono WAV.
func ExampleDecoder_Decode_convertToWav() {
	in, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}

	src, err := mp3.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	buf, err := audio.ReadBuffer(audio.NewMonoMixer(audio.NewResampler(src, 8000)), 4096)
	if err != nil {
		log.Fatal(err)
	}

	if err := wav.EncodeTo(out, buf); err != nil {
		log.Fatal(err)
	}

	fmt.Println("MP3 converted to WAV")
}
