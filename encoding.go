// SPDX-License-Identifier: EPL-2.0

package wavkit

import (
	"fmt"
	"strings"

	"github.com/ik5/wavkit/formats/wav"
)

// Encoding names the sample format of a rendered WAV file.
type Encoding string

const (
	EncodingPCM16 Encoding = "pcm16"
	EncodingALaw  Encoding = "alaw"
	EncodingMuLaw Encoding = "ulaw"
)

// ParseEncoding maps a user supplied name to an Encoding. Matching is case
// insensitive; an empty name selects pcm16.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pcm16", "pcm", "s16le":
		return EncodingPCM16, nil
	case "alaw", "a-law", "pcma":
		return EncodingALaw, nil
	case "ulaw", "u-law", "mulaw", "µ-law", "pcmu":
		return EncodingMuLaw, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// law returns the G.711 curve for companded encodings.
func (e Encoding) law() (wav.Law, bool) {
	switch e {
	case EncodingALaw:
		return wav.LawALaw, true
	case EncodingMuLaw:
		return wav.LawMuLaw, true
	}

	return 0, false
}
