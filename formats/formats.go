// SPDX-License-Identifier: EPL-2.0

// Package formats wires every decoder in this module into one registry and
// opens audio files by extension.
package formats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/formats/aiff"
	"github.com/ik5/wavkit/formats/mp3"
	"github.com/ik5/wavkit/formats/vorbis"
	"github.com/ik5/wavkit/formats/wav"
)

// ErrUnknownFormat indicates a file extension with no registered decoder.
var ErrUnknownFormat = errors.New("unknown audio format")

// NewRegistry returns a registry holding every decoder, keyed by the file
// extensions each one reads.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	for _, ext := range []string{"wav", "wave"} {
		r.Register(ext, wav.Decoder{})
	}
	for _, ext := range []string{"aif", "aiff"} {
		r.Register(ext, aiff.Decoder{})
	}
	r.Register("mp3", mp3.Decoder{})
	for _, ext := range []string{"ogg", "oga"} {
		r.Register(ext, vorbis.Decoder{})
	}

	return r
}

var defaultRegistry = NewRegistry()

// Open opens path and decodes it with the decoder registered for its
// extension. Closing the returned Source closes the file.
func Open(path string) (audio.Source, error) {
	return OpenWith(defaultRegistry, path)
}

// OpenWith is Open with a caller supplied registry.
func OpenWith(r *audio.Registry, path string) (audio.Source, error) {
	ext := filepath.Ext(path)

	dec, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	return src, nil
}
