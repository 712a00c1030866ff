package codecs

import (
	"github.com/faiface/beep"
)

type Codec interface {
	supportedContentTypes() []string
	matches(contentType string) bool

	// Decode decodes the raw file bytes into a seekable sample stream and
	// the format reported by the underlying decoder.
	Decode(b []byte) (beep.StreamSeekCloser, beep.Format, error)
}

var codecs = make([]Codec, 0)

func Get(contentType string) Codec {
	for _, c := range codecs {
		if c.matches(contentType) {
			return c
		}
	}
	return nil
}

func IsSupported(contentType string) bool {
	return Get(contentType) != nil
}

func SupportedContentTypes() []string {
	a := make([]string, 0)
	for _, c := range codecs {
		for _, ct := range c.supportedContentTypes() {
			a = append(a, ct)
		}
	}
	return a
}
