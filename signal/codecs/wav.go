package codecs

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/melisma/audiotensor/util"
)

type wavCodec struct {
}

func (c wavCodec) supportedContentTypes() []string {
	return []string{"audio/wav", "audio/x-wav", "audio/wave"}
}

func (c wavCodec) matches(contentType string) bool {
	for _, ct := range c.supportedContentTypes() {
		if ct == contentType {
			return true
		}
	}
	return false
}

func (c wavCodec) Decode(b []byte) (beep.StreamSeekCloser, beep.Format, error) {
	audio, format, err := wav.Decode(util.NewByteSeeker(b))
	if err != nil {
		return audio, format, fmt.Errorf("wav: error decoding audio: %w", err)
	}
	return audio, format, nil
}

func init() {
	codecs = append(codecs, wavCodec{})
}
