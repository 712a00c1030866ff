package codecs

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/melisma/audiotensor/util"
)

type mp3Codec struct {
}

func (c mp3Codec) supportedContentTypes() []string {
	return []string{"audio/mpeg", "audio/mp3"}
}

func (c mp3Codec) matches(contentType string) bool {
	for _, ct := range c.supportedContentTypes() {
		if ct == contentType {
			return true
		}
	}
	return false
}

func (c mp3Codec) Decode(b []byte) (beep.StreamSeekCloser, beep.Format, error) {
	audio, format, err := mp3.Decode(util.NewByteSeeker(b))
	if err != nil {
		return audio, format, fmt.Errorf("mp3: error decoding audio: %w", err)
	}
	return audio, format, nil
}

func init() {
	codecs = append(codecs, mp3Codec{})
}
