package codecs

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/vorbis"
	"github.com/melisma/audiotensor/util"
)

type oggCodec struct {
}

func (c oggCodec) supportedContentTypes() []string {
	return []string{"audio/ogg", "audio/vorbis", "application/ogg"}
}

func (c oggCodec) matches(contentType string) bool {
	for _, ct := range c.supportedContentTypes() {
		if ct == contentType {
			return true
		}
	}
	return false
}

func (c oggCodec) Decode(b []byte) (beep.StreamSeekCloser, beep.Format, error) {
	audio, format, err := vorbis.Decode(util.NewByteSeeker(b))
	if err != nil {
		return audio, format, fmt.Errorf("ogg: error decoding audio: %w", err)
	}
	return audio, format, nil
}

func init() {
	codecs = append(codecs, oggCodec{})
}
