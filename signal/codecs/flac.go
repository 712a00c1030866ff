package codecs

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/melisma/audiotensor/util"
)

type flacCodec struct {
}

func (c flacCodec) supportedContentTypes() []string {
	return []string{"audio/flac", "audio/x-flac"}
}

func (c flacCodec) matches(contentType string) bool {
	for _, ct := range c.supportedContentTypes() {
		if ct == contentType {
			return true
		}
	}
	return false
}

func (c flacCodec) Decode(b []byte) (beep.StreamSeekCloser, beep.Format, error) {
	audio, format, err := flac.Decode(util.NewByteSeeker(b))
	if err != nil {
		return audio, format, fmt.Errorf("flac: error decoding audio: %w", err)
	}
	return audio, format, nil
}

func init() {
	codecs = append(codecs, flacCodec{})
}
