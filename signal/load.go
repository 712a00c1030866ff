package signal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/discovery"
	"github.com/melisma/audiotensor/signal/codecs"
)

type LoadOptions struct {
	// CacheFolder redirects the read to a pre-cached copy of the file (same
	// base name) before decoding, to avoid repeated reads of slow storage.
	CacheFolder string

	// ContentType overrides extension mapping and content sniffing.
	ContentType string
}

// FromFile decodes an audio file into a tensor tagged with the sampling rate
// reported by the decoder.
func FromFile(ctx runctx.RunContext, path string) (*Tensor, error) {
	return Load(ctx, path, LoadOptions{})
}

func Load(ctx runctx.RunContext, path string, opts LoadOptions) (*Tensor, error) {
	if opts.CacheFolder != "" {
		path = filepath.Join(opts.CacheFolder, filepath.Base(path))
	}

	if max := ctx.Config.Decode.MaxSizeBytes; max > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.Size() > max {
			return nil, fmt.Errorf("%w: %d bytes (limit %d)", common.ErrAudioTooLarge, info.Size(), max)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	contentType := opts.ContentType
	if contentType == "" {
		ct, ok := discovery.ContentTypeForPath(path)
		if !ok {
			ct, err = discovery.SniffContentType(bytes.NewReader(b))
			if err != nil {
				return nil, err
			}
		}
		contentType = ct
	}

	codec := codecs.Get(contentType)
	if codec == nil {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, contentType)
	}

	audio, format, err := codec.Decode(b)
	if err != nil {
		return nil, err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer audio.Close()

	t, err := FromStream(audio, format)
	if err != nil {
		return nil, err
	}

	ctx.Log.Debugf("Decoded %s: %d channels, %d samples at %d Hz", path, t.NumChannels(), t.NumSamples(), t.SampleRate())
	return t, nil
}
