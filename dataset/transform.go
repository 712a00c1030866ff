package dataset

import (
	"fmt"

	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/signal"
)

// Transform is the host-pipeline contract: turn an item index into a decoded
// audio value, or back into its source path.
type Transform interface {
	Encode(ctx runctx.RunContext, idx int) (*signal.Tensor, error)
	Decode(idx int) string
}

// OpenAudio decodes indexed audio files on demand, with an in-memory cache of
// decoded tensors in front of the codec.
type OpenAudio struct {
	items []string
	opts  signal.LoadOptions
	cache *TensorCache
}

func NewOpenAudio(items []string, opts signal.LoadOptions) *OpenAudio {
	return &OpenAudio{
		items: items,
		opts:  opts,
		cache: NewTensorCache(),
	}
}

func (o *OpenAudio) Len() int {
	return len(o.items)
}

func (o *OpenAudio) Encode(ctx runctx.RunContext, idx int) (*signal.Tensor, error) {
	if idx < 0 || idx >= len(o.items) {
		return nil, fmt.Errorf("%w: %d", common.ErrIndexOutOfRange, idx)
	}

	path := o.items[idx]
	if t := o.cache.Get(path); t != nil {
		ctx.Log.Debugf("Cache hit for %s", path)
		return t, nil
	}

	t, err := signal.Load(ctx, path, o.opts)
	if err != nil {
		return nil, err
	}
	o.cache.Set(path, t)
	return t, nil
}

func (o *OpenAudio) Decode(idx int) string {
	if idx < 0 || idx >= len(o.items) {
		return ""
	}
	return o.items[idx]
}
