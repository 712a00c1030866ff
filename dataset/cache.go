package dataset

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/melisma/audiotensor/common/config"
	"github.com/melisma/audiotensor/signal"
	"github.com/patrickmn/go-cache"
)

// TensorCache holds decoded tensors keyed by cleaned source path, with the
// configured TTL.
type TensorCache struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewTensorCache() *TensorCache {
	expiration := time.Duration(config.Get().Decode.CacheMinutes) * time.Minute
	return &TensorCache{cache: cache.New(expiration, expiration*2)}
}

func (c *TensorCache) Get(path string) *signal.Tensor {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.cache.Get(filepath.Clean(path)); ok {
		return t.(*signal.Tensor)
	}
	return nil
}

func (c *TensorCache) Set(path string, t *signal.Tensor) {
	c.mu.Lock()
	c.cache.Set(filepath.Clean(path), t, cache.DefaultExpiration)
	c.mu.Unlock()
}

func (c *TensorCache) Flush() {
	c.mu.Lock()
	c.cache.Flush()
	c.mu.Unlock()
}
