package config_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/melisma/audiotensor/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesBursts(t *testing.T) {
	config.Path = filepath.Join(t.TempDir(), "audiotensor.yaml")
	require.NoError(t, os.WriteFile(config.Path, []byte("render:\n  channelWidth: 111\n"), 0o644))

	var reloads int32
	config.OnReload(func() {
		atomic.AddInt32(&reloads, 1)
	})

	watcher := config.Watch()
	defer watcher.Close()

	// A burst of writes must collapse into a single reload
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(config.Path, []byte("render:\n  channelWidth: 555\n"), 0o644))
		time.Sleep(50 * time.Millisecond)
	}

	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt32(&reloads) == 0 && time.Now().Before(deadline) {
		time.Sleep(100 * time.Millisecond)
	}

	assert.EqualValues(t, 1, atomic.LoadInt32(&reloads))
	assert.Equal(t, 555, config.Get().Render.ChannelWidth)
}
