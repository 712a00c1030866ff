package signal_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep/wav"
	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/signal"
	"github.com/melisma/audiotensor/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWavFile(tb testing.TB, path string, nch int, n int, rate int) {
	tensor := makeTensor(nch, n, rate)
	ws := util.NewWriteSeeker()
	require.NoError(tb, wav.Encode(ws, tensor.Streamer(), tensor.Format()))
	require.NoError(tb, os.WriteFile(path, ws.Bytes(), 0o644))
}

func TestLoadReadsDecoderRate(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "clip.wav")
	writeWavFile(t, fname, 2, 2000, 44100)

	tensor, err := signal.FromFile(runctx.Initial(), fname)
	require.NoError(t, err)

	assert.Equal(t, 44100, tensor.SampleRate())
	assert.Equal(t, 2, tensor.NumChannels())
	assert.Equal(t, 2000, tensor.NumSamples())
	assert.InDelta(t, 2000.0/44100.0, tensor.Seconds(), 1e-9)
}

func TestLoadCacheFolderRedirect(t *testing.T) {
	dir := t.TempDir()
	cacheDir := t.TempDir()

	// Same base name, different rate, so the redirect is observable
	writeWavFile(t, filepath.Join(dir, "clip.wav"), 1, 800, 8000)
	writeWavFile(t, filepath.Join(cacheDir, "clip.wav"), 1, 800, 16000)

	tensor, err := signal.Load(runctx.Initial(), filepath.Join(dir, "clip.wav"), signal.LoadOptions{CacheFolder: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, 16000, tensor.SampleRate())
}

func TestLoadUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(fname, []byte("not audio"), 0o644))

	_, err := signal.FromFile(runctx.Initial(), fname)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnsupportedFormat))
}

func TestLoadSizeLimit(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "clip.wav")
	writeWavFile(t, fname, 1, 4000, 8000)

	ctx := runctx.Initial()
	old := ctx.Config.Decode.MaxSizeBytes
	ctx.Config.Decode.MaxSizeBytes = 16
	defer func() { ctx.Config.Decode.MaxSizeBytes = old }()

	_, err := signal.FromFile(ctx, fname)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAudioTooLarge))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := signal.FromFile(runctx.Initial(), filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadContentTypeOverride(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "clip.bin")
	writeWavFile(t, fname, 1, 400, 8000)

	tensor, err := signal.Load(runctx.Initial(), fname, signal.LoadOptions{ContentType: "audio/wav"})
	require.NoError(t, err)
	assert.Equal(t, 8000, tensor.SampleRate())
}
