package dataset_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/dataset"
	"github.com/melisma/audiotensor/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(t *testing.T) []string {
	dir := t.TempDir()
	items := []string{
		filepath.Join(dir, "one.wav"),
		filepath.Join(dir, "two.wav"),
	}
	writeWavFile(t, items[0], 8000)
	writeWavFile(t, items[1], 16000)
	return items
}

func TestOpenAudioEncode(t *testing.T) {
	items := makeItems(t)
	tf := dataset.NewOpenAudio(items, signal.LoadOptions{})

	tensor, err := tf.Encode(runctx.Initial(), 0)
	require.NoError(t, err)
	assert.Equal(t, 8000, tensor.SampleRate())

	tensor, err = tf.Encode(runctx.Initial(), 1)
	require.NoError(t, err)
	assert.Equal(t, 16000, tensor.SampleRate())
}

func TestOpenAudioDecode(t *testing.T) {
	items := makeItems(t)
	tf := dataset.NewOpenAudio(items, signal.LoadOptions{})

	assert.Equal(t, items[1], tf.Decode(1))
	assert.Equal(t, "", tf.Decode(99))
	assert.Equal(t, 2, tf.Len())
}

func TestOpenAudioOutOfRange(t *testing.T) {
	tf := dataset.NewOpenAudio(makeItems(t), signal.LoadOptions{})

	_, err := tf.Encode(runctx.Initial(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrIndexOutOfRange))
}

func TestOpenAudioCacheHit(t *testing.T) {
	tf := dataset.NewOpenAudio(makeItems(t), signal.LoadOptions{})

	first, err := tf.Encode(runctx.Initial(), 0)
	require.NoError(t, err)
	second, err := tf.Encode(runctx.Initial(), 0)
	require.NoError(t, err)

	assert.Same(t, first, second)
}
