package signal_test

import (
	"testing"

	"github.com/melisma/audiotensor/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamerRoundTrip(t *testing.T) {
	tensor := makeTensor(2, 1000, 16000)

	back, err := signal.FromStream(tensor.Streamer(), tensor.Format())
	require.NoError(t, err)

	assert.Equal(t, 16000, back.SampleRate())
	assert.Equal(t, 2, back.NumChannels())
	require.Equal(t, 1000, back.NumSamples())
	for i := 0; i < 1000; i += 97 {
		assert.Equal(t, tensor.Sample(0, i), back.Sample(0, i))
		assert.Equal(t, tensor.Sample(1, i), back.Sample(1, i))
	}
}

func TestStreamerSeek(t *testing.T) {
	tensor := makeTensor(1, 100, 8000)
	s := tensor.Streamer()

	assert.Equal(t, 100, s.Len())
	assert.Equal(t, 0, s.Position())

	require.NoError(t, s.Seek(50))
	assert.Equal(t, 50, s.Position())

	buf := make([][2]float64, 10)
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 10, n)
	assert.Equal(t, 60, s.Position())
	assert.Equal(t, tensor.Sample(0, 50), buf[0][0])

	assert.Error(t, s.Seek(101))
	assert.Error(t, s.Seek(-1))
}

func TestStreamerMonoMirrorsChannels(t *testing.T) {
	tensor := signal.New([][]float64{{0.25, -0.5}}, 8000)
	s := tensor.Streamer()

	buf := make([][2]float64, 2)
	n, _ := s.Stream(buf)
	require.Equal(t, 2, n)
	assert.Equal(t, buf[0][0], buf[0][1])
	assert.Equal(t, 0.25, buf[0][0])
	assert.Equal(t, -0.5, buf[1][0])
}

func TestStreamerExhaustion(t *testing.T) {
	tensor := signal.New([][]float64{{0.1}}, 8000)
	s := tensor.Streamer()

	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	assert.Equal(t, 1, n)
	assert.True(t, ok)

	n, ok = s.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
	assert.NoError(t, s.Err())
}
