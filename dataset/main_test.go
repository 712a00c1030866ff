package dataset_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep/wav"
	"github.com/melisma/audiotensor/common/config"
	"github.com/melisma/audiotensor/signal"
	"github.com/melisma/audiotensor/util"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "audiotensor-test")
	if err != nil {
		panic(err)
	}
	config.Path = filepath.Join(dir, "audiotensor.yaml")
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func writeWavFile(tb testing.TB, path string, rate int) {
	data := [][]float64{make([]float64, 400)}
	for i := range data[0] {
		data[0][i] = math.Sin(2 * math.Pi * float64(i) / 40)
	}
	tensor := signal.New(data, rate)

	ws := util.NewWriteSeeker()
	require.NoError(tb, wav.Encode(ws, tensor.Streamer(), tensor.Format()))
	require.NoError(tb, os.WriteFile(path, ws.Bytes(), 0o644))
}
