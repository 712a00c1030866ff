package signal

import (
	"fmt"

	"github.com/melisma/audiotensor/common"
	resampling "github.com/tphakala/go-audio-resampling"
)

// Resample converts the tensor to a new sampling rate and returns a new
// tensor tagged with it. The conversion itself is delegated to a pure-Go
// soxr-style resampler; no DSP happens here.
func (t *Tensor) Resample(rate int) (*Tensor, error) {
	if t.rate <= 0 {
		return nil, common.ErrNoSampleRate
	}
	if rate == t.rate {
		chans := make([][]float64, t.NumChannels())
		for i, ch := range t.data {
			chans[i] = make([]float64, len(ch))
			copy(chans[i], ch)
		}
		return &Tensor{data: chans, rate: rate}, nil
	}

	nch := t.NumChannels()
	resampler, err := resampling.New(&resampling.Config{
		InputRate:  float64(t.rate),
		OutputRate: float64(rate),
		Channels:   nch,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("resample: error creating resampler: %w", err)
	}

	// Interleave, convert, de-interleave
	n := t.NumSamples()
	input := make([]float64, n*nch)
	for i := 0; i < n; i++ {
		for c := 0; c < nch; c++ {
			input[i*nch+c] = t.data[c][i]
		}
	}

	output, err := resampler.Process(input)
	if err != nil {
		return nil, fmt.Errorf("resample: error converting audio: %w", err)
	}

	outFrames := len(output) / nch
	chans := make([][]float64, nch)
	for c := 0; c < nch; c++ {
		chans[c] = make([]float64, outFrames)
		for i := 0; i < outFrames; i++ {
			chans[c][i] = output[i*nch+c]
		}
	}

	return &Tensor{data: chans, rate: rate}, nil
}
