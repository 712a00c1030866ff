package signal

import (
	"time"
)

// Tensor is a semantic audio value: a channel-major sample matrix plus the
// sampling rate it was recorded at, carried as side metadata rather than as
// array content. Slicing and channel selection return Tensors that share the
// rate, so the metadata never silently degrades to a plain array.
type Tensor struct {
	data [][]float64 // data[channel][sample]
	rate int         // Hz; 0 means unknown
}

// New builds a tensor from raw channel-major samples. A rate of 0 means the
// sampling rate is unknown; duration math needs it to be set.
func New(data [][]float64, rate int) *Tensor {
	return &Tensor{data: data, rate: rate}
}

// SampleRate returns the attached sampling rate in Hz, or 0 when unknown.
func (t *Tensor) SampleRate() int {
	return t.rate
}

// SetSampleRate replaces the attached sampling rate metadata.
func (t *Tensor) SetSampleRate(rate int) {
	t.rate = rate
}

// Data exposes the underlying channel-major sample matrix.
func (t *Tensor) Data() [][]float64 {
	return t.data
}

func (t *Tensor) NumChannels() int {
	return len(t.data)
}

func (t *Tensor) NumSamples() int {
	if len(t.data) == 0 {
		return 0
	}
	return len(t.data[0])
}

func (t *Tensor) Sample(channel int, i int) float64 {
	return t.data[channel][i]
}

// Seconds is the clip length in float seconds: samples divided by rate.
// Returns 0 when no sampling rate is attached.
func (t *Tensor) Seconds() float64 {
	if t.rate <= 0 {
		return 0
	}
	return float64(t.NumSamples()) / float64(t.rate)
}

func (t *Tensor) Duration() time.Duration {
	if t.rate <= 0 {
		return 0
	}
	return time.Duration(t.Seconds() * float64(time.Second))
}

// Slice returns a view over samples [lo, hi) of every channel. The view
// shares backing storage and the sampling rate with the original.
func (t *Tensor) Slice(lo int, hi int) *Tensor {
	chans := make([][]float64, len(t.data))
	for i, ch := range t.data {
		chans[i] = ch[lo:hi]
	}
	return &Tensor{data: chans, rate: t.rate}
}

// Channel returns a single-channel view sharing storage and rate.
func (t *Tensor) Channel(i int) *Tensor {
	return &Tensor{data: t.data[i : i+1], rate: t.rate}
}

// Mono averages all channels into a new single-channel tensor. A tensor that
// is already mono is copied as-is.
func (t *Tensor) Mono() *Tensor {
	n := t.NumSamples()
	out := make([]float64, n)
	if t.NumChannels() == 1 {
		copy(out, t.data[0])
	} else {
		for i := 0; i < n; i++ {
			sum := 0.0
			for _, ch := range t.data {
				sum += ch[i]
			}
			out[i] = sum / float64(t.NumChannels())
		}
	}
	return &Tensor{data: [][]float64{out}, rate: t.rate}
}
