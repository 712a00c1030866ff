package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"math/cmplx"

	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/signal"
	"github.com/r9y9/gossp/stft"
)

type SpectrogramOptions struct {
	// Window is the analysis frame shift, Resolution the FFT size.
	Window     int
	Resolution int
}

func (o SpectrogramOptions) withDefaults() SpectrogramOptions {
	if o.Window <= 0 {
		o.Window = 256
	}
	if o.Resolution <= 0 {
		o.Resolution = 1024
	}
	return o
}

// Spectrogram renders a log-magnitude STFT heat map of the channel-averaged
// signal. The STFT itself is delegated; only the magnitude-to-color mapping
// lives here.
func Spectrogram(ctx runctx.RunContext, t *signal.Tensor, opts SpectrogramOptions) (image.Image, error) {
	if t == nil || t.NumChannels() == 0 || t.NumSamples() == 0 {
		return nil, errors.New("spectrogram: empty tensor")
	}
	opts = opts.withDefaults()

	mono := t.Mono().Data()[0]
	s := stft.New(opts.Window, opts.Resolution)
	spectrum := s.STFT(mono)
	if len(spectrum) == 0 {
		return nil, errors.New("spectrogram: clip too short for analysis window")
	}

	bins := opts.Resolution/2 + 1

	// Log magnitudes, normalized over the whole image
	mags := make([][]float64, len(spectrum))
	minV := math.Inf(1)
	maxV := math.Inf(-1)
	for i, frame := range spectrum {
		mags[i] = make([]float64, bins)
		for j := 0; j < bins && j < len(frame); j++ {
			v := math.Log(cmplx.Abs(frame[j]) + 1e-10)
			mags[i][j] = v
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}
	spread := maxV - minV
	if spread <= 0 {
		spread = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, len(spectrum), bins))
	for x, frame := range mags {
		for y, v := range frame {
			img.Set(x, bins-1-y, heat((v-minV)/spread))
		}
	}

	return img, nil
}

func heat(v float64) color.Color {
	bg := defaultBackground
	fg := defaultForeground
	lerp := func(a uint8, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*v))
	}
	return color.RGBA{A: 255, R: lerp(bg.R, fg.R), G: lerp(bg.G, fg.G), B: lerp(bg.B, fg.B)}
}
