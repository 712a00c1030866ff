package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/dhowden/tag"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/signal"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

var defaultBackground = color.RGBA{A: 255, R: 41, G: 57, B: 92}
var defaultForeground = color.RGBA{A: 255, R: 240, G: 240, B: 240}

const titleBand = 24
const wavePadding = 16

type WaveformOptions struct {
	// ChannelWidth and ChannelHeight size each per-channel panel; channels
	// are laid out left to right.
	ChannelWidth  int
	ChannelHeight int

	Background color.Color
	Foreground color.Color

	// Title is an extra figure-level title row above the channel panels,
	// typically the clip's tag title or its batch label.
	Title string
}

func (o WaveformOptions) withDefaults(ctx runctx.RunContext) WaveformOptions {
	if o.ChannelWidth <= 0 {
		o.ChannelWidth = ctx.Config.Render.ChannelWidth
	}
	if o.ChannelHeight <= 0 {
		o.ChannelHeight = ctx.Config.Render.ChannelHeight
	}
	if o.Background == nil {
		o.Background = defaultBackground
	}
	if o.Foreground == nil {
		o.Foreground = defaultForeground
	}
	return o
}

// Waveform renders one sub-plot per channel, side by side, with the channel
// index in the sub-plot title. Amplitude columns are filled above and below
// the midline of each panel.
func Waveform(ctx runctx.RunContext, t *signal.Tensor, opts WaveformOptions) (image.Image, error) {
	if t == nil || t.NumChannels() == 0 || t.NumSamples() == 0 {
		return nil, errors.New("waveform: empty tensor")
	}
	opts = opts.withDefaults(ctx)

	topOffset := titleBand
	if opts.Title != "" {
		topOffset += titleBand
	}

	width := opts.ChannelWidth * t.NumChannels()
	height := opts.ChannelHeight + topOffset

	c := gg.NewContext(width, height)
	c.SetColor(opts.Background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	f, err := truetype.Parse(gosmallcaps.TTF)
	if err != nil {
		return nil, fmt.Errorf("waveform: error loading font: %w", err)
	}
	c.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 14}))

	if opts.Title != "" {
		c.SetColor(opts.Foreground)
		c.DrawStringAnchored(opts.Title, float64(width)/2, titleBand/2, 0.5, 0.5)
	}

	for ch := 0; ch < t.NumChannels(); ch++ {
		keys, err := FastSample(t.Channel(ch).Streamer(), opts.ChannelWidth)
		if err != nil {
			return nil, err
		}

		x0 := ch * opts.ChannelWidth
		center := topOffset + opts.ChannelHeight/2

		c.SetColor(opts.Foreground)
		c.DrawStringAnchored(fmt.Sprintf("Channel %d", ch), float64(x0)+float64(opts.ChannelWidth)/2, float64(topOffset)-titleBand/2, 0.5, 0.5)

		for x, s := range keys {
			v := s[0] // channel views mirror their samples onto both slots
			distance := math.Round(float64((opts.ChannelHeight-wavePadding)/2) * math.Abs(v))
			if distance < 1 {
				distance = 1
			}
			top := float64(center) - distance
			if v < 0 {
				top = float64(center)
			}
			c.DrawRectangle(float64(x0+x), top, 1, distance)
		}
		c.Fill()
	}

	return c.Image(), nil
}

// WaveformFile renders a waveform straight from an audio file. When the file
// carries embedded artwork it is drawn as a panel to the left of the
// waveform, and the tag title becomes the figure title.
func WaveformFile(ctx runctx.RunContext, path string, opts WaveformOptions) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	meta, _ := tag.ReadFrom(bytes.NewReader(b)) // tags are optional
	if meta != nil && opts.Title == "" {
		opts.Title = meta.Title()
	}

	t, err := signal.Load(ctx, path, signal.LoadOptions{})
	if err != nil {
		return nil, err
	}

	wave, err := Waveform(ctx, t, opts)
	if err != nil {
		return nil, err
	}

	if meta == nil || meta.Picture() == nil {
		return wave, nil
	}
	artwork, _, err := image.Decode(bytes.NewReader(meta.Picture().Data))
	if err != nil {
		ctx.Log.Warn("Ignoring undecodable embedded artwork: ", err)
		return wave, nil
	}

	side := wave.Bounds().Dy()
	artwork = imaging.Fit(artwork, side, side, imaging.Lanczos)

	width := artwork.Bounds().Dx() + wave.Bounds().Dx()
	c := gg.NewContext(width, side)
	c.SetColor(defaultBackground)
	c.DrawRectangle(0, 0, float64(width), float64(side))
	c.Fill()
	c.DrawImageAnchored(artwork, artwork.Bounds().Dx()/2, side/2, 0.5, 0.5)
	c.DrawImage(wave, artwork.Bounds().Dx(), 0)

	return c.Image(), nil
}
