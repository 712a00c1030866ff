package notebook

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/render"
	"github.com/melisma/audiotensor/signal"
	"github.com/melisma/audiotensor/templating"
)

type ShowOptions struct {
	// NoPlayback suppresses the audio player under the waveform figure.
	// Batch display always suppresses playback.
	NoPlayback bool

	Waveform render.WaveformOptions
}

type BatchOptions struct {
	MaxN int
	Rows int
}

func figureMarkup(img template.URL, alt string, player template.HTML) (template.HTML, error) {
	tmpl, err := templating.GetTemplate("figure")
	if err != nil {
		return "", err
	}
	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, templating.FigureModel{ImageURI: img, Alt: alt, Player: player}); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Show renders a tensor's waveform figure and, unless suppressed, an audio
// player below it.
func Show(ctx runctx.RunContext, t *signal.Tensor, opts ShowOptions) (template.HTML, error) {
	img, err := render.Waveform(ctx, t, opts.Waveform)
	if err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	if err := render.EncodePNG(buf, img); err != nil {
		return "", err
	}
	uri := template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()))

	var player template.HTML
	if !opts.NoPlayback {
		player, err = Player(ctx, t)
		if err != nil {
			return "", err
		}
	}

	return figureMarkup(uri, "audio waveform", player)
}

// ShowBatch hands a batch and its labels to the renderer registered for the
// batch's type.
func ShowBatch(ctx runctx.RunContext, batch interface{}, labels []string, opts BatchOptions) (template.HTML, error) {
	r := getRenderer(batch)
	if r == nil {
		return "", fmt.Errorf("show-batch: no renderer for batch type %T", batch)
	}
	return r.RenderBatch(ctx, batch, labels, opts)
}

type audioBatchRenderer struct {
}

func (d audioBatchRenderer) Matches(batch interface{}) bool {
	_, ok := batch.([]*signal.Tensor)
	return ok
}

func (d audioBatchRenderer) RenderBatch(ctx runctx.RunContext, batch interface{}, labels []string, opts BatchOptions) (template.HTML, error) {
	tensors := batch.([]*signal.Tensor)

	cells := make([]render.Cell, len(tensors))
	for i, t := range tensors {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		cells[i] = render.Cell{Tensor: t, Label: label}
	}

	img, err := render.Grid(ctx, cells, render.GridOptions{MaxN: opts.MaxN, Rows: opts.Rows})
	if err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	if err := render.EncodePNG(buf, img); err != nil {
		return "", err
	}
	uri := template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()))

	// No per-sample playback in batch context
	return figureMarkup(uri, "audio batch", "")
}

func init() {
	RegisterBatchRenderer(audioBatchRenderer{})
}
