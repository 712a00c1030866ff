package render

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/signal"
)

type Cell struct {
	Tensor *signal.Tensor
	Label  string
}

type GridOptions struct {
	// MaxN bounds how many cells are rendered, no matter how many are
	// handed in. Zero takes the configured default (6).
	MaxN int

	// Rows is the number of grid rows. Zero takes the configured default (2).
	Rows int

	CellWidth  int
	CellHeight int
}

func (o GridOptions) withDefaults(ctx runctx.RunContext, cells []Cell) GridOptions {
	if o.MaxN <= 0 {
		o.MaxN = ctx.Config.Render.BatchMaxN
	}
	if o.Rows <= 0 {
		o.Rows = ctx.Config.Render.BatchRows
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 240
	}
	if o.CellWidth <= 0 {
		// cell width scales with channel count, like the per-channel panels
		nch := 1
		if len(cells) > 0 && cells[0].Tensor != nil {
			nch = cells[0].Tensor.NumChannels()
		}
		o.CellWidth = 160 * nch
	}
	return o
}

// Grid renders a batch of audio values into a grid of waveform sub-plots,
// at most MaxN of them, labels as per-cell titles.
func Grid(ctx runctx.RunContext, cells []Cell, opts GridOptions) (image.Image, error) {
	if len(cells) == 0 {
		return nil, common.ErrEmptyBatch
	}
	opts = opts.withDefaults(ctx, cells)

	n := len(cells)
	if n > opts.MaxN {
		n = opts.MaxN
	}
	rows := opts.Rows
	if rows > n {
		rows = n
	}
	cols := int(math.Ceil(float64(n) / float64(rows)))

	c := gg.NewContext(cols*opts.CellWidth, rows*opts.CellHeight)
	c.SetColor(defaultBackground)
	c.DrawRectangle(0, 0, float64(cols*opts.CellWidth), float64(rows*opts.CellHeight))
	c.Fill()

	for i := 0; i < n; i++ {
		// Leave holes in the grid for cells with nothing to draw
		if cells[i].Tensor == nil || cells[i].Tensor.NumChannels() < 1 {
			continue
		}
		nch := cells[i].Tensor.NumChannels()
		cell, err := Waveform(ctx, cells[i].Tensor, WaveformOptions{
			ChannelWidth:  opts.CellWidth / nch,
			ChannelHeight: opts.CellHeight - 2*titleBand,
			Title:         cells[i].Label,
		})
		if err != nil {
			return nil, err
		}

		cell = imaging.Fit(cell, opts.CellWidth-4, opts.CellHeight-4, imaging.Lanczos)

		row := i / cols
		col := i % cols
		cx := col*opts.CellWidth + opts.CellWidth/2
		cy := row*opts.CellHeight + opts.CellHeight/2
		c.DrawImageAnchored(cell, cx, cy, 0.5, 0.5)
	}

	return c.Image(), nil
}
