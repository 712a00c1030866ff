package render_test

import (
	"errors"
	"testing"

	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCells(n int) []render.Cell {
	cells := make([]render.Cell, n)
	for i := range cells {
		cells[i] = render.Cell{Tensor: makeTensor(1, 1000, 8000), Label: "sample"}
	}
	return cells
}

func TestGridBoundsAtMaxN(t *testing.T) {
	// 10 cells handed in, only 6 rendered: a 3x2 grid
	img, err := render.Grid(runctx.Initial(), makeCells(10), render.GridOptions{
		MaxN:       6,
		Rows:       2,
		CellWidth:  100,
		CellHeight: 80,
	})
	require.NoError(t, err)

	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestGridDefaultMaxN(t *testing.T) {
	ctx := runctx.Initial()
	img, err := render.Grid(ctx, makeCells(50), render.GridOptions{CellWidth: 100, CellHeight: 80})
	require.NoError(t, err)

	rows := ctx.Config.Render.BatchRows
	cols := (ctx.Config.Render.BatchMaxN + rows - 1) / rows
	assert.Equal(t, cols*100, img.Bounds().Dx())
	assert.Equal(t, rows*80, img.Bounds().Dy())
}

func TestGridSmallBatch(t *testing.T) {
	img, err := render.Grid(runctx.Initial(), makeCells(1), render.GridOptions{
		MaxN:       6,
		Rows:       2,
		CellWidth:  100,
		CellHeight: 80,
	})
	require.NoError(t, err)

	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestGridSkipsNilTensorCells(t *testing.T) {
	cells := makeCells(4)
	cells[1].Tensor = nil

	img, err := render.Grid(runctx.Initial(), cells, render.GridOptions{
		MaxN:       6,
		Rows:       2,
		CellWidth:  100,
		CellHeight: 80,
	})
	require.NoError(t, err)

	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestGridEmptyBatch(t *testing.T) {
	_, err := render.Grid(runctx.Initial(), nil, render.GridOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrEmptyBatch))
}
