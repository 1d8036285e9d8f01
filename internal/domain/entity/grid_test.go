package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGrid(t *testing.T) *TileGrid {
	t.Helper()
	// 3x2 grid, 16px tiles
	grid, err := NewTileGrid(3, 2, 16, 16, []TileID{
		1, 0, 2,
		0, 34, 41,
	})
	require.NoError(t, err)
	return grid
}

func TestNewTileGrid(t *testing.T) {
	t.Run("valid grid", func(t *testing.T) {
		grid := createTestGrid(t)
		assert.Equal(t, 3, grid.Width)
		assert.Equal(t, 2, grid.Height)
		assert.Equal(t, 48, grid.PixelWidth())
		assert.Equal(t, 32, grid.PixelHeight())
	})

	t.Run("wrong tile count", func(t *testing.T) {
		_, err := NewTileGrid(2, 2, 16, 16, []TileID{1, 2, 3})
		assert.Error(t, err)
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := NewTileGrid(0, 2, 16, 16, nil)
		assert.Error(t, err)
	})

	t.Run("zero tile size", func(t *testing.T) {
		_, err := NewTileGrid(1, 1, 0, 16, []TileID{0})
		assert.Error(t, err)
	})

	t.Run("copies input", func(t *testing.T) {
		tiles := []TileID{1}
		grid, err := NewTileGrid(1, 1, 16, 16, tiles)
		require.NoError(t, err)
		tiles[0] = 9
		assert.Equal(t, TileID(1), grid.At(0, 0))
	})
}

func TestTileGrid_At(t *testing.T) {
	grid := createTestGrid(t)

	assert.Equal(t, TileID(1), grid.At(0, 0))
	assert.Equal(t, TileID(0), grid.At(1, 0))
	assert.Equal(t, TileID(2), grid.At(2, 0))
	assert.Equal(t, TileID(34), grid.At(1, 1))
	assert.Equal(t, TileID(41), grid.At(2, 1))

	outOfBounds := []struct {
		name   string
		tx, ty int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x too large", 3, 0},
		{"y too large", 0, 2},
	}
	for _, tt := range outOfBounds {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, TileID(0), grid.At(tt.tx, tt.ty))
		})
	}
}

func TestTileGrid_Index(t *testing.T) {
	grid := createTestGrid(t)
	assert.Equal(t, 0, grid.Index(0, 0))
	assert.Equal(t, 2, grid.Index(2, 0))
	assert.Equal(t, 5, grid.Index(2, 1))
}

func TestTileGrid_Cell(t *testing.T) {
	grid := createTestGrid(t)
	tx, ty := grid.Cell(17, 31)
	assert.Equal(t, 1, tx)
	assert.Equal(t, 1, ty)
}
