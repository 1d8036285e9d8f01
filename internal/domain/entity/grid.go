package entity

import "fmt"

// TileGrid is the static tile layer of a level.
// It is built once at load time and never mutated afterwards.
type TileGrid struct {
	Width     int // tiles
	Height    int // tiles
	TileSize  int // world units per tile edge
	BlockSize int // rendered quad edge, may differ from TileSize
	tiles     []TileID
}

// NewTileGrid creates a grid from row-major tile data
func NewTileGrid(width, height, tileSize, blockSize int, tiles []TileID) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size %d", tileSize)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("grid %dx%d needs %d tiles, got %d", width, height, width*height, len(tiles))
	}
	owned := make([]TileID, len(tiles))
	copy(owned, tiles)
	return &TileGrid{
		Width:     width,
		Height:    height,
		TileSize:  tileSize,
		BlockSize: blockSize,
		tiles:     owned,
	}, nil
}

// Index converts tile coordinates to a buffer index
func (g *TileGrid) Index(tx, ty int) int {
	return ty*g.Width + tx
}

// InBounds reports whether tile coordinates are inside the grid
func (g *TileGrid) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < g.Width && ty >= 0 && ty < g.Height
}

// At returns the tile ID at tile coordinates, or 0 outside the grid
func (g *TileGrid) At(tx, ty int) TileID {
	if !g.InBounds(tx, ty) {
		return 0
	}
	return g.tiles[g.Index(tx, ty)]
}

// PixelWidth returns the grid width in world units
func (g *TileGrid) PixelWidth() int {
	return g.Width * g.TileSize
}

// PixelHeight returns the grid height in world units
func (g *TileGrid) PixelHeight() int {
	return g.Height * g.TileSize
}

// Cell returns the tile containing a world position
func (g *TileGrid) Cell(px, py int) (tx, ty int) {
	return px / g.TileSize, py / g.TileSize
}
