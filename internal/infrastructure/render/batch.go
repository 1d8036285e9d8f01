package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/summit/internal/domain/entity"
)

// AttributeLayout describes one named attribute inside the interleaved
// vertex buffer, in float32 units.
type AttributeLayout struct {
	Name       string
	Components int
	Stride     int
	Offset     int
}

const (
	// FloatsPerVertex is the stride of the interleaved buffer
	FloatsPerVertex = 4
	// VerticesPerTile is two triangles per quad
	VerticesPerTile = 6

	// One index buffer is uint16, so a single draw call is capped
	maxTilesPerDraw = (1 << 16) / VerticesPerTile
)

var (
	PositionAttribute = AttributeLayout{Name: "position", Components: 2, Stride: FloatsPerVertex, Offset: 0}
	TexCoordAttribute = AttributeLayout{Name: "texCoord", Components: 2, Stride: FloatsPerVertex, Offset: 2}
)

// TileBatch is the static geometry of every non-empty tile in a level.
// It is built once and drawn with a single DrawTriangles call.
type TileBatch struct {
	texture   *Texture
	vertices  []float32
	halfTexel [2]float32

	// Reused every frame
	drawVerts   []ebiten.Vertex
	drawIndices []uint16
}

// NewTileBatch builds the batch for a grid placed at origin, textured from a
// cols x rows tilesheet
func NewTileBatch(grid *entity.TileGrid, origin image.Point, cols, rows int, tex *Texture) *TileBatch {
	b := &TileBatch{
		texture:  tex,
		vertices: BuildVertices(grid, origin, cols, rows),
	}
	// Computed for parity with nearest-filter atlas setups; not applied
	b.halfTexel = [2]float32{0.5 / float32(tex.Width()), 0.5 / float32(tex.Height())}
	return b
}

// BuildVertices emits six interleaved (x, y, u, v) vertices per non-empty
// tile in row-major order. Quads are BlockSize wide and texture coordinates
// are normalized to the sheet.
func BuildVertices(grid *entity.TileGrid, origin image.Point, cols, rows int) []float32 {
	vertices := make([]float32, 0, grid.Width*grid.Height*VerticesPerTile*FloatsPerVertex)
	tileW, tileH := 1/float32(cols), 1/float32(rows)
	block := float32(grid.BlockSize)

	for j := 0; j < grid.Height; j++ {
		for i := 0; i < grid.Width; i++ {
			id := int(grid.At(i, j))
			if id <= 0 || id > cols*rows {
				continue
			}
			x := float32(origin.X + i*grid.TileSize)
			y := float32(origin.Y + j*grid.TileSize)
			u0 := float32((id-1)%cols) / float32(cols)
			v0 := float32((id-1)/cols) / float32(rows)
			u1, v1 := u0+tileW, v0+tileH

			vertices = append(vertices,
				// First triangle
				x, y, u0, v0,
				x+block, y, u1, v0,
				x+block, y+block, u1, v1,
				// Second triangle
				x, y, u0, v0,
				x+block, y+block, u1, v1,
				x, y+block, u0, v1,
			)
		}
	}
	return vertices
}

// Vertices returns the interleaved vertex buffer
func (b *TileBatch) Vertices() []float32 {
	return b.vertices
}

// TileCount returns the number of quads in the batch
func (b *TileBatch) TileCount() int {
	return len(b.vertices) / (VerticesPerTile * FloatsPerVertex)
}

// HalfTexel returns half a texel in normalized coordinates
func (b *TileBatch) HalfTexel() (float32, float32) {
	return b.halfTexel[0], b.halfTexel[1]
}

// Texture returns the sheet the batch samples from
func (b *TileBatch) Texture() *Texture {
	return b.texture
}

// Draw renders the batch to dst with the camera at (camX, camY)
func (b *TileBatch) Draw(dst *ebiten.Image, camX, camY int) {
	n := len(b.vertices) / FloatsPerVertex
	if n == 0 {
		return
	}

	texW, texH := float32(b.texture.Width()), float32(b.texture.Height())
	b.drawVerts = b.drawVerts[:0]
	for v := 0; v < n; v++ {
		p := v*FloatsPerVertex + PositionAttribute.Offset
		t := v*FloatsPerVertex + TexCoordAttribute.Offset
		b.drawVerts = append(b.drawVerts, ebiten.Vertex{
			DstX:   b.vertices[p] - float32(camX),
			DstY:   b.vertices[p+1] - float32(camY),
			SrcX:   b.vertices[t] * texW,
			SrcY:   b.vertices[t+1] * texH,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}

	opts := &ebiten.DrawTrianglesOptions{
		Filter:  b.texture.Filter(),
		Address: b.texture.Address(),
	}

	// Large levels are split at the index limit
	for start := 0; start < n; start += maxTilesPerDraw * VerticesPerTile {
		end := min(start+maxTilesPerDraw*VerticesPerTile, n)
		b.drawIndices = b.drawIndices[:0]
		for i := 0; i < end-start; i++ {
			b.drawIndices = append(b.drawIndices, uint16(i))
		}
		dst.DrawTriangles(b.drawVerts[start:end], b.drawIndices, b.texture.Image(), opts)
	}
}
