package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/summit/internal/domain/entity"
)

// SpriteDrawer draws single sheet tiles for level objects.
// Call Begin each frame before objects render through it.
type SpriteDrawer struct {
	texture *Texture
	cols    int
	rows    int
	origin  image.Point
	block   int

	dst        *ebiten.Image
	camX, camY int
	drawn      int
}

// NewSpriteDrawer creates a drawer for a level's tilesheet
func NewSpriteDrawer(tex *Texture, cols, rows int, origin image.Point, blockSize int) *SpriteDrawer {
	return &SpriteDrawer{
		texture: tex,
		cols:    cols,
		rows:    rows,
		origin:  origin,
		block:   blockSize,
	}
}

// Begin sets the target image and camera for this frame
func (d *SpriteDrawer) Begin(dst *ebiten.Image, camX, camY int) {
	d.dst = dst
	d.camX, d.camY = camX, camY
	d.drawn = 0
}

// DrawTile implements entity.TileDrawer
func (d *SpriteDrawer) DrawTile(id entity.TileID, x, y int) {
	if d.dst == nil || id <= 0 || int(id) > d.cols*d.rows {
		return
	}

	sub := d.texture.SubImage(int(id), d.cols, d.rows)
	b := sub.Bounds()

	opts := &ebiten.DrawImageOptions{}
	opts.Filter = d.texture.Filter()
	opts.GeoM.Scale(float64(d.block)/float64(b.Dx()), float64(d.block)/float64(b.Dy()))
	opts.GeoM.Translate(float64(d.origin.X+x-d.camX), float64(d.origin.Y+y-d.camY))
	d.dst.DrawImage(sub, opts)
	d.drawn++
}

// Drawn returns how many sprites were drawn since Begin
func (d *SpriteDrawer) Drawn() int {
	return d.drawn
}
