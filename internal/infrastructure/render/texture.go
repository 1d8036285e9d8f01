// Package render draws levels with ebiten: tilesheet textures, the static
// tile batch and per-object sprites.
package render

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a loaded tilesheet together with its sampler settings
type Texture struct {
	image   *ebiten.Image
	width   int
	height  int
	filter  ebiten.Filter
	address ebiten.Address
}

// LoadTexture decodes a PNG tilesheet from fsys
func LoadTexture(fsys fs.FS, path string) (*Texture, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return NewTexture(ebiten.NewImageFromImage(img)), nil
}

// NewTexture wraps an existing image. Sampling defaults to nearest filtering.
func NewTexture(img *ebiten.Image) *Texture {
	b := img.Bounds()
	return &Texture{
		image:   img,
		width:   b.Dx(),
		height:  b.Dy(),
		filter:  ebiten.FilterNearest,
		address: ebiten.AddressUnsafe,
	}
}

// Image returns the underlying ebiten image
func (t *Texture) Image() *ebiten.Image {
	return t.image
}

// Width returns the texture width in texels
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in texels
func (t *Texture) Height() int {
	return t.height
}

// SetFilter sets the min/mag filter used when drawing
func (t *Texture) SetFilter(f ebiten.Filter) {
	t.filter = f
}

// SetAddress sets the addressing mode for coordinates outside the texture
func (t *Texture) SetAddress(a ebiten.Address) {
	t.address = a
}

// Filter returns the current filter
func (t *Texture) Filter() ebiten.Filter {
	return t.filter
}

// Address returns the current addressing mode
func (t *Texture) Address() ebiten.Address {
	return t.address
}

// SubImage returns the sheet cell for a 1-based tile ID on a cols x rows sheet
func (t *Texture) SubImage(id, cols, rows int) *ebiten.Image {
	cw, ch := t.width/cols, t.height/rows
	cx, cy := (id-1)%cols, (id-1)/cols
	r := image.Rect(cx*cw, cy*ch, (cx+1)*cw, (cy+1)*ch)
	return t.image.SubImage(r).(*ebiten.Image)
}
