package entity

// Balloon pops once when touched. The handle is drawn one tile below the head.
type Balloon struct {
	placed
	tileSize int
	popped   bool
}

// NewBalloon creates an intact balloon whose head sits at a level-local world position
func NewBalloon(x, y, tileSize int) *Balloon {
	return &Balloon{
		placed:   placed{x: x, y: y},
		tileSize: tileSize,
	}
}

func (b *Balloon) Kind() ObjectKind { return KindBalloon }

// IsPopped reports whether the balloon has been popped
func (b *Balloon) IsPopped() bool {
	return b.popped
}

// Pop bursts the balloon
func (b *Balloon) Pop() {
	b.popped = true
}

func (b *Balloon) Update(int) {}

func (b *Balloon) Render(d TileDrawer) {
	if b.popped {
		return
	}
	d.DrawTile(SpriteBalloonHead, b.x, b.y)
	d.DrawTile(SpriteBalloonHandle, b.x, b.y+b.tileSize)
}
