package entity

// Bouncer is a spring that compresses when touched and recovers after a delay
type Bouncer struct {
	placed
	compressMs int
	compressed bool
	timer      int
}

// NewBouncer creates an idle bouncer at a level-local world position
func NewBouncer(x, y int, timings ObjectTimings) *Bouncer {
	return &Bouncer{
		placed:     placed{x: x, y: y},
		compressMs: timings.CompressMs,
	}
}

func (b *Bouncer) Kind() ObjectKind { return KindBouncer }

// IsCompressed reports whether the bouncer is still recovering
func (b *Bouncer) IsCompressed() bool {
	return b.compressed
}

// Compress squashes the bouncer. No-op while already compressed.
func (b *Bouncer) Compress() {
	if b.compressed {
		return
	}
	b.compressed = true
	b.timer = b.compressMs
}

// Update counts down the recovery time
func (b *Bouncer) Update(deltaMs int) {
	if !b.compressed {
		return
	}
	b.timer -= deltaMs
	if b.timer <= 0 {
		b.compressed = false
		b.timer = 0
	}
}

func (b *Bouncer) Render(d TileDrawer) {
	sprite := SpriteBouncer
	if b.compressed {
		sprite = SpriteBouncerSquashed
	}
	d.DrawTile(sprite, b.x, b.y)
}
