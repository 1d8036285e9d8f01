package entity

// Flag is a checkpoint marker. It has no latching state; every overlap counts.
type Flag struct {
	placed
	waveMs  int
	elapsed int
	waving  bool
}

// NewFlag creates a flag at a level-local world position
func NewFlag(x, y int, timings ObjectTimings) *Flag {
	return &Flag{
		placed: placed{x: x, y: y},
		waveMs: timings.FlagWaveMs,
	}
}

func (f *Flag) Kind() ObjectKind { return KindFlag }

// Update alternates the cloth frame
func (f *Flag) Update(deltaMs int) {
	if f.waveMs <= 0 {
		return
	}
	f.elapsed += deltaMs
	for f.elapsed >= f.waveMs {
		f.elapsed -= f.waveMs
		f.waving = !f.waving
	}
}

func (f *Flag) Render(d TileDrawer) {
	sprite := SpriteFlag
	if f.waving {
		sprite = SpriteFlagWave
	}
	d.DrawTile(sprite, f.x, f.y)
}
