package entity

// BlockState is the crumble progression of a destructible block
type BlockState int

const (
	BlockIdle BlockState = iota
	BlockCrumbling1
	BlockCrumbling2
	BlockDestroyed
)

// String returns the string representation of the block state
func (s BlockState) String() string {
	switch s {
	case BlockIdle:
		return "Idle"
	case BlockCrumbling1:
		return "Crumbling1"
	case BlockCrumbling2:
		return "Crumbling2"
	case BlockDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// DestructibleBlock is a solid block that crumbles away after being touched.
// It stays solid until the final stage is reached.
type DestructibleBlock struct {
	placed
	stageMs int
	state   BlockState
	timer   int
}

// NewDestructibleBlock creates an idle block at a level-local world position
func NewDestructibleBlock(x, y int, timings ObjectTimings) *DestructibleBlock {
	return &DestructibleBlock{
		placed:  placed{x: x, y: y},
		stageMs: timings.CrumbleStageMs,
	}
}

func (b *DestructibleBlock) Kind() ObjectKind { return KindDestructible }

// State returns the current crumble stage
func (b *DestructibleBlock) State() BlockState {
	return b.state
}

// IsDestroyed reports whether the block is gone
func (b *DestructibleBlock) IsDestroyed() bool {
	return b.state == BlockDestroyed
}

// Destroy starts crumbling. Only an idle block reacts; a block already
// crumbling keeps its timer.
func (b *DestructibleBlock) Destroy() {
	if b.state != BlockIdle {
		return
	}
	b.state = BlockCrumbling1
	b.timer = b.stageMs
}

// Update advances through the crumble stages
func (b *DestructibleBlock) Update(deltaMs int) {
	if b.state == BlockIdle || b.state == BlockDestroyed {
		return
	}
	b.timer -= deltaMs
	for b.timer <= 0 && b.state != BlockDestroyed {
		b.state++
		b.timer += b.stageMs
		if b.stageMs <= 0 {
			b.state = BlockDestroyed
		}
	}
}

func (b *DestructibleBlock) Render(d TileDrawer) {
	switch b.state {
	case BlockIdle:
		d.DrawTile(SpriteBlock, b.x, b.y)
	case BlockCrumbling1:
		d.DrawTile(SpriteBlockCrumble1, b.x, b.y)
	case BlockCrumbling2:
		d.DrawTile(SpriteBlockCrumble2, b.x, b.y)
	}
}
